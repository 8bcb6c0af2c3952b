package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateRandomString generates a random hex string of the given byte length
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateVoucherCode builds a redemption voucher code. The vendor
// prefix keeps codes recognizable at partner checkouts; the random
// suffix keeps them unique across concurrent redemptions.
func GenerateVoucherCode(vendorID string) string {
	return fmt.Sprintf("%s-%d-%s",
		strings.ToUpper(vendorID),
		time.Now().UnixMilli(),
		strings.ToUpper(GenerateRandomString(3)),
	)
}

// GenerateQRCode builds the QR payload embedded in a ticket
func GenerateQRCode(vendorID string) string {
	return fmt.Sprintf("QR-%s-%s", vendorID, GenerateRandomString(8))
}
