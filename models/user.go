package models

import "time"

// User is a signed-in account. IsVerified is the mock Civic Pass flag
// consulted by the anti-scalping gate.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	CivicUserID   string    `json:"civic_user_id"`
	IsVerified    bool      `json:"is_verified"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletToken is a fungible token entry in a wallet
type WalletToken struct {
	Mint     string `json:"mint"`
	Amount   int64  `json:"amount"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol"`
}

// WalletNFT is a collectible entry in a wallet
type WalletNFT struct {
	Mint     string                 `json:"mint"`
	Name     string                 `json:"name"`
	Image    string                 `json:"image"`
	Metadata map[string]interface{} `json:"metadata"`
}

// WalletData is the user-facing view of the embedded wallet
type WalletData struct {
	Address string        `json:"address"`
	Balance float64       `json:"balance"`
	Tokens  []WalletToken `json:"tokens"`
	NFTs    []WalletNFT   `json:"nfts"`
}
