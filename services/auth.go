package services

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grich88/civic/models"
	"golang.org/x/crypto/bcrypt"
)

// Session storage keys, carried over from the mobile client
const (
	sessionUserKey   = "civic_user"
	sessionWalletKey = "civic_wallet"
)

// storedWallet is the persisted wallet material for the current session
type storedWallet struct {
	UserID    string `json:"user_id"`
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"` // hex; a production build would encrypt this
}

// embeddedWallet is the in-memory keypair backing a user's wallet.
// The chain itself is mocked: no transaction ever leaves the process.
type embeddedWallet struct {
	publicKey ed25519.PublicKey
	secretKey ed25519.PrivateKey
}

// AuthService manages accounts, the current session and the embedded
// mock wallet. It stands in for Civic Auth: any registration succeeds
// and comes back identity-verified, which is what feeds the
// anti-scalping precondition downstream.
type AuthService struct {
	store *SessionStore

	mu           sync.RWMutex
	usersByID    map[string]*models.User
	usersByEmail map[string]*models.User
	wallets      map[string]*embeddedWallet
	currentUser  string
}

// NewAuthService creates an auth service backed by the given session store
func NewAuthService(store *SessionStore) *AuthService {
	return &AuthService{
		store:        store,
		usersByID:    make(map[string]*models.User),
		usersByEmail: make(map[string]*models.User),
		wallets:      make(map[string]*embeddedWallet),
	}
}

// RestoreSession loads a persisted session from disk, if one exists
func (s *AuthService) RestoreSession() {
	var user models.User
	found, err := s.store.GetItem(sessionUserKey, &user)
	if err != nil || !found {
		if err != nil {
			log.Printf("Failed to restore session: %v", err)
		}
		return
	}

	var wallet storedWallet
	walletFound, err := s.store.GetItem(sessionWalletKey, &wallet)
	if err != nil || !walletFound || wallet.UserID != user.ID {
		if err != nil {
			log.Printf("Failed to restore wallet: %v", err)
		}
		return
	}

	secretKey, err := hex.DecodeString(wallet.SecretKey)
	if err != nil || len(secretKey) != ed25519.PrivateKeySize {
		log.Printf("Stored wallet key is invalid, discarding session")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByID[user.ID] = &user
	s.usersByEmail[strings.ToLower(user.Email)] = &user
	s.wallets[user.ID] = &embeddedWallet{
		publicKey: ed25519.PrivateKey(secretKey).Public().(ed25519.PublicKey),
		secretKey: secretKey,
	}
	s.currentUser = user.ID
	log.Printf("Restored user session: %s", user.Email)
}

// Register creates an account with an embedded wallet and opens a
// session for it.
func (s *AuthService) Register(email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[email]; exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicKey, secretKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet keypair: %w", err)
	}

	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	civicID := "civic-" + uuid.New().String()
	user := &models.User{
		ID:            civicID,
		Email:         email,
		Name:          name,
		WalletAddress: hex.EncodeToString(publicKey),
		CivicUserID:   civicID,
		IsVerified:    true, // mock Civic Pass verifies everyone
		PasswordHash:  string(hash),
		CreatedAt:     time.Now(),
	}

	s.usersByID[user.ID] = user
	s.usersByEmail[email] = user
	s.wallets[user.ID] = &embeddedWallet{publicKey: publicKey, secretKey: secretKey}

	s.persistSessionLocked(user)

	log.Printf("User signed in successfully: %s", user.Email)
	return user, nil
}

// Login opens a session for an existing account
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.persistSessionLocked(user)
	return user, nil
}

// GetUser looks an account up by id
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CurrentUser returns the account in the persisted session, if any
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == "" {
		return nil
	}
	return s.usersByID[s.currentUser]
}

// SignOut closes the persisted session and drops its keys
func (s *AuthService) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = ""
	if err := s.store.RemoveItem(sessionUserKey); err != nil {
		log.Printf("Sign out: %v", err)
	}
	if err := s.store.RemoveItem(sessionWalletKey); err != nil {
		log.Printf("Sign out: %v", err)
	}
}

// VerifyIdentity performs the mock Civic Pass identity check for the
// anti-scalping gate.
func (s *AuthService) VerifyIdentity(userID string) bool {
	user, err := s.GetUser(userID)
	if err != nil {
		return false
	}
	return user.IsVerified
}

// WalletData returns the user-facing view of the embedded wallet. The
// balance and token list are mock data; there is no chain behind them.
func (s *AuthService) WalletData(userID string) (*models.WalletData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := s.wallets[userID]; !ok {
		return nil, ErrUserNotFound
	}

	const lamports = int64(1_000_000_000) // 1 SOL demo balance
	return &models.WalletData{
		Address: user.WalletAddress,
		Balance: float64(lamports) / 1_000_000_000,
		Tokens: []models.WalletToken{
			{
				Mint:     "So11111111111111111111111111111111111111112",
				Amount:   lamports,
				Decimals: 9,
				Symbol:   "SOL",
			},
		},
		NFTs: []models.WalletNFT{},
	}, nil
}

// persistSessionLocked writes the session's two storage keys. Callers
// hold s.mu.
func (s *AuthService) persistSessionLocked(user *models.User) {
	s.currentUser = user.ID

	if err := s.store.SetItem(sessionUserKey, user); err != nil {
		log.Printf("Failed to persist session: %v", err)
		return
	}
	wallet := s.wallets[user.ID]
	if wallet == nil {
		return
	}
	if err := s.store.SetItem(sessionWalletKey, storedWallet{
		UserID:    user.ID,
		PublicKey: hex.EncodeToString(wallet.publicKey),
		SecretKey: hex.EncodeToString(wallet.secretKey),
	}); err != nil {
		log.Printf("Failed to persist wallet: %v", err)
	}
}
