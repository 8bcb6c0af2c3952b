package services

import "errors"

// Terminal, user-facing redemption and purchase errors. Handlers map
// these to HTTP statuses and surface the message verbatim; none are
// retried. Vendor fetch/purchase failures are a separate, recoverable
// category that never reaches callers (mock fallback).
var (
	ErrRewardNotFound       = errors.New("reward not found")
	ErrInsufficientPoints   = errors.New("insufficient points for this reward")
	ErrRedemptionLimit      = errors.New("reward redemption limit reached")
	ErrRewardExpired        = errors.New("reward has expired")
	ErrEventNotFound        = errors.New("event not found")
	ErrEventSoldOut         = errors.New("event is sold out")
	ErrVerificationRequired = errors.New("identity verification required for this event")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)
