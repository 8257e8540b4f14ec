package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrCheckViolation    = errors.New("check violation")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("insufficient balance")
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("no codes available")
	ErrCodeAlreadyUsed  = errors.New("code already used")
	ErrUserBanned       = errors.New("account suspended")
	ErrPurchaseDisabled = errors.New("purchases disabled for your account")
	ErrPlayerIDRequired = errors.New("player id required")

	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrEmptyTransactionRef = errors.New("transaction id required")
	ErrInvalidDepositState = errors.New("invalid deposit state")

	ErrInvalidCredentials  = errors.New("invalid API credentials")
	ErrCredentialsMissing  = errors.New("configure API keys first")
	ErrAutoVerifyDisabled  = errors.New("auto verification disabled")
	ErrCredentialsRequired = errors.New("API key and secret required")
)
