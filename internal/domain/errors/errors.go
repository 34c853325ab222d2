package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")

	// Ledger business-rule rejections. Every failure is synchronous and
	// leaves state untouched; the caller decides whether to resubmit.
	ErrNoValue             = errors.New("no value provided")
	ErrOrderNotFound       = errors.New("order not found")
	ErrAlreadyDelivered    = errors.New("order already delivered")
	ErrNotYourOrder        = errors.New("not your order")
	ErrDriverNotAssigned   = errors.New("driver not assigned")
	ErrClaimTooEarly       = errors.New("claim window not open yet")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotAdministrator    = errors.New("administrator only")
)
