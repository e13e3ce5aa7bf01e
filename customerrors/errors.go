package customerrors

import "errors"

var (
	ErrUserAlreadyExists = errors.New("an account with this email already exists. Please log in")
	ErrUserNotFound      = errors.New("user not found")
	ErrUnknownSymbol     = errors.New("symbol not present in the current instrument set")
	ErrInvalidTradeInput = errors.New("invalid trade parameters")
	ErrSetupNotFound     = errors.New("trade setup not found")
)
