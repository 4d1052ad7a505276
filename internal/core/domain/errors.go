package domain

import "errors"

// Error taxonomy shared by every service. Handlers never inspect these
// directly; the central HTTP error handler maps them to status codes.
var (
	// ErrUnauthenticated covers every access-token failure: bad signature,
	// malformed token, expired, missing claims. The causes are deliberately
	// indistinguishable to the caller.
	ErrUnauthenticated = errors.New("could not validate credentials")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidServiceKey  = errors.New("invalid service token")
	ErrForbidden          = errors.New("not authorized to perform the requested action")
	ErrInvalidRole        = errors.New("not a valid role")
	ErrLastAdmin          = errors.New("changing role of the only account administrator is not permitted")

	ErrAccountNotFound     = errors.New("account does not exist")
	ErrUserNotFound        = errors.New("user does not exist")
	ErrSessionNotFound     = errors.New("invalid refresh token")
	ErrSessionExpired      = errors.New("refresh token expired")
	ErrIncomeNotFound      = errors.New("income does not exist")
	ErrExpenditureNotFound = errors.New("expenditure does not exist")
	ErrExpenseTypeNotFound = errors.New("expense type does not exist")

	ErrAccountExists     = errors.New("account already exists")
	ErrUserExists        = errors.New("user with email or username in this account already exists")
	ErrExpenseTypeExists = errors.New("expense type already exists")

	ErrInvalidAccountName = errors.New("account name must start with a lowercase letter and contain only alphanumeric characters")
	ErrInvalidPhone       = errors.New("phone number must contain only digits")

	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
