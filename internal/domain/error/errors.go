package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInsufficientBalance  = 4001
	CodeInsufficientTokens   = 4002
	CodeInvalidAmount        = 4003
	CodeInvalidAction        = 4004
	CodeMissingSettlementRef = 4005
	CodeInvalidCredentials   = 4010
	CodeUserNotFound         = 4040
	CodeTransactionNotFound  = 4041
	CodeWithdrawalNotFound   = 4042
	CodePackageNotFound      = 4043
	CodeNotFound             = 4044
	CodeAlreadyResolved      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a wallet withdrawal exceeds the user's wallet
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrInsufficientTokens is returned when a token withdrawal exceeds the vested tokens
	ErrInsufficientTokens = errors.New("insufficient tokens available")

	// ErrInvalidAmount is returned when a monetary amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidAction is returned when a resolve action is not "approved" or "rejected"
	ErrInvalidAction = errors.New("invalid action")

	// ErrMissingSettlementRef is returned when a withdrawal approval lacks a settlement reference
	ErrMissingSettlementRef = errors.New("settlement reference is required to approve")

	// ErrAlreadyResolved is returned when resolving an entity already in a terminal state
	ErrAlreadyResolved = errors.New("already resolved")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrWithdrawalNotFound is returned when the requested withdrawal doesn't exist
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrPackageNotFound is returned when the requested package doesn't exist
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidCredentials is returned when admin login fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when an admin token fails verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientTokens):
		return CodeInsufficientTokens
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAction):
		return CodeInvalidAction
	case errors.Is(err, ErrMissingSettlementRef):
		return CodeMissingSettlementRef
	case errors.Is(err, ErrAlreadyResolved):
		return CodeAlreadyResolved
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrPackageNotFound):
		return CodePackageNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// AlreadyResolvedError reports a resolve attempt on a terminal transaction or withdrawal
type AlreadyResolvedError struct {
	Entity string
	ID     uint64
	Status string
}

// Error implements the error interface
func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s %d is already %s", e.Entity, e.ID, e.Status)
}

// Is checks if the target error is an ErrAlreadyResolved
func (e *AlreadyResolvedError) Is(target error) bool {
	return target == ErrAlreadyResolved
}

// LogFields returns a map of fields for structured logging
func (e *AlreadyResolvedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "already_resolved",
		"entity":     e.Entity,
		"entity_id":  e.ID,
		"status":     e.Status,
		"error_code": CodeAlreadyResolved,
	}
}

// NewAlreadyResolvedError creates a new detailed terminal-state conflict error
func NewAlreadyResolvedError(entity string, id uint64, status string) error {
	return &AlreadyResolvedError{Entity: entity, ID: id, Status: status}
}

// InsufficientTokensError provides detailed error information for token withdrawals
type InsufficientTokensError struct {
	TransactionID uint64
	Requested     float64
	Available     float64
}

// Error implements the error interface
func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("insufficient tokens on transaction %d: requested %.4f, available %.4f",
		e.TransactionID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientTokens
func (e *InsufficientTokensError) Is(target error) bool {
	return target == ErrInsufficientTokens
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientTokensError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "insufficient_tokens",
		"transaction_id": e.TransactionID,
		"requested":      e.Requested,
		"available":      e.Available,
		"error_code":     CodeInsufficientTokens,
	}
}

// NewInsufficientTokensError creates a new detailed insufficient tokens error
func NewInsufficientTokensError(transactionID uint64, requested, available float64) error {
	return &InsufficientTokensError{
		TransactionID: transactionID,
		Requested:     requested,
		Available:     available,
	}
}

// InsufficientBalanceError provides detailed error information for wallet withdrawals
type InsufficientBalanceError struct {
	UserID  uint64
	Amount  string
	Balance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient wallet balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, balance string) error {
	return &InsufficientBalanceError{UserID: userID, Amount: amount, Balance: balance}
}

// IsAlreadyResolvedError checks if the error is a terminal-state conflict
func IsAlreadyResolvedError(err error) bool {
	return errors.Is(err, ErrAlreadyResolved)
}

// IsInsufficientFundsError checks if the error is any insufficient-funds condition
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrInsufficientTokens)
}

// IsValidationError checks if the error is a request validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrMissingSettlementRef) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound) ||
		errors.Is(err, ErrPackageNotFound)
}

// IsAuthError checks if the error is an authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidToken)
}
