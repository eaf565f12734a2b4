package model

// Standard error codes for domain failures
const (
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeNegativePrice   = "NEGATIVE_PRICE"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeNilCustomer     = "NIL_CUSTOMER"
)

// DomainError represents a business rule violation.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrNegativePrice   = NewDomainError(ErrCodeNegativePrice, "Price must not be negative")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrNilCustomer     = NewDomainError(ErrCodeNilCustomer, "Customer is required")
)
