package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string            `json:"error"`
	Message       string            `json:"message"`
	Fields        map[string]string `json:"fields,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeInvalidQuery         = "INVALID_QUERY"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeSizeNotFound         = "SIZE_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeCountryNotFound      = "COUNTRY_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeInvalidPaymentMethod = "INVALID_PAYMENT_METHOD"
	ErrCodeInvalidLanguage      = "INVALID_LANGUAGE"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cannot place an order for an empty cart")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSizeNotFound         = NewDomainError(ErrCodeSizeNotFound, "Size not available for this product")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCountryNotFound      = NewDomainError(ErrCodeCountryNotFound, "Country not found")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and 99")
	ErrInvalidPaymentMethod = NewDomainError(ErrCodeInvalidPaymentMethod, "Payment method must be cod or bank")
	ErrInvalidLanguage      = NewDomainError(ErrCodeInvalidLanguage, "Language must be en or ar")
	ErrUnauthorised         = NewDomainError(ErrCodeUnauthorised, "Authentication required")
)
