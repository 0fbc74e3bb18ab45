package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidEmail       ErrorCode = "AUTH_002"
	ErrorCodeInvalidPassword    ErrorCode = "AUTH_003"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_007"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeResourceInvalid       ErrorCode = "RES_003"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Routing
	ErrorCodeRouteNotFound ErrorCode = "ROUTE_404"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorResponse is the JSON envelope of every failed request
type ErrorResponse struct {
	Message   string      `json:"message" example:"Cohort not found"`
	Code      ErrorCode   `json:"code,omitempty" example:"RES_001"`
	Field     string      `json:"field,omitempty" example:"cohortSlug"`
	Duplicate bool        `json:"duplicate,omitempty" example:"false"`
	Details   interface{} `json:"details,omitempty" swaggertype:"object"`
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error response
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error response
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}

// AsDuplicate marks the response as a uniqueness violation
func (e *ErrorResponse) AsDuplicate() *ErrorResponse {
	e.Duplicate = true
	return e
}

// FieldError is a single binding failure reported in Details
type FieldError struct {
	Field   string `json:"field" example:"cohortName"`
	Message string `json:"message" example:"cohortName is required"`
}
