package models

// ErrorResponse is returned when a single entity lookup fails or an unexpected fault occurs
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every failed validation check of a write request
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse confirms a completed mutation
type MessageResponse struct {
	Message string `json:"message"`
}

// Error messages shared by the controllers
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgInternalError      = "Internal server error"
	MsgInvalidBody        = "Invalid request body"
	MsgRestaurantDeleted  = "Restaurant deleted"
)

// NewErrorResponse creates an ErrorResponse with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a ValidationErrorResponse, never with a nil list
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return ValidationErrorResponse{Errors: messages}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
