package errors

import (
	"errors"
	"fmt"
	"strings"
)

// UserError is an expected, recoverable failure addressed to a request field.
// It is part of an operation's normal outcome space: controllers surface it
// in the response envelope and it never indicates an internal fault, so it
// must never roll back state unrelated to the rejected write.
type UserError struct {
	Type    string
	Field   []string
	Message string
}

func (e *UserError) Error() string {
	if len(e.Field) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Type, strings.Join(e.Field, "."), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func NewUserError(errType string, field []string, message string) *UserError {
	return &UserError{
		Type:    errType,
		Field:   field,
		Message: message,
	}
}

// AsUserError unwraps err into a UserError when it is one.
func AsUserError(err error) (*UserError, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr, true
	}
	return nil, false
}

// UserErrorResponse is the wire shape of a user error.
type UserErrorResponse struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (e *UserError) ToResponse() UserErrorResponse {
	field := e.Field
	if field == nil {
		field = []string{}
	}
	return UserErrorResponse{
		Field:   field,
		Message: e.Message,
	}
}
