// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// GetErrorMsg returns a human readable message for a failed binding field.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field must be at least " + fe.Param()
	case "max":
		return " field must be at most " + fe.Param()
	case "gt":
		return " field must be greater than " + fe.Param()
	case "currency":
		return " field must be a supported currency"
	case "transactiontype":
		return " field must be credit or debit"
	case "category":
		return " field must be a known category"
	case "accounttype":
		return " field must be checking, savings or investment"
	case "oneof":
		return " field must be one of " + fe.Param()
	}

	return " field is invalid"
}
