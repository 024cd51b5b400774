package pkg

import "fmt"

// AppError is the error envelope every handler returns. Code is a stable
// machine-readable identifier, Message is safe to show to the user.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// ErrorResponse is the JSON body sent for a failed request.
//
// Redirect is set when the caller must navigate away (session expired).
// Form echoes the submitted payload back so the client can keep the form
// populated after a rejected create.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	Form     any    `json:"form,omitempty"`
}

func (e *AppError) ToHTTPError() ErrorResponse {
	return ErrorResponse{Code: e.Code, Message: e.Message}
}

func (e *AppError) ToHTTPErrorWithRedirect(target string) ErrorResponse {
	return ErrorResponse{Code: e.Code, Message: e.Message, Redirect: target}
}

func (e *AppError) ToHTTPErrorWithForm(form any) ErrorResponse {
	return ErrorResponse{Code: e.Code, Message: e.Message, Form: form}
}
