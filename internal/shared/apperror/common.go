package apperror

import "net/http"

var (
	ErrForbidden = New(CodeForbidden, "Your role cannot perform this payroll action", http.StatusForbidden)
	ErrInternal  = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)
