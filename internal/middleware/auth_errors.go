package middleware

import (
	"net/http"

	"go-paie/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrMissingAuthContext = apperror.New(
		apperror.CodeUnauthorized,
		"Missing auth context",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		apperror.CodeTooManyRequests,
		"Too many requests",
		http.StatusTooManyRequests,
	)
	ErrRequestInProgress = apperror.New(
		apperror.CodeProcessing,
		"A request with this Idempotency-Key is still being processed",
		http.StatusConflict,
	)
)
