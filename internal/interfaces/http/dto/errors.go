package dto

import "net/http"

// Error codes surfaced by the HTTP layer. Domain error codes map onto these
// one to one.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Field-level
// validation failures use 422, ownership denials 403, malformed requests 400.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,

	ErrCodeValidation:          http.StatusUnprocessableEntity,
	"INVALID_EMAIL":            http.StatusUnprocessableEntity,
	"INVALID_PASSWORD":         http.StatusUnprocessableEntity,
	"INVALID_AMOUNT":           http.StatusUnprocessableEntity,
	"INVALID_PRICE":            http.StatusUnprocessableEntity,
	"INVALID_STOCK":            http.StatusUnprocessableEntity,
	"INVALID_REFERENCE":        http.StatusUnprocessableEntity,
	"INVALID_TRANSACTION_TYPE": http.StatusUnprocessableEntity,
	"INVALID_REFERENCE_NAME":   http.StatusUnprocessableEntity,
	"INVALID_INPUT":            http.StatusUnprocessableEntity,

	"INVALID_CREDENTIALS": http.StatusBadRequest,
	"INCORRECT_PASSWORD":  http.StatusBadRequest,
	"SAME_PASSWORD":       http.StatusBadRequest,
	"INACTIVE_USER":       http.StatusBadRequest,
	"EMAIL_TAKEN":         http.StatusBadRequest,
	"SELF_DELETE":         http.StatusBadRequest,
	"ALREADY_EXISTS":      http.StatusConflict,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to
// 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
