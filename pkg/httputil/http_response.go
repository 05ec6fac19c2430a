package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Two envelope conventions coexist: the legacy CRUD surface answers with
// {success, message, data, errors}, the ownership-verified surface answers
// with {success, data, error_code, message}. External consumers depend on
// both shapes, so they are kept separate instead of unified.

// Machine-readable error codes for the ownership-verified surface.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeAccessDenied    = "ACCESS_DENIED"
	CodeEntityNotFound  = "ENTITY_NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

type CrudResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

type APIResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

func WriteCrudSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, CrudResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteCrudError(w http.ResponseWriter, statusCode int, message string, errs any) {
	writeJSON(w, statusCode, CrudResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func WriteAPISuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

func WriteAPIError(w http.ResponseWriter, statusCode int, errorCode, message string) {
	writeJSON(w, statusCode, APIResponse{
		Success:   false,
		ErrorCode: errorCode,
		Message:   message,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
