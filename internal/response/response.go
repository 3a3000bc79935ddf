// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/yourname/moodjournal/internal"
)

type APIResponse struct {
	Data  interface{}        `json:"data,omitempty"`
	Meta  map[string]any     `json:"meta,omitempty"`
	Error *internal.AppError `json:"error,omitempty"`
}

func Success(data interface{}, meta map[string]any) APIResponse {
	return APIResponse{Data: data, Meta: meta}
}

// Fail puts status in the body as the error code.
func Fail(status int, msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(status, msg)}
}

func Unauthorized(msg string) APIResponse {
	return Fail(http.StatusUnauthorized, msg)
}
