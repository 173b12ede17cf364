package handler

import "github.com/cargoflow/backend/internal/interfaces/http/dto"

// APIResponse is the typed response envelope used in API documentation
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}
