package handlers

import "github.com/prefeitura-rio/app-entregadores/internal/models"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RejectionResponse carries the complete list of reasons a submission was
// refused, whether they came from the intake pipeline or from the store's
// uniqueness check.
type RejectionResponse struct {
	Error      string             `json:"error"`
	Rejections []models.Rejection `json:"rejections"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
