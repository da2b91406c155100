package dto

import "time"

// DateLayout formato de fecha de la API (fechas de negocio sin hora).
const DateLayout = "2006-01-02"

// ParseDate parsea una fecha "YYYY-MM-DD" de un request.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializa una fecha de negocio para responses.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación para updates y deletes.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
