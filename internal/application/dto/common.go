package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo {status, message} de los endpoints legacy de activos.
type StatusResponse struct {
	Status  string `json:"status"` // "success" | "error"
	Message string `json:"message"`
}
