package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// MutationResponse respuesta de las operaciones de escritura.
type MutationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK respuesta de éxito sin id.
func OK() MutationResponse {
	return MutationResponse{Success: true}
}

// Created respuesta de éxito con el id generado.
func Created(id string) MutationResponse {
	return MutationResponse{Success: true, ID: id}
}
