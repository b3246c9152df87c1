package dto

// ErrorResponse cuerpo de error HTTP. "error" es el campo que lee el front del portal.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
