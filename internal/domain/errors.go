package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthenticated = errors.New("usuário não autenticado")
	ErrInvalidTenant   = errors.New("empresa não identificada")
	ErrPartnerRequired = errors.New("selecione um parceiro para buscar os títulos")
)
