// Package financeiro contiene las reglas puras de filtrado y totalización de títulos.
package financeiro

import (
	"fmt"

	"github.com/jhoicas/Financeiro-api/internal/domain"
)

// StatusFinanceiro filtro Real / Provisão.
type StatusFinanceiro int

const (
	StatusReal     StatusFinanceiro = 1
	StatusProvisao StatusFinanceiro = 2
	StatusTodos    StatusFinanceiro = 3
)

// TipoFinanceiro filtro Aberto / Baixado.
type TipoFinanceiro int

const (
	TipoAberto  TipoFinanceiro = 1
	TipoBaixado TipoFinanceiro = 2
	TipoTodos   TipoFinanceiro = 3
)

// ParseStatusFinanceiro convierte el parámetro de query. Vacío equivale a Todos.
func ParseStatusFinanceiro(s string) (StatusFinanceiro, error) {
	switch s {
	case "", "3":
		return StatusTodos, nil
	case "1":
		return StatusReal, nil
	case "2":
		return StatusProvisao, nil
	}
	return 0, fmt.Errorf("%w: statusFinanceiro %q (use 1, 2 ou 3)", domain.ErrInvalidInput, s)
}

// ParseTipoFinanceiro convierte el parámetro de query. Vacío equivale a Todos.
func ParseTipoFinanceiro(s string) (TipoFinanceiro, error) {
	switch s {
	case "", "3":
		return TipoTodos, nil
	case "1":
		return TipoAberto, nil
	case "2":
		return TipoBaixado, nil
	}
	return 0, fmt.Errorf("%w: tipoFinanceiro %q (use 1, 2 ou 3)", domain.ErrInvalidInput, s)
}

// String devuelve el valor tal como viaja en la query string.
func (s StatusFinanceiro) String() string { return fmt.Sprintf("%d", int(s)) }

// String devuelve el valor tal como viaja en la query string.
func (t TipoFinanceiro) String() string { return fmt.Sprintf("%d", int(t)) }

// Label etiqueta para mostrar al usuario.
func (s StatusFinanceiro) Label() string {
	switch s {
	case StatusReal:
		return "Real"
	case StatusProvisao:
		return "Provisão"
	}
	return "Todos"
}

// Label etiqueta para mostrar al usuario.
func (t TipoFinanceiro) Label() string {
	switch t {
	case TipoAberto:
		return "Aberto"
	case TipoBaixado:
		return "Baixado"
	}
	return "Todos"
}
