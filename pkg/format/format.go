// Package format helpers de presentación compartidos por exportadores y la pantalla de consola.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Empty valor que se muestra cuando no hay dato.
const Empty = "-"

// BRL formatea un valor como moneda brasileña: 1234.5 → "R$ 1.234,50".
func BRL(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := "R$ " + groupThousands(intPart) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Date dd/mm/yyyy o "-" si es nil.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Empty
	}
	return t.Format("02/01/2006")
}

// DateISO convierte "YYYY-MM-DD" a "dd/mm/yyyy". Si no parsea devuelve el texto original.
func DateISO(s string) string {
	if s == "" {
		return Empty
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// Opt devuelve el valor del puntero o "-".
func Opt(s *string) string {
	if s == nil || *s == "" {
		return Empty
	}
	return *s
}
