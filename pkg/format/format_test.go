package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Financeiro-api/pkg/format"
)

func TestBRL(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"5.5":        "R$ 5,50",
		"999.999":    "R$ 1.000,00",
		"1234.5":     "R$ 1.234,50",
		"1000000":    "R$ 1.000.000,00",
		"-25000.1":   "-R$ 25.000,10",
	}
	for in, want := range cases {
		assert.Equal(t, want, format.BRL(decimal.RequireFromString(in)), "entrada %s", in)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "29/02/2024", format.Date(&d))
	assert.Equal(t, "-", format.Date(nil))
}

func TestDateISO(t *testing.T) {
	assert.Equal(t, "05/01/2024", format.DateISO("2024-01-05"))
	assert.Equal(t, "-", format.DateISO(""))
	assert.Equal(t, "ontem", format.DateISO("ontem"))
}

func TestOpt(t *testing.T) {
	s := "123"
	empty := ""
	assert.Equal(t, "123", format.Opt(&s))
	assert.Equal(t, "-", format.Opt(&empty))
	assert.Equal(t, "-", format.Opt(nil))
}
