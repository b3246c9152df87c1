package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores de las banderas del ERP (vista AS_FINANCEIRO).
const (
	ProvisaoNao   = "N" // lanzamiento real
	ProvisaoSim   = "S" // lanzamiento provisional (previsión)
	RecDespAberto = 1   // título pendiente

	TipoTituloBoleto = "Boleto"
)

// Titulo representa un título a receber leído de la vista financiera del ERP. Solo lectura.
type Titulo struct {
	NuFin         int64
	CodParc       int64
	NomeParc      string
	DtVenc        *time.Time
	DtNeg         *time.Time
	VlrDesdob     decimal.Decimal // valor del desdoblamiento (valor de face)
	VlrBaixa      decimal.Decimal
	VlrJuro       decimal.Decimal
	Provisao      string // "S" | "N"
	RecDesp       int
	NuNota        *int64
	NumNota       *int64
	CodTipOper    *int64
	Desdobramento string
	TipoTitulo    string
	ContaBancaria string
	Historico     string
	CodEmp        int64
	CodNat        int64
	Origem        string
	Boleto        Boleto
}

// Boleto datos bancarios opcionales del título.
type Boleto struct {
	CodigoBarras   *string
	NossoNumero    *string
	LinhaDigitavel *string
	NumeroRemessa  *string
}

// IsReal indica si el título es un lanzamiento real (no provisión).
func (t *Titulo) IsReal() bool { return t.Provisao == ProvisaoNao }

// IsAberto indica si el título sigue pendiente.
func (t *Titulo) IsAberto() bool { return t.RecDesp == RecDespAberto }
