package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// TitulosReceberRequest parámetros de GET /api/sankhya/titulos-receber.
// Todos opcionales; los tri-estado usan 1, 2 o 3 (Todos).
type TitulosReceberRequest struct {
	CodParceiro          string `query:"codParceiro"`
	DataNegociacaoInicio string `query:"dataNegociacaoInicio"` // YYYY-MM-DD
	DataNegociacaoFinal  string `query:"dataNegociacaoFinal"`  // YYYY-MM-DD
	TipoFinanceiro       string `query:"tipoFinanceiro"`       // 1=Aberto, 2=Baixado, 3=Todos
	StatusFinanceiro     string `query:"statusFinanceiro"`     // 1=Real, 2=Provisão, 3=Todos
}

// ExportRequest filtros de la lista más el formato de salida.
type ExportRequest struct {
	TitulosReceberRequest
	Formato string `query:"formato"` // xlsx | pdf
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// BoletoDTO datos bancarios; nil cuando el título no tiene boleto registrado.
type BoletoDTO struct {
	CodigoBarras   *string `json:"codigoBarras"`
	NossoNumero    *string `json:"nossoNumero"`
	LinhaDigitavel *string `json:"linhaDigitavel"`
	NumeroRemessa  *string `json:"numeroRemessa"`
}

// TituloDTO un título a receber tal como lo consume la pantalla.
type TituloDTO struct {
	NroTitulo        string          `json:"nroTitulo"`
	Parceiro         string          `json:"parceiro"`
	CodParceiro      string          `json:"codParceiro"`
	Valor            decimal.Decimal `json:"valor"`
	ValorBaixa       decimal.Decimal `json:"valorBaixa"`
	ValorJuros       decimal.Decimal `json:"valorJuros"`
	DataVencimento   string          `json:"dataVencimento"` // YYYY-MM-DD o vacío
	DataNegociacao   string          `json:"dataNegociacao"`
	Status           string          `json:"status"`         // Aberto | Baixado
	TipoFinanceiro   string          `json:"tipoFinanceiro"` // Real | Provisão
	TipoTitulo       string          `json:"tipoTitulo"`
	ContaBancaria    string          `json:"contaBancaria,omitempty"`
	Historico        string          `json:"historico,omitempty"`
	NumeroParcela    string          `json:"numeroParcela"`
	OrigemFinanceiro string          `json:"origemFinanceiro"`
	CodigoEmpresa    int64           `json:"codigoEmpresa"`
	CodigoNatureza   int64           `json:"codigoNatureza"`
	NuNota           *int64          `json:"nuNota,omitempty"`
	NumNota          *int64          `json:"numNota,omitempty"`
	CodTipOper       *int64          `json:"codTipOper,omitempty"`
	Boleto           BoletoDTO       `json:"boleto"`
}

// TotaisDTO contadores de resumen.
type TotaisDTO struct {
	Real     int `json:"real"`
	Provisao int `json:"provisao"`
	Aberto   int `json:"aberto"`
	Baixado  int `json:"baixado"`
}

// TitulosReceberResponse respuesta completa de la lista.
type TitulosReceberResponse struct {
	Titulos []TituloDTO `json:"titulos"`
	Totais  TotaisDTO   `json:"totais"`
}
