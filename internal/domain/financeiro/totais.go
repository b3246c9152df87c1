package financeiro

import "github.com/jhoicas/Financeiro-api/internal/domain/entity"

// Totais contadores de resumen sobre el conjunto devuelto.
// Siempre se cumple Real+Provisao == Aberto+Baixado == len(titulos).
type Totais struct {
	Real     int
	Provisao int
	Aberto   int
	Baixado  int
}

// Tally cuenta los títulos. Todo lo que no es PROVISAO='N' cuenta como provisión
// y todo lo que no es RECDESP=1 cuenta como baixado.
func Tally(titulos []*entity.Titulo) Totais {
	var t Totais
	for _, tit := range titulos {
		if tit.IsReal() {
			t.Real++
		} else {
			t.Provisao++
		}
		if tit.IsAberto() {
			t.Aberto++
		} else {
			t.Baixado++
		}
	}
	return t
}
