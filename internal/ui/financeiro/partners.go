package financeiro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
)

// parceiroJSON forma en que el módulo de parceiros serializa cada registro.
type parceiroJSON struct {
	CodParc     json.RawMessage `json:"CODPARC"`
	NomeParc    string          `json:"NOMEPARC"`
	CgcCpf      string          `json:"CGC_CPF"`
	RazaoSocial string          `json:"RAZAOSOCIAL"`
}

// DecodePartners acepta una lista JSON o un objeto { "parceiros": [...] }.
// CODPARC puede venir como número o como texto. Las entradas ilegibles se descartan
// y se cuentan en skipped; solo un payload sin lista es error.
func DecodePartners(raw string) (parceiros []entity.Parceiro, skipped int, err error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("parceiros: payload vacío")
	}

	var list []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, 0, fmt.Errorf("parceiros: %w", err)
		}
	case '{':
		var wrapped struct {
			Parceiros *[]json.RawMessage `json:"parceiros"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, 0, fmt.Errorf("parceiros: %w", err)
		}
		if wrapped.Parceiros == nil {
			return nil, 0, fmt.Errorf("parceiros: objeto sin campo parceiros")
		}
		list = *wrapped.Parceiros
	default:
		return nil, 0, fmt.Errorf("parceiros: formato no reconocido")
	}

	parceiros = make([]entity.Parceiro, 0, len(list))
	for _, item := range list {
		p, err := decodeParceiro(item)
		if err != nil {
			skipped++
			continue
		}
		parceiros = append(parceiros, p)
	}
	return parceiros, skipped, nil
}

func decodeParceiro(item json.RawMessage) (entity.Parceiro, error) {
	var p parceiroJSON
	if err := json.Unmarshal(item, &p); err != nil {
		return entity.Parceiro{}, fmt.Errorf("parceiros: %w", err)
	}
	cod, err := codParcString(p.CodParc)
	if err != nil {
		return entity.Parceiro{}, err
	}
	return entity.Parceiro{
		CodParc:     cod,
		NomeParc:    p.NomeParc,
		CgcCpf:      p.CgcCpf,
		RazaoSocial: p.RazaoSocial,
	}, nil
}

func codParcString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("parceiros: CODPARC inválido %s", raw)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// FilterPartners busca term como subcadena: sin distinguir mayúsculas en nombre y razón social,
// literal en CNPJ/CPF y código. Término vacío no devuelve sugerencias.
func FilterPartners(parceiros []entity.Parceiro, term string) []entity.Parceiro {
	if term == "" {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(term)

	var out []entity.Parceiro
	for _, p := range parceiros {
		if strings.Contains(fold.String(p.NomeParc), needle) ||
			strings.Contains(fold.String(p.RazaoSocial), needle) ||
			strings.Contains(p.CgcCpf, term) ||
			strings.Contains(p.CodParc, term) {
			out = append(out, p)
		}
	}
	return out
}
