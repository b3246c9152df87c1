package entity

// Parceiro socio de negocio (cliente/proveedor) tal como lo deja en caché el módulo de parceiros.
type Parceiro struct {
	CodParc     string
	NomeParc    string
	CgcCpf      string // CNPJ o CPF
	RazaoSocial string
}
