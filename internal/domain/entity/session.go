package entity

// Session identidad resuelta a partir de la cookie de sesión.
// IDEmpresa es el tenant (ID_SISTEMA en la vista del ERP); vacío si el token no lo trae.
type Session struct {
	UserID    string
	Name      string
	IDEmpresa string
}
