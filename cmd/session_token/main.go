// session_token emite una cookie de sesión firmada para desarrollo y pruebas manuales.
//
// Uso: go run ./cmd/session_token --empresa 7 [--user 1] [--name "Maria"]
// Imprime el valor a enviar en la cookie SESSION_COOKIE_NAME (por defecto "user").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Financeiro-api/pkg/config"
	pkgjwt "github.com/jhoicas/Financeiro-api/pkg/jwt"
)

func main() {
	empresa := pflag.String("empresa", "", "ID_EMPRESA de la sesión (obligatorio)")
	userID := pflag.String("user", "1", "id del usuario")
	name := pflag.String("name", "", "nombre del usuario")
	pflag.Parse()

	if *empresa == "" {
		fmt.Fprintln(os.Stderr, "falta --empresa")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Session.Secret == "" {
		fmt.Fprintln(os.Stderr, "SESSION_SECRET vacío")
		os.Exit(1)
	}

	tok, err := pkgjwt.Generate(cfg.Session.Secret, *userID, *empresa, *name, cfg.Session.Issuer, cfg.Session.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
	fmt.Printf("%s=%s\n", cfg.Session.CookieName, tok)
}
