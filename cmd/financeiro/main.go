// financeiro es la pantalla de títulos a receber en consola.
//
// Uso:
//
//	financeiro --parceiro acme [--inicio 2024-01-01] [--fim 2024-01-31] [--tipo 1] [--status 3]
//	financeiro --parceiro 1234 --detalhe 98765
//	financeiro --parceiro 1234 --boleto 98765
//
// Los parceiros se leen del caché (FINANCEIRO_CACHE_FILE); --importar-parceiros lo carga desde un JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	domfin "github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	uifin "github.com/jhoicas/Financeiro-api/internal/ui/financeiro"
	"github.com/jhoicas/Financeiro-api/pkg/config"
	"github.com/jhoicas/Financeiro-api/pkg/format"
	"github.com/jhoicas/Financeiro-api/pkg/logger"
)

func main() {
	fs := pflag.NewFlagSet("financeiro", pflag.ExitOnError)
	fs.String("api", "", "URL base del portal (FINANCEIRO_API_URL)")
	fs.String("token", "", "valor de la cookie de sesión (FINANCEIRO_TOKEN)")
	fs.String("cache", "", "archivo del caché de parceiros (FINANCEIRO_CACHE_FILE)")
	fs.String("dir", "", "directorio de descarga de boletos (FINANCEIRO_DOWNLOAD_DIR)")
	importar := fs.String("importar-parceiros", "", "JSON de parceiros a guardar en el caché antes de buscar")
	parceiro := fs.String("parceiro", "", "nombre, razón social, CNPJ/CPF o código del parceiro")
	inicio := fs.String("inicio", "", "fecha de negociación desde (YYYY-MM-DD)")
	fim := fs.String("fim", "", "fecha de negociación hasta (YYYY-MM-DD)")
	tipo := fs.String("tipo", "3", "1=Aberto, 2=Baixado, 3=Todos")
	status := fs.String("status", "3", "1=Real, 2=Provisão, 3=Todos")
	detalhe := fs.String("detalhe", "", "nº del título a detallar")
	boleto := fs.String("boleto", "", "nº del título cuyo boleto se descarga")
	_ = fs.Parse(os.Args[1:])

	v := viper.New()
	_ = v.BindPFlag("FINANCEIRO_API_URL", fs.Lookup("api"))
	_ = v.BindPFlag("FINANCEIRO_TOKEN", fs.Lookup("token"))
	_ = v.BindPFlag("FINANCEIRO_CACHE_FILE", fs.Lookup("cache"))
	_ = v.BindPFlag("FINANCEIRO_DOWNLOAD_DIR", fs.Lookup("dir"))

	cfg, err := config.LoadWith(v)
	if err != nil {
		fail("config: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

	cache := uifin.NewFileCache(cfg.Client.CacheFile)
	if *importar != "" {
		raw, err := os.ReadFile(*importar)
		if err != nil {
			fail("importar parceiros: %v", err)
		}
		if err := cache.Set(uifin.CachedParceirosKey, string(raw)); err != nil {
			fail("importar parceiros: %v", err)
		}
	}

	api := uifin.NewHTTPClient(cfg.Client.BaseURL, cfg.Session.CookieName, cfg.Client.Token, cfg.Client.Timeout)
	screen := uifin.NewScreen(cache, api, uifin.NewLogNotifier(log), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if n := screen.LoadPartners(); n == 0 {
		fail("cache de parceiros vazio (%s)", cfg.Client.CacheFile)
	}
	p, ok := pickPartner(screen, *parceiro)
	if !ok {
		os.Exit(1)
	}
	fmt.Printf("Parceiro: %s (%s)\n", p.NomeParc, p.CodParc)

	st, err := domfin.ParseStatusFinanceiro(*status)
	if err != nil {
		fail("%v", err)
	}
	tp, err := domfin.ParseTipoFinanceiro(*tipo)
	if err != nil {
		fail("%v", err)
	}
	screen.SetDateRange(*inicio, *fim)
	screen.SetStatusFinanceiro(st)
	screen.SetTipoFinanceiro(tp)

	if err := screen.Search(ctx); err != nil {
		os.Exit(1)
	}
	state := screen.State()
	fmt.Println(uifin.Badges(state.Totais))
	fmt.Printf("Total: %s\n\n", format.BRL(uifin.Total(state.Titulos)))
	if err := uifin.RenderTable(os.Stdout, state.Titulos); err != nil {
		fail("%v", err)
	}

	if *detalhe != "" {
		t, err := screen.OpenDetails(*detalhe)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println()
		_ = uifin.RenderDetails(os.Stdout, t)
		screen.CloseDetails()
	}

	if *boleto != "" {
		t, err := screen.OpenDetails(*boleto)
		if err != nil {
			fail("%v", err)
		}
		screen.CloseDetails()
		if !uifin.ShowBoleto(t) {
			fail("título %s não possui boleto", t.NroTitulo)
		}
		path, err := screen.DownloadBoleto(ctx, t, cfg.Client.DownloadDir)
		if err != nil {
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

// pickPartner busca el término y selecciona cuando hay un único resultado o un código exacto.
func pickPartner(screen *uifin.Screen, term string) (entity.Parceiro, bool) {
	sugestoes := screen.SearchPartners(term)
	var chosen string
	switch {
	case len(sugestoes) == 1:
		chosen = sugestoes[0].CodParc
	default:
		for _, s := range sugestoes {
			if s.CodParc == term {
				chosen = s.CodParc
			}
		}
	}
	if chosen == "" {
		if len(sugestoes) == 0 {
			fmt.Fprintln(os.Stderr, "nenhum parceiro encontrado")
		} else {
			fmt.Fprintln(os.Stderr, "mais de um parceiro; refine a busca:")
			for _, s := range sugestoes {
				fmt.Fprintf(os.Stderr, "  %s\t%s\t%s\n", s.CodParc, s.NomeParc, s.CgcCpf)
			}
		}
		return entity.Parceiro{}, false
	}
	p, err := screen.SelectPartner(chosen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return entity.Parceiro{}, false
	}
	return p, true
}

func fail(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}
