// Package web embute os templates HTML servidos pela API. Manter os
// assets no binário dispensa volume extra no deploy.
package web

import (
	"embed"
	"fmt"
	"html/template"

	menudomain "github.com/MenuDoce/cardapio-api/internal/domain/menu"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega os templates embutidos com os helpers de exibição
// usados pelo cardápio público.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"orderLink": menudomain.OrderLink,
		"preco": func(v float64) string {
			return fmt.Sprintf("R$ %.2f", v)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
