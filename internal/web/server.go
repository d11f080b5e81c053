// Package web serves the single-page analyzer UI and its JSON API.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"

	"IntradayScope/internal/metrics"
	"IntradayScope/internal/model"
)

//go:embed templates/*.html
var templates embed.FS

// NewRouter wires the page, the API and the operational endpoints.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), RequestLogger())

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"lower": func(s model.Suggestion) string { return strings.ToLower(string(s)) },
	}).ParseFS(templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Page)
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/symbols", h.Symbols)
	api.GET("/analysis/:symbol", h.Analysis)
	api.GET("/scan", h.Scan)
	return r
}
