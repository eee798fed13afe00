// Package web renders the public pages of the site. If the `api` package
// talks to the payment processor, the `web` package talks to the visitor.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/Care4Youth/care4youth"
	"github.com/benbjohnson/hashfs"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
)

//go:embed templ static
var embedded embed.FS

var fsys = hashfs.NewFS(embedded)

// Web is the struct representing this whole package
type Web struct {
	debug bool
}

func NewWeb(debug bool) *Web {
	return &Web{debug: debug}
}

func (rt *Web) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", rt.index())
	r.Get("/about", rt.about())
	r.Get("/programs", rt.programs())
	r.Get("/volunteer", rt.volunteer())
	r.Get("/donate", rt.donate())

	r.Handle("/static/*", hashfs.FileServer(fsys))

	// PWA assets must live at the root scope
	r.Get("/manifest.json", serveEmbedded("static/manifest.json"))
	r.Get("/sw.js", serveEmbedded("static/sw.js"))

	return r
}

func serveEmbedded(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, embedded, name)
	}
}

func (rt *Web) parse(optFuncs template.FuncMap, files ...string) *template.Template {
	t := template.New("layout.html").Funcs(template.FuncMap{
		"version": func() string { return care4youth.Version },
		"formatCents": func(cents int64) string {
			return "$" + humanize.CommafWithDigits(float64(cents)/100, 2)
		},
		"asset": func(name string) string {
			return "/" + fsys.HashName("static/"+name)
		},
	})
	if optFuncs != nil {
		t = t.Funcs(optFuncs)
	}
	names := []string{"templ/layout.html"}
	for _, f := range files {
		names = append(names, "templ/"+f)
	}
	return template.Must(t.ParseFS(embedded, names...))
}

func (rt *Web) runTempl(w http.ResponseWriter, r *http.Request, templ *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templ.Execute(w, data); err != nil {
		slog.WarnContext(r.Context(), "Couldn't render template", slog.Any("err", err))
	}
}
