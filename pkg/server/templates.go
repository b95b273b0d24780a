package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"droscher.com/MyWhiskies/pkg/model"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutPattern   = "templates/layout/*.html"
	pagesDirectory  = "templates/pages"
	staticDirectory = "templates/static"
	dateLayout      = "2006-01-02"
)

// Templates renders pages. Each page is parsed together with the shared
// layout so it can fill in the "content" block.
type Templates struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"typeName":    func(t model.BottleType) string { return t.DisplayName() },
	"bottleTypes": model.BottleTypes,
	"date":        formatDate,
	"float":       formatFloat,
	"int":         formatInt,
	"str":         formatString,
	"join":        strings.Join,
	"contains":    slices.Contains[[]uint],
}

func LoadTemplates() (*Templates, error) {
	base, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, layoutPattern)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(templateFS, pagesDirectory)
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))

	for _, entry := range entries {
		page, err := base.Clone()
		if err != nil {
			return nil, err
		}

		if _, err := page.ParseFS(templateFS, path.Join(pagesDirectory, entry.Name())); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}

		pages[entry.Name()] = page
	}

	return &Templates{pages: pages}, nil
}

func (t *Templates) Render(w http.ResponseWriter, status int, name string, data Page) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(dateLayout)
}

func formatFloat(value *float64) string {
	if value == nil {
		return ""
	}

	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func formatInt(value *int) string {
	if value == nil {
		return ""
	}

	return strconv.Itoa(*value)
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
