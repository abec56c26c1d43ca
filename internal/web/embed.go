package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parse toàn bộ page templates (kèm partials header/footer) một lần lúc startup
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustTemplates panic nếu template lỗi, dùng trong main và tests
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
