package transcript

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/carepal/backend/internal/model/chat"
)

//go:embed templates/*.html
var templateFS embed.FS

var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// PageData is the template data for the transcript page.
type PageData struct {
	Title       string
	Disclaimer  string
	PersonaName string
	Session     chat.Session
	Messages    []MessageView
}

// MessageView is a transcript message with its content rendered to HTML.
type MessageView struct {
	chat.Message
	HTML template.HTML
}

func parseTemplate() *template.Template {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
	}
	return template.Must(template.New("transcript.html").Funcs(funcMap).ParseFS(templateFS, "templates/transcript.html"))
}

// renderMarkdown converts reply markdown to HTML. Raw HTML in the input is
// not passed through.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
