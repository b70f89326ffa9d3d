package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ytreport/internal/domain"
	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/output"
)

const generatedLayout = "2006-01-02 15:04 MST"

// Renderer writes reports as plain text with labels resolved through t.
type Renderer struct {
	t      output.T
	locale string
	loc    *time.Location
}

func NewRenderer(t output.T, locale string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{t: t, locale: locale, loc: loc}
}

func (r *Renderer) tr(key string, data map[string]any) string {
	return r.t.T(r.locale, key, data)
}

// Render writes rep to w.
func (r *Renderer) Render(w io.Writer, rep *entities.Report) error {
	var b strings.Builder

	title := r.tr("widget.title", nil)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")
	if rep.Query != "" {
		b.WriteString(r.tr("report.query", map[string]any{"Query": rep.Query}) + "\n")
	}
	b.WriteString("\n")

	if rep.Total == 0 {
		b.WriteString(r.tr("report.empty", nil) + "\n")
	} else {
		b.WriteString(r.tr("report.total", map[string]any{"Count": rep.Total}) + "\n")
		b.WriteString(r.tr("report.resolved", map[string]any{"Count": rep.Resolved}) + "\n")
		b.WriteString(r.tr("report.unresolved", map[string]any{"Count": rep.Total - rep.Resolved}) + "\n")
		b.WriteString("\n" + r.tr("report.by_state", nil) + "\n")
		for _, sc := range rep.ByState {
			state := sc.State
			if state == "" {
				state = r.tr("report.state.none", nil)
			}
			b.WriteString(fmt.Sprintf("  %-20s %d\n", state, sc.Count))
		}
	}

	if !rep.GeneratedAt.IsZero() {
		b.WriteString("\n" + r.tr("report.generated", map[string]any{
			"Time": rep.GeneratedAt.In(r.loc).Format(generatedLayout),
		}) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderError writes the localized failure message. Domain errors get their
// own error.<code> message; anything else, or a code without a translation,
// uses widget.error.
func (r *Renderer) RenderError(w io.Writer, cause error) error {
	data := map[string]any{"Error": cause.Error()}
	msg := ""
	if code := domain.Code(cause); code != "" {
		key := "error." + code
		if m := r.tr(key, data); m != key {
			msg = m
		}
	}
	if msg == "" {
		msg = r.tr("widget.error", data)
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}
