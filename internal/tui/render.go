package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/views"
)

const defaultWidth = 80

const (
	glyphOpen    = "○"
	glyphOverdue = "●"
	glyphDone    = "✓"
)

// Renderer paints view results onto a writer. Colors are dropped
// automatically when the writer is not a terminal.
type Renderer struct {
	out   io.Writer
	width int

	header    lipgloss.Style
	section   lipgloss.Style
	title     lipgloss.Style
	context   lipgloss.Style
	overdue   lipgloss.Style
	completed lipgloss.Style
	muted     lipgloss.Style
	success   lipgloss.Style
}

// NewRenderer builds a renderer for out. A width <= 0 means the terminal
// width, or 80 when out is not a terminal.
func NewRenderer(out io.Writer, width int) *Renderer {
	if width <= 0 {
		width = detectWidth(out)
	}
	lg := lipgloss.NewRenderer(out)

	return &Renderer{
		out:       out,
		width:     width,
		header:    lg.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain)),
		section:   lg.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)),
		title:     lg.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)),
		context:   lg.NewStyle().Faint(true).Foreground(lipgloss.Color(ColorSecondaryText)),
		overdue:   lg.NewStyle().Foreground(lipgloss.Color(ColorError)),
		completed: lg.NewStyle().Faint(true).Strikethrough(true).Foreground(lipgloss.Color(ColorDisabledText)),
		muted:     lg.NewStyle().Foreground(lipgloss.Color(ColorHelpText)),
		success:   lg.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
	}
}

func detectWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// View prints a view header, then each group. Groups are separated by a blank
// line and labeled groups get a section rule.
func (r *Renderer) View(res views.Result) {
	fmt.Fprintf(r.out, "\n  %s (%s)\n\n", r.header.Render(res.Title), plural(res.Count(), "task"))

	if res.Count() == 0 {
		fmt.Fprintf(r.out, "  %s\n\n", r.muted.Render("Nothing here."))
		return
	}

	for i, g := range res.Groups {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		if g.Label != "" {
			fmt.Fprintf(r.out, "  %s\n\n", r.section.Render("─── "+g.Label+" ───"))
		}
		for _, e := range g.Entries {
			fmt.Fprintln(r.out, r.Line(e))
		}
	}
	fmt.Fprintln(r.out)
}

// Line renders "  ID  glyph  title" with the context right-aligned when it fits.
func (r *Renderer) Line(e views.Entry) string {
	t := e.Task
	id := fmt.Sprintf("%3d", t.ID)

	var left string
	switch {
	case t.Status == models.TaskCompleted:
		left = r.completed.Render(fmt.Sprintf("  %s  %s  %s", id, glyphDone, t.Title))
	case e.Overdue:
		left = fmt.Sprintf("  %s  %s  %s", r.title.Render(id), r.overdue.Render(glyphOverdue), r.title.Render(t.Title))
	default:
		left = fmt.Sprintf("  %s  %s  %s", r.title.Render(id), glyphOpen, r.title.Render(t.Title))
	}

	if e.Context == "" {
		return left
	}

	used := lipgloss.Width(left) + lipgloss.Width(e.Context)
	if used+4 >= r.width {
		return left
	}
	return left + strings.Repeat(" ", r.width-used-2) + r.context.Render(e.Context)
}

// Projects prints the projects listing with area and open task count
func (r *Renderer) Projects(list []views.ProjectSummary) {
	fmt.Fprintf(r.out, "\n  %s (%s)\n\n", r.header.Render("Projects"), plural(len(list), "project"))

	if len(list) == 0 {
		fmt.Fprintf(r.out, "  %s\n\n", r.muted.Render("No projects yet."))
		return
	}

	for _, s := range list {
		name := s.Project.Name
		if s.Project.Status == models.ProjectCompleted {
			name = r.completed.Render(name)
		} else {
			name = r.title.Render(name)
		}
		detail := plural(s.OpenTasks, "open task")
		if s.Area != "" {
			detail = s.Area + " · " + detail
		}
		fmt.Fprintf(r.out, "  %-20s %s  %s\n", s.Project.Slug, name, r.context.Render(detail))
	}
	fmt.Fprintln(r.out)
}

// Areas prints area names, one per line
func (r *Renderer) Areas(areas []models.Area) {
	fmt.Fprintf(r.out, "\n  %s (%s)\n\n", r.header.Render("Areas"), plural(len(areas), "area"))
	for _, a := range areas {
		fmt.Fprintf(r.out, "  %s\n", r.title.Render(a.Name))
	}
	fmt.Fprintln(r.out)
}

// Success prints a one-line confirmation
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.out, r.success.Render(fmt.Sprintf(format, args...)))
}

// Plain prints a line without styling
func (r *Renderer) Plain(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
