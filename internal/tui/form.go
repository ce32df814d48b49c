package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tdo/internal/parser"
	"github.com/balkashynov/tdo/internal/scheduler"
)

type field int

const (
	fieldTitle field = iota
	fieldWhen
	fieldDeadline
	fieldProject
	fieldArea
	fieldTags
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "When", "Deadline", "Project", "Area", "Tags", "Notes"}

var fieldPlaceholders = [fieldCount]string{
	"What needs doing? (required)",
	"inbox, today, evening, anytime, someday or a date",
	"today, tomorrow, fri, next-week, 2025-03-01",
	"project slug",
	"area name",
	"comma separated",
	"",
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain)).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color(ColorSecondaryText))
	focusedLabel   = labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	formBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorBorder)).Padding(1, 2)
)

// FormResult is what the user submitted from the add form
type FormResult struct {
	Title string
	Flags scheduler.Flags
}

// AddForm is the interactive add-task form. It only collects input; the
// values go through the same validation as command-line flags.
type AddForm struct {
	inputs    []textinput.Model
	focus     field
	width     int
	err       string
	submitted bool
	cancelled bool
}

// NewAddForm creates the form with the title prefilled
func NewAddForm(title string) AddForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Width = 50
		in.Placeholder = fieldPlaceholders[i]
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i] = in
	}
	inputs[fieldTitle].CharLimit = 200
	inputs[fieldTitle].SetValue(title)
	inputs[fieldTitle].Focus()

	return AddForm{inputs: inputs}
}

func (m AddForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 20
		if w < 20 {
			w = 20
		}
		if w > 60 {
			w = 60
		}
		for i := range m.inputs {
			m.inputs[i].Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "enter":
			if m.focus == fieldCount-1 || msg.Alt {
				return m.submit()
			}
			return m.moveFocus(1), nil

		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m AddForm) moveFocus(delta int) AddForm {
	m.inputs[m.focus].Blur()
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.inputs[m.focus].Focus()
	return m
}

func (m AddForm) submit() (AddForm, tea.Cmd) {
	if strings.TrimSpace(m.inputs[fieldTitle].Value()) == "" {
		m.err = "Task title is required"
		if m.focus != fieldTitle {
			m = m.moveFocus(int(fieldTitle) - int(m.focus))
		}
		return m, nil
	}
	m.err = ""
	m.submitted = true
	return m, tea.Quit
}

func (m AddForm) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(formTitleStyle.Render("New task"))
	b.WriteString("\n")

	for i := field(0); i < fieldCount; i++ {
		label := labelStyle
		if i == m.focus {
			label = focusedLabel
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if hint := m.dateHint(time.Now()); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab move • enter next • ctrl+s save • esc cancel"))

	return formBoxStyle.Render(b.String())
}

// dateHint previews the date typed into the focused when/deadline field
func (m AddForm) dateHint(now time.Time) string {
	if m.focus != fieldWhen && m.focus != fieldDeadline {
		return ""
	}
	input := strings.TrimSpace(m.inputs[m.focus].Value())
	switch strings.ToLower(input) {
	case "", "inbox", "today", "evening", "today evening", "someday", "anytime":
		return ""
	}
	date, err := parser.ResolveDate(input, now)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return hintStyle.Render("→ " + date.Format("Monday, Jan 2 2006"))
}

// Submitted reports whether the user saved the form
func (m AddForm) Submitted() bool {
	return m.submitted
}

// Result converts the form values into a title and add flags
func (m AddForm) Result() FormResult {
	value := func(f field) string { return strings.TrimSpace(m.inputs[f].Value()) }
	optional := func(f field) *string {
		if v := value(f); v != "" {
			return &v
		}
		return nil
	}

	res := FormResult{Title: value(fieldTitle)}
	f := &res.Flags

	switch when := strings.ToLower(value(fieldWhen)); when {
	case "", "inbox":
	case "today":
		f.Today = true
	case "evening", "today evening":
		f.Today = true
		f.Evening = true
	case "someday":
		f.Someday = true
	case "anytime":
		f.Anytime = true
	default:
		f.When = &when
	}

	f.Deadline = optional(fieldDeadline)
	f.Project = optional(fieldProject)
	f.Area = optional(fieldArea)
	f.Notes = optional(fieldNotes)
	f.Tags = scheduler.NormalizeTags(strings.Split(value(fieldTags), ","))

	return res
}

// RunAddForm shows the form and returns the submitted values, or nil when
// the user cancelled.
func RunAddForm(title string) (*FormResult, error) {
	p := tea.NewProgram(NewAddForm(title), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(AddForm)
	if !ok || !m.Submitted() {
		return nil, nil
	}
	res := m.Result()
	return &res, nil
}
