// Package form is the interactive terminal form of the calculator.
package form

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/edu2101/ror"
	"github.com/edu2101/ror/renderer"
)

// CalculationDelay is how long "Calculando..." is shown before the result.
const CalculationDelay = 300 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#001F3F"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	unitStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	buttonStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("white")).Background(lipgloss.Color("#007BFF"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type calculatedMsg struct{}

// Model is the bubbletea model of the form.
type Model struct {
	inputs      [3]textinput.Model // one per ror.Fields()
	focus       int
	errors      map[ror.Field]string
	calculating bool
	result      *ror.Evaluation
	currency    string
	delay       time.Duration
}

var placeholders = map[ror.Field]string{
	ror.FieldInitialAmount: "Ej: 10000",
	ror.FieldFinalAmount:   "Ej: 15000",
	ror.FieldYears:         "Ej: 5",
}

// New returns an empty form displaying amounts in currency.
func New(currency string) Model {
	if currency == "" {
		currency = ror.DefaultCurrency
	}
	m := Model{currency: currency, delay: CalculationDelay}
	for i, f := range ror.Fields() {
		in := textinput.New()
		in.Placeholder = placeholders[f]
		in.Prompt = "> "
		in.CharLimit = 32
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

// Evaluation is the last calculation, nil before the first one or after a clear.
func (m Model) Evaluation() *ror.Evaluation { return m.result }

// Values are the current texts of the fields.
func (m Model) Values() (initial, final, years string) {
	return m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calculatedMsg:
		e := ror.Evaluate(ror.ParseInput(m.Values()))
		m.errors = e.Validation.Errors
		m.result = &e
		m.calculating = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.calculating {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			m.calculating = true
			return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return calculatedMsg{} })
		case "esc", "ctrl+l":
			return m.clear(), nil
		case "tab", "down":
			return m.move(1), nil
		case "shift+tab", "up":
			return m.move(-1), nil
		}
	}

	// only the focused input receives the other messages
	field := ror.Fields()[m.focus]
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if raw := m.inputs[m.focus].Value(); ror.Sanitize(raw) != raw {
		m.inputs[m.focus].SetValue(ror.Sanitize(raw))
	}
	if _, ok := m.errors[field]; ok && m.inputs[m.focus].Value() != before {
		// the field error is cleared as soon as the field is edited
		m.errors = maps.Clone(m.errors)
		delete(m.errors, field)
	}
	return m, cmd
}

func (m Model) move(step int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) clear() Model {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.errors = nil
	m.result = nil
	return m.move(-m.focus)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Calculadora de Tasa de Rendimiento"))
	b.WriteString("\n\n")

	for i, f := range ror.Fields() {
		unit := m.currency
		if f == ror.FieldYears {
			unit = "años"
		}
		fmt.Fprintf(&b, "%s\n%s %s\n", labelStyle.Render(renderer.FieldLabels[f]), m.inputs[i].View(), unitStyle.Render(unit))
		if msg, ok := m.errors[f]; ok {
			b.WriteString(errorStyle.Render("• "+msg) + "\n")
		}
		b.WriteString("\n")
	}

	if m.calculating {
		b.WriteString(buttonStyle.Render("Calculando..."))
	} else {
		b.WriteString(buttonStyle.Render("Calcular RoR"))
	}
	b.WriteString("\n\n")

	if m.result != nil && !m.calculating {
		b.WriteString(m.resultView())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: calcular • tab: siguiente campo • esc: limpiar • ctrl+c: salir"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultView() string {
	r := renderer.NewReport(*m.result, m.currency)
	if !r.Valid {
		return errorStyle.Render(r.Error) + "\n"
	}
	st := r.Interpretation.Style
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.Border)).
		Background(lipgloss.Color(st.Background)).
		Foreground(lipgloss.Color(st.Text))
	return fmt.Sprintf("Rendimiento anual promedio: %s\n%s\n%s\n",
		labelStyle.Render(r.Rate),
		renderer.Gauge(r, renderer.GaugeWidth),
		card.Render(r.Interpretation.Title+"\n"+r.Interpretation.Description))
}

// Run shows the form until the user quits, and returns the last evaluation.
func Run(currency string) (*ror.Evaluation, error) {
	final, err := tea.NewProgram(New(currency)).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Evaluation(), nil
}
