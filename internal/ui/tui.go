package ui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/internal/print"
)

// Catppuccin Mocha accents, same palette as the prompt styling.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CDD6F4")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#595B72")).
			Padding(0, 1)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0A1F0"))

	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	statusDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9399B2"))

	resultStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#595B72"))
)

type model struct {
	ctx   context.Context
	conn  *sqlconn.Conn
	label string

	input  textinput.Model
	result viewport.Model
	status string
	ready  bool
}

// Run starts the interactive prompt on conn. It blocks until the user
// quits; the caller still owns conn and closes it.
func Run(ctx context.Context, conn *sqlconn.Conn) error {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "SQL (Enter to run, Ctrl+C to quit)"
	ti.Focus()

	m := model{
		ctx:    ctx,
		conn:   conn,
		label:  conn.Dialect().Name,
		input:  ti,
		status: statusDimStyle.Render("Type a query and press Enter."),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header + input + status take 5 rows, borders take 2
		h := msg.Height - 7
		if h < 3 {
			h = 3
		}
		if !m.ready {
			m.result = viewport.New(msg.Width-2, h)
			m.ready = true
		} else {
			m.result.Width = msg.Width - 2
			m.result.Height = h
		}
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.runQuery(query)
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.result, cmd = m.result.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) runQuery(query string) {
	start := time.Now()

	if !sqlconn.ReturnsRows(query) {
		n, err := m.conn.Exec(m.ctx, query)
		if err != nil {
			m.setError(err)
			return
		}
		m.result.SetContent(fmt.Sprintf("%d row(s) affected", n))
		m.setOK(fmt.Sprintf("OK (%s)", time.Since(start).Truncate(time.Millisecond)))
		return
	}

	rs, err := m.conn.SelectSet(m.ctx, query)
	if err != nil {
		m.setError(err)
		return
	}

	var buf bytes.Buffer
	print.RenderTable(&buf, rs, print.Options{MaxWidth: 40})
	m.result.SetContent(buf.String())
	m.result.GotoTop()
	m.setOK(fmt.Sprintf("OK (%d rows, %s)", len(rs.Rows), time.Since(start).Truncate(time.Millisecond)))
}

func (m *model) setOK(msg string) {
	m.status = statusOKStyle.Render(msg)
}

func (m *model) setError(err error) {
	m.status = statusErrStyle.Render(err.Error())
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Render("SQLCONN  " + accentStyle.Render(strings.ToUpper(m.label)))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		resultStyle.Render(m.result.View()),
		m.input.View(),
		m.status,
	)
}
