package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebrahas/smartcli/internal/domain"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Renderer prints suggestions. Styling is dropped for non-terminals and
// when NO_COLOR is set, so the command text is always printed verbatim.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer builds a renderer for out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, color: colorEnabled(out)}
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Interpreting echoes the instruction being translated.
func (r *Renderer) Interpreting(instruction string) {
	fmt.Fprintf(r.out, "%s %s\n", r.paint(labelStyle, "Interpreting:"), instruction)
}

// Suggestion prints the command followed by any risk notes.
func (r *Renderer) Suggestion(s domain.Suggestion) {
	fmt.Fprintln(r.out, r.paint(labelStyle, "Suggested command:"))
	fmt.Fprintln(r.out, r.paint(commandStyle, s.Command))

	if !s.Risk.Risky() {
		return
	}
	style := warningStyle
	if s.Risk.Level.Severity() >= domain.RiskHigh.Severity() {
		style = dangerStyle
	}
	fmt.Fprintln(r.out, r.paint(style, fmt.Sprintf("Warning: %s risk", strings.ToUpper(string(s.Risk.Level)))))
	for _, reason := range s.Risk.Reasons {
		fmt.Fprintf(r.out, " - %s\n", reason)
	}
}

// Cancelled reports that nothing was run.
func (r *Renderer) Cancelled() {
	fmt.Fprintln(r.out, r.paint(dimStyle, "Cancelled."))
}

// Notice prints a plain informational line.
func (r *Renderer) Notice(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
