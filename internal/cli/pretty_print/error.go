package pretty_print

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sierrasoftworks/humane-errors-go"
)

// renderHumaneError builds the CLI rendering of err: message, advice and the
// chain of causes. Plain errors render as a single line.
func renderHumaneError(err error, options *PrintOptions) string {
	header := lipgloss.NewStyle()
	section := lipgloss.NewStyle()
	code := lipgloss.NewStyle()
	bullet := "•"
	if !options.NoColor {
		header = header.Bold(true).Foreground(lipgloss.Color("9"))
		section = section.Bold(true).Foreground(lipgloss.Color("8"))
		code = code.Italic(true).Foreground(lipgloss.Color("245"))
		bullet = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render(bullet)
	}

	var he humane.Error
	if !errors.As(err, &he) {
		return header.Render("✗ "+err.Error()) + "\n"
	}

	var causes []string
	advice := make([]string, 0)
	for cur := error(he); cur != nil; cur = errors.Unwrap(cur) {
		causes = append(causes, cur.Error())

		if adv, ok := cur.(interface{ Advice() []string }); ok {
			advice = append(adv.Advice(), advice...)
		}
	}

	var b strings.Builder
	b.WriteString(header.Render("✗ " + he.Error()))
	b.WriteString("\n")

	if len(advice) > 0 {
		b.WriteString("\n" + section.Render("What you can do:") + "\n")
		for _, tip := range advice {
			b.WriteString("  " + bullet + " " + tip + "\n")
		}
	}

	if len(causes) > 1 {
		b.WriteString("\n" + section.Render("Root causes:") + "\n")
		for _, c := range causes[1:] {
			b.WriteString("  " + bullet + " " + code.Render(c) + "\n")
		}
	}

	return b.String()
}
