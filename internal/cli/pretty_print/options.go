package pretty_print

import (
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// PrintOptions controls how messages are formatted
type PrintOptions struct {
	// Theme is the theme to use for the print options
	Theme Theme

	// IndentSize controls the number of spaces used for indentation of context lines
	IndentSize int

	// NoColor disables colored output
	NoColor bool

	// LevelIcons maps print levels to their display icons
	LevelIcons map[PrintLevel]string

	// IconStyles maps print levels to their display styles
	IconStyles map[PrintLevel]themeStyleFunc

	// ContextStyle defines the style for context lines
	ContextStyle themeStyleFunc

	// MessageStyle defines the style for the main message
	MessageStyle themeStyleFunc

	// MarkdownRenderer renders help text
	MarkdownRenderer markdownRendererFunc

	// Error holds an error to be rendered with humane-errors formatting
	Error error

	// RenderHumaneError determines whether to use humane error rendering
	RenderHumaneError bool
}

type themeStyleFunc func(theme Theme) lipgloss.Style
type markdownRendererFunc func(theme Theme) *glamour.TermRenderer

// DefaultOptions returns the default print options, honouring output.theme,
// NO_COLOR and whether stdout is a terminal.
func DefaultOptions() *PrintOptions {
	options := &PrintOptions{
		Theme:      TokyoNightStyle,
		IndentSize: 4,
		NoColor:    false,
		LevelIcons: map[PrintLevel]string{
			OkLvl:    "✓",
			InfoLvl:  "ℹ",
			WarnLvl:  "!",
			ErrLvl:   "✗",
			DebugLvl: "D",
			NoOp:     "",
		},
		IconStyles: map[PrintLevel]themeStyleFunc{
			NoOp:     secondaryStyle,
			OkLvl:    okStyle,
			InfoLvl:  infoStyle,
			WarnLvl:  warnStyle,
			ErrLvl:   errStyle,
			DebugLvl: secondaryStyle,
		},
		ContextStyle: secondaryStyle,
		MessageStyle: normalStyle,
		MarkdownRenderer: func(theme Theme) *glamour.TermRenderer {
			if !IsTerminal() {
				theme = NoTTYStyle
			}
			renderer, _ := glamour.NewTermRenderer(
				glamour.WithStandardStyle(string(theme)),
				glamour.WithWordWrap(0),
			)
			return renderer
		},
		Error:             nil,
		RenderHumaneError: true,
	}

	theme := viper.GetString("output.theme")
	if theme != "" && slices.Contains(AllThemeNames(), theme) {
		options.Theme = Theme(theme)
	}

	if !IsTerminal() {
		options.Theme = NoTTYStyle
	}

	if _, hasNoColor := os.LookupEnv("NO_COLOR"); hasNoColor || !IsTerminal() {
		options.NoColor = true
	}

	return options
}

// Option is a function that modifies PrintOptions
type Option func(*PrintOptions)

// WithIndentSize sets the indent size
func WithIndentSize(size int) Option {
	return func(o *PrintOptions) {
		o.IndentSize = size
	}
}

// WithNoColor enables or disables colors
func WithNoColor(noColor bool) Option {
	return func(o *PrintOptions) {
		o.NoColor = noColor
	}
}

// WithIcon sets a custom icon for a print level
func WithIcon(level PrintLevel, icon string) Option {
	return func(o *PrintOptions) {
		o.LevelIcons[level] = icon
	}
}

// WithError sets an error to be rendered using humane-errors formatting
func WithError(err error) Option {
	return func(o *PrintOptions) {
		o.Error = err
		o.RenderHumaneError = true
	}
}

// WithoutHumaneErrorRendering disables humane error rendering even if an error is provided
func WithoutHumaneErrorRendering() Option {
	return func(o *PrintOptions) {
		o.RenderHumaneError = false
	}
}
