package pretty_print

import (
	"fmt"
	"strings"
)

type PrintLevel int

const (
	NoOp PrintLevel = iota
	DebugLvl
	InfoLvl
	OkLvl
	WarnLvl
	ErrLvl
)

// FormatWithOptions formats a message with custom options and returns it as a string
func FormatWithOptions(lvl PrintLevel, msg string, context []string, opts ...Option) string {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if lvl == ErrLvl && options.Error != nil && options.RenderHumaneError {
		return renderHumaneError(options.Error, options)
	}

	icon, ok := options.LevelIcons[lvl]
	if !ok {
		icon = options.LevelIcons[InfoLvl]
	}

	style, ok := options.IconStyles[lvl]
	if !ok {
		style = options.IconStyles[InfoLvl]
	}

	status, message := icon, msg
	if !options.NoColor {
		status = style(options.Theme).Render(icon)
		message = options.MessageStyle(options.Theme).Render(msg)
	}

	indent := strings.Repeat(" ", options.IndentSize)
	var additionalContext strings.Builder
	for _, c := range context {
		if !options.NoColor {
			c = options.ContextStyle(options.Theme).Render(c)
		}
		additionalContext.WriteString("\n" + indent + c)
	}

	return fmt.Sprintf("%s %s%s\n", status, message, additionalContext.String())
}
