package pretty_print

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type templateData struct {
	*cobra.Command
	ShowUsage bool
}

var helpTemplate = template.Must(template.New("help").Funcs(template.FuncMap{
	"FlagUsages": FlagUsages,
}).Parse(`
# Usage
` + "```bash" + `
{{if .Runnable}}{{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
{{.CommandPath}} [command]{{end}}
` + "```" + `
{{if gt (len .Aliases) 0}}
## Aliases
- {{.NameAndAliases}}
{{end}}
## Description
{{if and .ShowUsage (gt (len .Long) 0)}}
{{.Long}}
{{else}}
{{.Short}}
{{end}}
{{if and .ShowUsage .HasExample}}
## Examples
` + "```bash" + `
{{.Example}}
` + "```" + `
{{end}}
{{if .HasAvailableSubCommands}}
## Available Commands

| Command | Description |
|-------------|-------------|{{range .Commands}}{{if and .IsAvailableCommand (ne .Name "help")}}
| **` + "`{{.Name}}`" + `** | {{.Short}} |{{end}}{{end}}
{{end}}
{{if .HasAvailableLocalFlags}}
## Flags

| Flag | Type | Usage |
|------|------|-------|{{range (FlagUsages .LocalFlags)}}
| ` + "`{{.Flag}}`" + ` | {{.Type}} | {{.Usage}} |{{end}}
{{end}}
{{if .HasAvailableInheritedFlags}}
## Global Flags

| Flag | Type | Usage |
|------|------|-------|{{range (FlagUsages .InheritedFlags)}}
| ` + "`{{.Flag}}`" + ` | {{.Type}} | {{.Usage}} |{{end}}
{{end}}`))

// FormatHelpText renders the markdown help of cmd for the current theme.
func FormatHelpText(cmd *cobra.Command, showUsage bool, opts ...Option) string {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var buf bytes.Buffer
	if err := helpTemplate.Execute(&buf, templateData{Command: cmd, ShowUsage: showUsage}); err != nil {
		return cmd.UsageString()
	}

	renderer := options.MarkdownRenderer(options.Theme)
	if renderer == nil {
		return buf.String()
	}

	out, err := renderer.Render(buf.String())
	if err != nil {
		return buf.String()
	}
	return out
}

// PrintHelpText writes the long help of cmd to the command's output.
func PrintHelpText(cmd *cobra.Command, _ []string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), FormatHelpText(cmd, true))
}

type FlagUsage struct {
	Flag  string
	Type  string
	Usage string
}

// FlagUsages returns a list of flag usages for a flag set.
func FlagUsages(f *pflag.FlagSet) []FlagUsage {
	lines := make([]FlagUsage, 0)

	f.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		flagStr := fmt.Sprintf("    --%s", flag.Name)
		if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
			flagStr = fmt.Sprintf("-%s, --%s", flag.Shorthand, flag.Name)
		}

		varname, usage := pflag.UnquoteUsage(flag)
		if varname != "" && varname != flag.Value.Type() {
			flagStr = fmt.Sprintf("%s [%s]", flagStr, varname)
		}

		if !defaultIsZeroValue(flag) {
			if flag.Value.Type() == "string" {
				usage += fmt.Sprintf(" (default: %q)", flag.DefValue)
			} else {
				usage += fmt.Sprintf(" (default: %s)", flag.DefValue)
			}
		}
		if len(flag.Deprecated) != 0 {
			usage = fmt.Sprintf("(DEPRECATED: %s) %s", flag.Deprecated, usage)
		}

		lines = append(lines, FlagUsage{
			Flag:  flagStr,
			Type:  flag.Value.Type(),
			Usage: usage,
		})
	})

	return lines
}

// defaultIsZeroValue returns true if the default value for this flag represents
// a zero value.
func defaultIsZeroValue(f *pflag.Flag) bool {
	switch f.Value.Type() {
	case "bool":
		return f.DefValue == "false"
	case "duration":
		return f.DefValue == "0" || f.DefValue == "0s"
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "count", "float32", "float64":
		return f.DefValue == "0"
	case "string":
		return f.DefValue == ""
	case "intSlice", "stringSlice", "stringArray":
		return f.DefValue == "[]"
	default:
		switch f.Value.String() {
		case "false", "<nil>", "", "0":
			return true
		}
		return false
	}
}
