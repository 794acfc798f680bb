package cmd

import (
	"fmt"
	"slices"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/grouptool/internal/cli/exit"
	"github.com/spechtlabs/grouptool/internal/cli/listing"
	"github.com/spechtlabs/grouptool/internal/cli/pretty_print"
	"github.com/spechtlabs/grouptool/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const Name = "group_tool"

// RunFunc executes the operation selected by DecodeOperation.
type RunFunc func(cmd *cobra.Command, op Operation, args []string) error

var shutdownObservability = func() {}

// Shutdown flushes the loggers installed by the root command.
func Shutdown() {
	shutdownObservability()
	shutdownObservability = func() {}
}

func NewRootCmd(run RunFunc) *cobra.Command {
	cmdRoot := cobra.Command{
		Use:   Name + " [flags] [ls|list [<level> <name>] | dump]",
		Short: Name + " queries the cluster group daemon (groupd)",
		Long: Name + ` lists the membership groups known to the local groupd or prints its raw debug dump.

### Operations

- ` + "`ls`" + ` or ` + "`list`" + `: print all groups, or only ` + "`<level> <name>`" + `
- ` + "`dump`" + `: write the daemon's debug buffer to stdout

The first ` + "`ls`" + `, ` + "`list`" + ` or ` + "`dump`" + ` among the arguments selects the operation. Without one, groups are listed.

### Theming

- Flag: ` + "`--theme`" + ` or ` + "`-t`" + `
- Config: ` + "`output.theme`" + `
- Environment: ` + "`GROUPTOOL_OUTPUT_THEME`" + `

**Accepted themes**: ascii, dark, dracula, *tokyo-night*, light, notty`,
		Example: `# list all groups
$ ` + Name + ` ls

# show a single group
$ ` + Name + ` ls 0 default

# save the daemon dump
$ ` + Name + ` dump > groupd.dump`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return preRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, rest := DecodeOperation(args)
			return run(cmd, op, rest)
		},
	}

	addFlags(&cmdRoot)
	cmdRoot.AddCommand(newVersionCmd())

	cmdRoot.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = loadConfig()
		pretty_print.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		pretty_print.PrintHelpText(cmd, args)
	})
	cmdRoot.SetFlagErrorFunc(flagError)

	return &cmdRoot
}

// flagError lets -h and -V win over an invalid flag that follows them,
// since pflag has already set them when it stops.
func flagError(cmd *cobra.Command, err error) error {
	if help, _ := cmd.Flags().GetBool("help"); help {
		cmd.HelpFunc()(cmd, nil)
		return nil
	}

	if version, _ := cmd.Flags().GetBool("version"); version {
		line := cmd.Version
		if line == "" {
			line = VersionLine(Name)
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), line)
		return nil
	}

	return exit.Usage(humane.Wrap(err, "Please use '-h' for usage."))
}

func preRun(cmd *cobra.Command) error {
	pretty_print.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if herr := loadConfig(); herr != nil {
		return exit.Config(herr)
	}

	cleanup, herr := utils.InitObservability()
	if herr != nil {
		return exit.Config(herr)
	}
	shutdownObservability = cleanup

	theme := viper.GetString("output.theme")
	if theme == "" {
		theme = string(pretty_print.TokyoNightStyle)
	}
	if !slices.Contains(pretty_print.AllThemeNames(), theme) {
		viper.Set("output.theme", string(pretty_print.TokyoNightStyle))
		return exit.Usage(humane.New(fmt.Sprintf("invalid theme: %s", theme),
			fmt.Sprintf("use one of %v", pretty_print.AllThemeNames()),
		))
	}

	if _, err := listing.ParseFormat(viper.GetString("output.format")); err != nil {
		return exit.Usage(humane.Wrap(err, "invalid output format",
			fmt.Sprintf("use one of %v", listing.AllFormatNames()),
		))
	}

	return nil
}
