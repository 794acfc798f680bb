package cmd

import (
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/grouptool/internal/cli/listing"
	"github.com/spechtlabs/grouptool/internal/cli/pretty_print"
	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key")) //nolint:nopanic // flag binding errors are programming errors
	}
}

func addFlags(cmd *cobra.Command) {
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	cmd.PersistentFlags().StringVarP(&configFileName, "config", "c", "", "Name of the config file")
	_ = cmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	})

	cmd.PersistentFlags().BoolP("version", "V", false, "print the version and exit")

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	viper.SetDefault("debug", false)
	bindFlag(cmd, "debug", "debug")

	cmd.PersistentFlags().StringP("socket", "s", groupd.DefaultSocketName, "abstract socket name groupd listens on")
	viper.SetDefault("groupd.socket", groupd.DefaultSocketName)
	bindFlag(cmd, "groupd.socket", "socket")

	cmd.PersistentFlags().IntP("max-groups", "m", groupd.DefaultMaxGroups, "maximum number of groups to list")
	viper.SetDefault("groupd.maxGroups", groupd.DefaultMaxGroups)
	bindFlag(cmd, "groupd.maxGroups", "max-groups")

	cmd.PersistentFlags().Duration("timeout", 0, "abort when groupd does not answer in time (0 waits forever)")
	viper.SetDefault("groupd.timeout", 0)
	bindFlag(cmd, "groupd.timeout", "timeout")

	cmd.PersistentFlags().StringP("output", "o", string(listing.FormatTable), "listing format: table, json or yaml")
	viper.SetDefault("output.format", string(listing.FormatTable))
	bindFlag(cmd, "output.format", "output")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listing.AllFormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.PersistentFlags().Bool("strict", false, "fail instead of printing an empty listing when a query fails")
	viper.SetDefault("output.strict", false)
	bindFlag(cmd, "output.strict", "strict")

	cmd.PersistentFlags().StringP("theme", "t", string(pretty_print.TokyoNightStyle), "theme to use for the CLI")
	viper.SetDefault("output.theme", string(pretty_print.TokyoNightStyle))
	bindFlag(cmd, "output.theme", "theme")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pretty_print.AllThemeNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
