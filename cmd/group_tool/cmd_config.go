package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/grouptool/internal/cli/exit"
	"github.com/spechtlabs/grouptool/internal/cli/pretty_print"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	cmdConfig := &cobra.Command{
		Use:   "config [key] [value] [--force]",
		Short: "Get or set configuration values",
		Long: `Get or set configuration values in the group_tool configuration file.

This command works similarly to ` + "`git config --global`" + `:

- When called with no arguments, shows all current configuration
- When called with just a key, it shows the current value
- When called with key and value, it sets the configuration
- Configuration is written to the file that was used to load the current config
- If no config file exists and ` + "`--force`" + ` is used, creates ` + "`~/.config/grouptool/config.yaml`",

		Example: `# Show all current configuration
group_tool config

# Show the socket groupd is expected on
group_tool config groupd.socket

# Always fail on query errors
group_tool config output.strict true

# Create a config file and set a value (when no config exists)
group_tool config groupd.maxGroups 128 --force`,
		Args: cobra.RangeArgs(0, 2),
		RunE: runConfig,
	}

	cmdConfig.Flags().BoolP("force", "f", false, "Create config file at the lowest tier if no config file exists")
	cmdConfig.Flags().Bool("filename", false, "Show the filename of the config file used")
	return cmdConfig
}

func runConfig(cmd *cobra.Command, args []string) error {
	showFilename, err := cmd.Flags().GetBool("filename")
	if err != nil {
		showFilename = false
	}

	switch len(args) {
	case 0:
		return showAllConfig(cmd, showFilename)

	case 1:
		printConfigValue(args[0], showFilename)
		return nil

	default:
		key, value := args[0], args[1]
		forceCreate, err := cmd.Flags().GetBool("force")
		if err != nil {
			forceCreate = false
		}
		if herr := setConfigValue(key, value, forceCreate); herr != nil {
			return exit.Config(herr)
		}
		pretty_print.PrintOk("Configuration updated", fmt.Sprintf("%s = %v", key, value))
		return nil
	}
}

func printConfigValue(key string, showFilename bool) {
	value := viper.Get(key)
	if value == nil {
		pretty_print.PrintInfo(fmt.Sprintf("Configuration key not set: %s", key))
		return
	}

	if showFilename {
		pretty_print.PrintInfoIcon("→", fmt.Sprintf("%s: %v", key, value), "Config file used: "+viper.ConfigFileUsed())
	} else {
		pretty_print.PrintInfoIcon("→", fmt.Sprintf("%s: %v", key, value))
	}
}

func setConfigValue(key, value string, forceCreate bool) humane.Error {
	configFileUsed := viper.ConfigFileUsed()

	if configFileUsed == "" && !forceCreate {
		return humane.New("No configuration file is used. Use --force to create one at ~/.config/grouptool/config.yaml",
			"run 'group_tool config --force <key> <value>' to create a new config file",
		)
	}

	if configFileUsed == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return humane.Wrap(err, "failed to determine home directory", "ensure $HOME is set")
		}
		configFileUsed = filepath.Join(homeDir, ".config", "grouptool", "config.yaml")
		if err := os.MkdirAll(filepath.Dir(configFileUsed), 0o755); err != nil {
			return humane.Wrap(err, "failed to create config directory", "check permissions for "+filepath.Dir(configFileUsed))
		}
		viper.SetConfigFile(configFileUsed)
		if _, err := os.Stat(configFileUsed); err != nil {
			if f, cErr := os.Create(configFileUsed); cErr == nil {
				_ = f.Close()
			}
		}
	}

	viper.Set(key, parseValue(value))

	if err := viper.WriteConfig(); err != nil {
		return humane.Wrap(err, "failed to write config file", "check file permissions and disk space")
	}
	return nil
}

// parseValue keeps booleans and integers typed in the written YAML.
func parseValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	return value
}

func showAllConfig(cmd *cobra.Command, showFilename bool) error {
	if showFilename {
		pretty_print.PrintInfo("Config file used:", viper.ConfigFileUsed())
	}

	buf := new(bytes.Buffer)
	if err := viper.WriteConfigTo(buf); err != nil {
		return exit.Config(humane.Wrap(err, "failed to render configuration"))
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return nil
}
