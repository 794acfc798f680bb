package cmd

import (
	"errors"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/viper"
)

var configFileName string

// loadConfig reads the optional config file. A missing file is fine, a
// malformed one is an error.
func loadConfig() humane.Error {
	if configFileName != "" {
		viper.SetConfigFile(configFileName)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/grouptool/")
		viper.AddConfigPath("/etc/grouptool/")
	}

	viper.SetEnvPrefix("GROUPTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return humane.Wrap(err, "error reading config file",
			"fix the YAML syntax of "+viper.ConfigFileUsed(),
			"or point --config at another file",
		)
	}
	return nil
}
