package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadComparerConfig loads config from command instance to predefined config variables
func LoadComparerConfig(cmd *cobra.Command) (*ComparerConfig, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// set default configs
	setComparerDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(global.ConfigFileName)
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME/" + global.ConfigFileName)
	}

	if err := viper.ReadInConfig(); err != nil {
		// stdout is reserved for the report
		fmt.Fprintln(os.Stderr, "Warning: No configuration file found. Proceeding with defaults")
	}

	cfg, err := populateComparerConfig(new(ComparerConfig))
	if err != nil {
		return nil, err
	}
	applyLogOverrides(cfg)
	return cfg, nil
}

// applyLogOverrides folds the --verbose and --log-file shortcuts into LogConfig.
func applyLogOverrides(cfg *ComparerConfig) {
	if cfg.Verbose {
		cfg.LogConfig.ConsoleLevel = "debug"
	}
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = cfg.LogFile
	}
}
