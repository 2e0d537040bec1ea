package config

import (
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/spf13/viper"
)

func setComparerDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./covcompare.log")
	viper.SetDefault("output", global.DefaultOutputFormat)
	viper.SetDefault("baseline-source", global.DefaultBaselineSource)
	viper.SetDefault("asset-name", global.DefaultAssetName)
	viper.SetDefault("github-api-url", global.DefaultGitHubAPIURL)
	viper.SetDefault("github-graphql-url", global.DefaultGraphQLURL)
	viper.SetDefault("Verbose", false)
}
