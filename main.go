package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptogold-alerts/application"
	"cryptogold-alerts/models/constants"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	maxStartupAttempts = 3
	startupRetryPause  = 30 * time.Second
)

func init() {
	initConfig()
	initLog()
}

func initLog() {
	zerolog.SetGlobalLevel(constants.LogLevelFallback)

	logLevel, err := zerolog.ParseLevel(viper.GetString(constants.LogLevel))
	if err != nil {
		log.Warn().Err(err).Msgf("Log level not set, continue with %s...", constants.LogLevelFallback)
	} else {
		zerolog.SetGlobalLevel(logLevel)
		log.Debug().Msgf("Logger level set to '%s'", logLevel)
	}
}

func initConfig() {
	viper.SetConfigFile(constants.ConfigFileName)

	for configName, defaultValue := range constants.GetDefaultConfigValues() {
		viper.SetDefault(configName, defaultValue)
	}

	err := viper.ReadInConfig()
	if err != nil {
		log.Debug().Str(constants.LogFileName, constants.ConfigFileName).Msgf("Failed to read config file, continue...")
	}

	viper.AutomaticEnv()
}

func main() {
	if !constants.IsSupportedLanguage(viper.GetString(constants.DefaultLanguage)) {
		log.Fatal().Msgf("%s must be one of [%s, %s]", constants.DefaultLanguage, constants.LanguageEnglish, constants.LanguageHindi)
	}

	var app *application.Impl
	var err error
	for attempt := 1; attempt <= maxStartupAttempts; attempt++ {
		app, err = application.New()
		if err == nil {
			break
		}

		log.Error().Err(err).Int(constants.LogAttempt, attempt).Msgf("Failed to instantiate application")
		if attempt < maxStartupAttempts {
			time.Sleep(time.Duration(attempt) * startupRetryPause)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("Shutting down after failing to instantiate application")
	}

	go app.Run()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	log.Info().Msgf("%s v%s is now running. Press CTRL-C to exit.", constants.ExternalName, constants.Version)
	<-sc

	log.Info().Msgf("Gracefully shutting down %s...", constants.ExternalName)
	app.Shutdown()
}
