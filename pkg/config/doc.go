// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared with struct tags understood by
// github.com/caarlos0/env:
//
//	type AppConfig struct {
//		Name  string `env:"APP_NAME" envDefault:"pairpad"`
//		Debug bool   `env:"APP_DEBUG" envDefault:"false"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Each component owns its own config struct and loads it independently;
// there is no central configuration registry.
package config
