// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and parses
// environment variables into struct fields via env tags:
//
//	type ServerConfig struct {
//		Addr    string `env:"SERVER_ADDR" envDefault:":8080"`
//		Debug   bool   `env:"DEBUG" envDefault:"false"`
//		Ticket  string `env:"API_TICKET,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Different types are cached independently; loading the same type twice
// returns the first parse result.
package config
