// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optional `.env` files are loaded into the process environment first.
//     Without explicit files the default `.env` of the working directory is
//     tried once per process and silently skipped when missing.
//   - The environment is then parsed into any Go struct using `env` tags.
//
// # Usage
//
//	type Config struct {
//	    Delimiter string `env:"MEDIATOR_DELIMITER" envDefault:":"`
//	    Strict    bool   `env:"MEDIATOR_STRICT" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles("./config/.env")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// WithPrefix namespaces every tag, so the same struct can be loaded twice
// from APP_A_MEDIATOR_* and APP_B_MEDIATOR_* variables.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
