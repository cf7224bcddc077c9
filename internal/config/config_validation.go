// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.Provider {
	case StorageMemory:
	case StorageSQLite:
		if !IsInMemoryDSN(cfg.Storage.DB.DSN) {
			return fmt.Errorf("%w: sqlite DSN %q is not an in-memory database", ErrInvalidStorageConfigs, cfg.Storage.DB.DSN)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidStorageConfigs, cfg.Storage.Provider)
	}

	if cfg.App.TokenIssuer != "" && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token issuer requires a token sign key", ErrInvalidAppConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// IsInMemoryDSN reports whether a go-sqlite3 DSN names an in-memory
// database.
func IsInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// LogLevel returns the parsed log level. Only valid after validate.
func (cfg *StructuredConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.DebugLevel
	}
	return level
}
