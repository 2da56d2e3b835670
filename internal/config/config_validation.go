package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - Storage.DB.DSN must be non-empty.
//   - App.TokenSignKey must be non-empty, unless App.DevMode is set, in
//     which case a random key is generated and App.TokenSignKeyGenerated is
//     raised so the caller can log a warning. A production deployment never
//     runs on a silently generated secret.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrDatabaseDSNRequired
	}

	if cfg.App.TokenSignKey == "" {
		if !cfg.App.DevMode {
			return ErrTokenSignKeyRequired
		}

		key, err := generateSignKey()
		if err != nil {
			return fmt.Errorf("error generating dev token sign key: %w", err)
		}

		cfg.App.TokenSignKey = key
		cfg.App.TokenSignKeyGenerated = true
	}

	return nil
}

// generateSignKey produces a 32-byte random key, hex-encoded.
func generateSignKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
