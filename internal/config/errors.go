package config

import "errors"

var (
	// ErrTokenSignKeyRequired is returned by validation when no JWT signing
	// key is configured and development mode is off.
	ErrTokenSignKeyRequired = errors.New("token sign key is required (set APP_TOKEN_SIGN_KEY or run with -dev)")

	// ErrDatabaseDSNRequired is returned by validation when no database DSN
	// is configured.
	ErrDatabaseDSNRequired = errors.New("database DSN is required (set STORAGE_DB_DATABASE_URI)")
)
