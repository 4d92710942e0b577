package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-kdf key derivation for new saves (hkdf)
//	-handle-key key the last-used folder is remembered under
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "168h")
//	-session-check-interval auto-lock check interval (e.g., "1m")
//	-handle-cache folder handle cache SQLite path
//	-log-file log file path
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		kdf                  string
		handleKey            string
		sessionSignKey       string
		sessionIssuer        string
		sessionDuration      time.Duration
		sessionCheckInterval time.Duration
		handleCacheDSN       string
		logFile              string
		logLevel             string
		jsonConfigPath       string
	)

	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)
	fs.StringVar(&kdf, "kdf", "", "Key derivation for new saves (hkdf)")
	fs.StringVar(&handleKey, "handle-key", "", "Key the last-used folder is remembered under")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 168h)")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Auto-lock check interval (e.g., 1m)")
	fs.StringVar(&handleCacheDSN, "handle-cache", "", "Folder handle cache SQLite path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			KDF:       kdf,
			HandleKey: handleKey,
		},
		Session: Session{
			SignKey:       sessionSignKey,
			Issuer:        sessionIssuer,
			Duration:      sessionDuration,
			CheckInterval: sessionCheckInterval,
		},
		Storage: Storage{
			HandleCacheDSN: handleCacheDSN,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
