package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type config struct {
	EchoURL    string        `envconfig:"UPDATE_ROUTE53_ECHO_URL" default:"https://ifconfig.co/ip"`
	UserAgent  string        `envconfig:"UPDATE_ROUTE53_USER_AGENT" default:"update-route53/1.0"`
	Timeout    time.Duration `envconfig:"UPDATE_ROUTE53_TIMEOUT" default:"30s"`
	LogLevel   string        `envconfig:"UPDATE_ROUTE53_LOG_LEVEL" default:"warn"`
	AWSProfile string        `envconfig:"UPDATE_ROUTE53_AWS_PROFILE"`
}

// loadConfig reads envFile into the environment and then the environment into a config.
// Variables that are already set are not overwritten by the file.
//
// When required is not set, envFile is the implicit default: a missing file is fine,
// and a file anyone but the owner could read is left unloaded and reported as skipped.
func loadConfig(envFile string, required bool) (cfg config, skipped error, err error) {
	if envFile != "" {
		_, err := os.Stat(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
		case err != nil:
			return cfg, nil, fmt.Errorf("error reading env file: %w", err)
		default:
			if err := verifyPermissions(envFile); err != nil {
				if required {
					return cfg, nil, err
				}
				skipped = err
				break
			}
			if err := godotenv.Load(envFile); err != nil {
				return cfg, nil, fmt.Errorf("error loading env file \"%s\": %w", envFile, err)
			}
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, skipped, fmt.Errorf("error reading environment: %w", err)
	}
	if cfg.Timeout <= 0 {
		return cfg, skipped, fmt.Errorf("UPDATE_ROUTE53_TIMEOUT must be positive; got %s", cfg.Timeout)
	}
	return cfg, skipped, nil
}

// verifyPermissions rejects files that anyone but the owner could read.
// The env file may hold AWS credentials.
func verifyPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking env file permissions: %w", err)
	}

	perms := info.Mode().Perm()
	// Error messages will state that we want 0600,
	// but we'll also accept 0400 which is even more restricted.
	// The file might be provided by some secrets managing software as readonly.
	if perms != 0600 && perms != 0400 {
		return fmt.Errorf("invalid permissions for \"%s\": expected file permissions \"-rw-------\"; found \"%s\"", path, fs.FileMode(perms))
	}
	return nil
}
