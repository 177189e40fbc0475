package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "GOPHAUTH_"

// parseEnv overlays GOPHAUTH_* variables onto config. Variables from the
// file named by -env-file (or ./.env when present) are loaded first; real
// environment variables win over the file.
func parseEnv(config *Config, args []string) error {
	envFile := flagx.StringFlag(args, "env-file")
	if envFile == "" {
		envFile = ".env"
		if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
			envFile = ""
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return err
		}
	}

	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookupString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.StorageKind, "STORAGE")
	lookupString(&config.SecretKey, "SECRET_KEY")
	lookupString(&config.LogLevel, "LOG_LEVEL")

	if err := lookupInt(&config.BcryptCost, "BCRYPT_COST"); err != nil {
		return err
	}
	if err := lookupInt(&config.HashWorkers, "HASH_WORKERS"); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(envPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
		}
		config.ShutdownTimeout = d
	}
	return nil
}

func lookupString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}

func lookupInt(dst *int, name string) error {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}
