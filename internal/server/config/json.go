package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept both "5s"
// strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDSN      string         `json:"database_dsn"`
	StorageKind      string         `json:"storage_kind"`
	SecretKey        string         `json:"secret_key"`
	BcryptCost       int            `json:"bcrypt_cost"`
	HashWorkers      int            `json:"hash_workers"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto config. Keys missing
// from the file keep their current values. No flag means nothing to load.
func parseJson(config *Config, args []string) error {
	path := flagx.StringFlag(args, "c", "config")
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		EndpointAddrHTTP: config.EndpointAddrHTTP,
		DatabaseDSN:      config.DatabaseDSN,
		StorageKind:      config.StorageKind,
		SecretKey:        config.SecretKey,
		BcryptCost:       config.BcryptCost,
		HashWorkers:      config.HashWorkers,
		ShutdownTimeout:  timex.Duration{Duration: config.ShutdownTimeout},
		LogLevel:         config.LogLevel,
	}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.StorageKind = c.StorageKind
	config.SecretKey = c.SecretKey
	config.BcryptCost = c.BcryptCost
	config.HashWorkers = c.HashWorkers
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
	config.LogLevel = c.LogLevel
	return nil
}
