package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Scrypt modes for keystore encryption. Light weakens the key derivation
// cost considerably and is meant for development only.
const (
	ScryptStandard = "standard"
	ScryptLight    = "light"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	EthereumRPCURL string `envconfig:"ETH_RPC_URL" default:"https://ethereum-rpc.publicnode.com"`
	KeystoreScrypt string `envconfig:"KEYSTORE_SCRYPT" default:"standard"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.KeystoreScrypt != ScryptStandard && cfg.KeystoreScrypt != ScryptLight {
		return fmt.Errorf("invalid KEYSTORE_SCRYPT %q: must be %q or %q", cfg.KeystoreScrypt, ScryptStandard, ScryptLight)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetEthereumRPCURL returns the JSON-RPC endpoint from configuration
func GetEthereumRPCURL() string {
	return Get().EthereumRPCURL
}

// GetKeystoreScrypt returns the configured scrypt mode
func GetKeystoreScrypt() string {
	return Get().KeystoreScrypt
}
