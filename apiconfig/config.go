package apiconfig

import (
	"path/filepath"

	"github.com/pkg/errors"
)

type Config struct {
	DataDir     string            `koanf:"data_dir"`
	GenesisFile string            `koanf:"genesis_file"`
	LogLevel    string            `koanf:"log_level"`
	Authority   string            `koanf:"authority"`
	Api         ApiConfig         `koanf:"api"`
	Nats        NatsConfig        `koanf:"nats"`
	Relay       RelayConfig       `koanf:"relay"`
	Outbox      OutboxConfig      `koanf:"outbox"`
	Journal     JournalConfig     `koanf:"journal"`
	Bookkeeping BookkeepingConfig `koanf:"bookkeeping"`
	Proofs      ProofsConfig      `koanf:"proofs"`
}

type ApiConfig struct {
	PublicPort int `koanf:"public_port"`
	AdminPort  int `koanf:"admin_port"`
}

// NatsConfig points at the broker. With Embedded set the daemon runs its own
// JetStream server on Host:Port, storing streams under StoreDir.
type NatsConfig struct {
	Embedded bool   `koanf:"embedded"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	StoreDir string `koanf:"store_dir"`
}

type RelayConfig struct {
	Stream              string `koanf:"stream"`
	RequestSubject      string `koanf:"request_subject"`
	ConfirmationSubject string `koanf:"confirmation_subject"`
	HeightSubject       string `koanf:"height_subject"`
	Durable             string `koanf:"durable"`
}

type OutboxConfig struct {
	MaxPending uint64 `koanf:"max_pending"`
}

type JournalConfig struct {
	Path string `koanf:"path"`
}

type BookkeepingConfig struct {
	DoubleEntry bool   `koanf:"double_entry"`
	SimpleEntry bool   `koanf:"simple_entry"`
	LogLevel    string `koanf:"log_level"`
}

type ProofsConfig struct {
	UseProofRuntime bool `koanf:"use_proof_runtime"`
}

func DefaultConfig() Config {
	return Config{
		DataDir:  "/root/.lsengine",
		LogLevel: "info",
		Api: ApiConfig{
			PublicPort: 9000,
			AdminPort:  9200,
		},
		Nats: NatsConfig{
			Embedded: true,
			Host:     "0.0.0.0",
			Port:     4222,
		},
		Relay: RelayConfig{
			Stream:              "remote_staking",
			RequestSubject:      "remote_staking.requests",
			ConfirmationSubject: "remote_staking.confirmations",
			HeightSubject:       "remote_staking.heights",
			Durable:             "lsengine",
		},
		Outbox: OutboxConfig{
			MaxPending: 1024,
		},
		Bookkeeping: BookkeepingConfig{
			DoubleEntry: true,
			LogLevel:    "info",
		},
	}
}

// StoreDir is where the engine keeps its state database.
func (c Config) StoreDir() string {
	return filepath.Join(c.DataDir, "data")
}

func (c Config) NatsStoreDir() string {
	if c.Nats.StoreDir != "" {
		return c.Nats.StoreDir
	}
	return filepath.Join(c.DataDir, "nats")
}

func (c Config) JournalPath() string {
	if c.Journal.Path != "" {
		return c.Journal.Path
	}
	return filepath.Join(c.DataDir, "journal.db")
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.Api.PublicPort <= 0 || c.Api.AdminPort <= 0 {
		return errors.New("api ports must be positive")
	}
	if c.Api.PublicPort == c.Api.AdminPort {
		return errors.Errorf("public and admin api share port %d", c.Api.PublicPort)
	}
	if c.Relay.Stream == "" || c.Relay.RequestSubject == "" || c.Relay.ConfirmationSubject == "" || c.Relay.HeightSubject == "" {
		return errors.New("relay stream and subjects are required")
	}
	if c.Outbox.MaxPending == 0 {
		return errors.New("outbox.max_pending must be positive")
	}
	return nil
}
