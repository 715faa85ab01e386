package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardtable/blackjack/internal/game"
)

// Config is the full server configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Table  TableSettings  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings holds the table policy knobs. These change round
// outcomes, so they live in config rather than constants buried in the
// engine.
type TableSettings struct {
	MinPlayersToStart int  `hcl:"min_players_to_start,optional"`
	DealerHitsSoft17  bool `hcl:"dealer_hits_soft_17,optional"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Table: TableSettings{
			MinPlayersToStart: 1,
			DealerHitsSoft17:  false,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Table.MinPlayersToStart == 0 {
		config.Table.MinPlayersToStart = 1
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Table.MinPlayersToStart < game.MinCapacity || c.Table.MinPlayersToStart > game.MaxCapacity {
		return fmt.Errorf("min_players_to_start must be between %d and %d, got %d",
			game.MinCapacity, game.MaxCapacity, c.Table.MinPlayersToStart)
	}
	return nil
}

// Rules maps the table settings onto the engine's policy type.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		MinPlayersToStart: c.Table.MinPlayersToStart,
		DealerHitsSoft17:  c.Table.DealerHitsSoft17,
	}
}

// ListenAddr returns the full listen address
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
