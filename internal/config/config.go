package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mmaisel/networkd-apply/internal/log"
)

const (
	DefaultNetworkdDir = "/etc/systemd/network"
	DefaultFileMode    = "0644"
)

// DefaultNaming is the fixed prefix scheme understood by systemd-networkd:
// 10- for hardware links, 20- for VLAN devices, 30- for bridges.
var DefaultNaming = NamingConfig{
	LinkFile:      "10-{{name}}.link",
	NetworkFile:   "10-{{name}}.network",
	VLANNetdev:    "20-{{name}}.netdev",
	VLANNetwork:   "20-{{name}}.network",
	BridgeNetdev:  "30-{{name}}.netdev",
	BridgeNetwork: "30-{{name}}.network",
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Target networkd directory: %s", config.GetAbsNetworkdDir())

	return &config, nil
}

// applyDefaults normalizes absent optional settings so that the rest of the
// code never has to deal with a missing general section or an empty kind.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.NetworkdDir == "" {
		c.General.NetworkdDir = DefaultNetworkdDir
	}
	if c.General.FileMode == "" {
		c.General.FileMode = DefaultFileMode
	}
	if c.General.Naming == nil {
		naming := DefaultNaming
		c.General.Naming = &naming
	}

	for _, iface := range c.Interfaces {
		if iface.Kind == "" {
			iface.Kind = KindPhysical
		}
	}
}
