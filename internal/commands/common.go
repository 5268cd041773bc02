package commands

import (
	"fmt"

	"github.com/mmaisel/networkd-apply/internal/config"
	"github.com/mmaisel/networkd-apply/internal/reconciler"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// Validation must pass before any generation or filesystem work starts.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// wantedAttrs builds the target file attributes from the general config.
func wantedAttrs(cfg *config.Config) (reconciler.FileAttrs, error) {
	mode, err := cfg.General.Mode()
	if err != nil {
		return reconciler.FileAttrs{}, err
	}

	return reconciler.FileAttrs{
		UID:  cfg.General.Owner(),
		GID:  cfg.General.Group(),
		Mode: mode,
	}, nil
}
