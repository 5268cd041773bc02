package commands

import (
	"flag"
	"fmt"

	"github.com/mmaisel/networkd-apply/internal/config"
	"github.com/mmaisel/networkd-apply/internal/log"
	"github.com/mmaisel/networkd-apply/internal/networkd"
	"github.com/mmaisel/networkd-apply/internal/networking"
	"github.com/mmaisel/networkd-apply/internal/reconciler"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

// SelfCheckCommand validates the configuration, verifies that every
// configured MAC address belongs to a present system interface and reports
// whether the target directory is in sync.
type SelfCheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")

	interfaces, err := networking.GetInterfaceList()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	for _, iface := range g.cfg.Interfaces {
		if !iface.IsPhysical() || iface.MAC == nil {
			continue
		}

		if match := networking.FindByMAC(interfaces, *iface.MAC); match == nil {
			log.Warnf("Interface '%s': no system interface with MAC %s found", iface.Name, *iface.MAC)
		} else {
			log.Infof("Interface '%s': matches system interface '%s'", iface.Name, match.Attrs().Name)
		}
	}

	attrs, err := wantedAttrs(g.cfg)
	if err != nil {
		return err
	}

	desired, err := networkd.Generate(g.cfg)
	if err != nil {
		return fmt.Errorf("failed to generate networkd configuration: %v", err)
	}

	store := reconciler.NewDirStore(g.cfg.GetAbsNetworkdDir())
	current, err := store.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read current configuration: %v", err)
	}

	result := reconciler.Reconcile(desired, current, attrs)
	if result.Changed {
		log.Warnf("Target directory %s is out of sync (%d to write, %d to remove), run 'networkd-apply apply'",
			g.cfg.GetAbsNetworkdDir(), len(result.ToWrite), len(result.ToRemove))
	} else {
		log.Infof("Target directory %s is in sync", g.cfg.GetAbsNetworkdDir())
	}

	log.Infof("Self-check finished")

	return nil
}
