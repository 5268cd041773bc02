package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/mmaisel/networkd-apply/internal/config"
	"github.com/mmaisel/networkd-apply/internal/log"
	"github.com/mmaisel/networkd-apply/internal/networkd"
	"github.com/mmaisel/networkd-apply/internal/reconciler"
)

func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.Check, "check", false, "Compute and report changes without touching the filesystem")
	gc.fs.BoolVar(&gc.ShowDiff, "diff", false, "Print the before/after state of the target directory")
	gc.fs.BoolVar(&gc.FailIfChanged, "fail-if-changed", false, "If any change was (or would be) needed, exit with error code (5)")

	return gc
}

type ApplyCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Check         bool
	ShowDiff      bool
	FailIfChanged bool
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
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

func (g *ApplyCommand) Run() error {
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

	if g.ShowDiff {
		diff := reconciler.RenderDiff(current, desired, attrs)
		fmt.Printf("--- before\n%s\n+++ after\n%s\n", diff.Before, diff.After)
	}

	g.logSummary(result)

	if g.Check {
		log.Infof("Check mode, not applying any changes")
	} else if result.Changed {
		if err := reconciler.Apply(store, desired, attrs, result); err != nil {
			return fmt.Errorf("failed to apply configuration: %v", err)
		}
		log.Infof("Configuration applied to %s", g.cfg.GetAbsNetworkdDir())
	}

	if g.FailIfChanged && result.Changed {
		log.Warnf("Changes detected, exiting with exit_code=5")
		os.Exit(5)
	}

	return nil
}

func (g *ApplyCommand) logSummary(result reconciler.Result) {
	if !result.Changed {
		log.Infof("Target directory is in sync, nothing to do")
		return
	}

	for _, name := range result.ToWrite {
		log.Infof("Will write: %s", name)
	}
	for _, name := range result.ToRemove {
		log.Infof("Will remove: %s", name)
	}
	if len(result.ToWrite) == 0 && len(result.ToRemove) == 0 {
		log.Infof("File contents are in sync, only ownership/permissions differ")
	}
}
