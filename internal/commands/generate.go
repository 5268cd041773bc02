package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mmaisel/networkd-apply/internal/config"
	"github.com/mmaisel/networkd-apply/internal/log"
	"github.com/mmaisel/networkd-apply/internal/networkd"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}
	return gc
}

// GenerateCommand prints the generated unit files to stdout without
// touching the target directory.
type GenerateCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	// Keep stdout clean, it carries the generated files.
	log.SetForceStdErr(true)

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *GenerateCommand) Run() error {
	files, err := networkd.Generate(g.cfg)
	if err != nil {
		return fmt.Errorf("failed to generate networkd configuration: %v", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	stdoutBuffer := bufio.NewWriter(os.Stdout)
	defer func(stdoutBuffer *bufio.Writer) {
		if err := stdoutBuffer.Flush(); err != nil {
			log.Errorf("Failed to flush stdout: %v", err)
		}
	}(stdoutBuffer)

	for _, name := range names {
		if _, err := fmt.Fprintf(stdoutBuffer, "# %s\n%s\n", name, files[name]); err != nil {
			return fmt.Errorf("failed to write to stdout: %v", err)
		}
	}

	log.Infof("Generated %d files", len(files))

	return nil
}
