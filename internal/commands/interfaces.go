package commands

import (
	"flag"
	"fmt"

	"github.com/mmaisel/networkd-apply/internal/networking"
)

func CreateInterfacesCommand() *InterfacesCommand {
	gc := &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
	return gc
}

// InterfacesCommand lists the network interfaces present on the system so
// the user can copy MAC addresses into the configuration.
type InterfacesCommand struct {
	fs *flag.FlagSet
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := networking.GetInterfaceList()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	for _, iface := range interfaces {
		if iface.IsLoopback() {
			continue
		}

		state := "down"
		if iface.IsUp() {
			state = "up"
		}

		fmt.Printf("%-15s mac=%-17s state=%s\n", iface.Attrs().Name, iface.MAC(), state)
	}

	return nil
}
