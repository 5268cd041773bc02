package networkd

import (
	"strconv"

	"github.com/mmaisel/networkd-apply/internal/config"
)

// Generate transforms the interface configuration into the full set of
// networkd unit files as a filename -> content mapping. It performs no I/O
// and is deterministic: interfaces, VLANs and DNS servers are walked in
// declaration order, so identical input yields byte-identical output.
func Generate(cfg *config.Config) (map[string]string, error) {
	namer, err := NewFileNamer(cfg.General.Naming)
	if err != nil {
		return nil, err
	}

	files := make(map[string]string)
	for _, iface := range cfg.Interfaces {
		if iface.IsPhysical() {
			generatePhysical(files, namer, iface)
		} else if iface.Kind == config.KindBridge {
			generateBridge(files, namer, iface)
		}
	}

	return files, nil
}

// generatePhysical emits the link file renaming the hardware-matched
// interface plus its network file, and one netdev/network file pair per
// VLAN sub-interface.
func generatePhysical(files map[string]string, namer *FileNamer, iface *config.InterfaceConfig) {
	mac := ""
	if iface.MAC != nil {
		mac = *iface.MAC
	}

	link := newUnitFile()
	link.addSection("Match").
		add("MACAddress", mac).
		// networkd would otherwise also match the VLAN sub-interfaces,
		// which share the parent's MAC.
		add("Driver", "!802.1Q*")
	link.addSection("Link").add("Name", iface.Name)
	files[namer.LinkFile(iface.Name)] = link.String()

	network := newUnitFile()
	network.addSection("Match").add("Name", iface.Name)
	networkSection := network.addSection("Network")
	addNetworkOptions(networkSection, &iface.NetworkOptions)

	for _, vlan := range iface.VLANs {
		vlanName := vlan.DerivedName(iface.Name)
		networkSection.add("VLAN", vlanName)
		generateVLAN(files, namer, vlanName, vlan)
	}

	files[namer.NetworkFile(iface.Name)] = network.String()
}

func generateVLAN(files map[string]string, namer *FileNamer, vlanName string, vlan *config.VLANConfig) {
	id := 0
	if vlan.ID != nil {
		id = *vlan.ID
	}

	netdev := newUnitFile()
	netdev.addSection("NetDev").
		add("Name", vlanName).
		add("Kind", "vlan")
	netdev.addSection("VLAN").add("Id", strconv.Itoa(id))
	files[namer.VLANNetdev(vlanName)] = netdev.String()

	network := newUnitFile()
	network.addSection("Match").add("Name", vlanName)
	addNetworkOptions(network.addSection("Network"), &vlan.NetworkOptions)
	files[namer.VLANNetwork(vlanName)] = network.String()
}

func generateBridge(files map[string]string, namer *FileNamer, iface *config.InterfaceConfig) {
	netdev := newUnitFile()
	netdev.addSection("NetDev").
		add("Name", iface.Name).
		add("Kind", "bridge")
	files[namer.BridgeNetdev(iface.Name)] = netdev.String()

	address := ""
	if iface.Address != nil {
		address = *iface.Address
	}

	network := newUnitFile()
	network.addSection("Match").add("Name", iface.Name)
	// The Address line is emitted even when no address is configured.
	network.addSection("Network").add("Address", address)
	files[namer.BridgeNetwork(iface.Name)] = network.String()
}

// addNetworkOptions appends the [Network] section lines in their fixed
// order: Address, Bridge, DHCP, DNS (one line per server), Gateway.
func addNetworkOptions(s *section, o *config.NetworkOptions) {
	s.addIfSet("Address", o.Address)
	s.addIfSet("Bridge", o.Bridge)
	if o.DHCP != nil {
		// Presence of the dhcp key enables DHCP regardless of its value.
		s.add("DHCP", "ipv4")
	}
	for _, server := range o.DNS {
		s.add("DNS", server)
	}
	s.addIfSet("Gateway", o.Gateway)
}
