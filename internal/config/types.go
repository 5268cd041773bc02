package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/mmaisel/networkd-apply/internal/utils"
)

// InterfaceKind selects which family of networkd units is generated for an
// interface entry.
type InterfaceKind string

const (
	KindPhysical InterfaceKind = "physical"
	KindBridge   InterfaceKind = "bridge"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Interfaces is the ordered list of managed network interfaces.
	// Declaration order is preserved in the generated output.
	Interfaces []*InterfaceConfig `toml:"interface,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// NetworkdDir is the directory owned by systemd-networkd where unit
	// files are written (default: /etc/systemd/network).
	NetworkdDir string `toml:"networkd_dir" validate:"required"`
	// FileMode is the octal permission mode applied to every generated file (default: 0644).
	FileMode string `toml:"file_mode" validate:"omitempty,octal_mode"`
	// FileOwner is the numeric uid owning generated files (default: 0).
	FileOwner *int `toml:"file_owner" validate:"omitempty,gte=0"`
	// FileGroup is the numeric gid owning generated files (default: 0).
	FileGroup *int `toml:"file_group" validate:"omitempty,gte=0"`

	// Naming is the unit file naming configuration. Validated separately
	// to keep field paths readable.
	Naming *NamingConfig `toml:"naming" validate:"-"`
}

// NamingConfig holds the fasttemplate patterns used to derive unit file
// names. Available variables: {{name}}. The defaults encode networkd's
// load order via the numeric prefix: links first, VLANs, then bridges.
type NamingConfig struct {
	LinkFile      string `toml:"link_file" validate:"required,name_template"`
	NetworkFile   string `toml:"network_file" validate:"required,name_template"`
	VLANNetdev    string `toml:"vlan_netdev" validate:"required,name_template"`
	VLANNetwork   string `toml:"vlan_network" validate:"required,name_template"`
	BridgeNetdev  string `toml:"bridge_netdev" validate:"required,name_template"`
	BridgeNetwork string `toml:"bridge_network" validate:"required,name_template"`
}

// NetworkOptions are the [Network] section settings shared by interfaces
// and their VLAN sub-interfaces. Optional fields are pointers so that an
// absent key is distinguishable from a zero value.
type NetworkOptions struct {
	// Address is the static address in CIDR notation.
	Address *string `toml:"address" validate:"omitempty,cidr"`
	// Bridge is the name of a bridge this interface joins.
	Bridge *string `toml:"bridge"`
	// DHCP requests an IPv4 lease. Presence of the key enables DHCP
	// regardless of its value.
	DHCP *bool `toml:"dhcp"`
	// DNS is the ordered list of DNS server addresses.
	DNS []string `toml:"dns,omitempty" validate:"omitempty,dive,ip"`
	// Gateway is the default gateway address.
	Gateway *string `toml:"gateway" validate:"omitempty,ip"`
}

type InterfaceConfig struct {
	// Name is the interface name (unique across all interfaces and VLANs).
	Name string `toml:"name" validate:"required,iface_name"`
	// Kind is the interface kind: "physical" or "bridge" (default: physical).
	Kind InterfaceKind `toml:"kind" validate:"omitempty,oneof=physical bridge"`
	// MAC is the hardware address a physical interface is matched by.
	MAC *string `toml:"mac" validate:"omitempty,mac"`

	NetworkOptions

	// VLANs is the ordered list of tagged sub-interfaces.
	VLANs []*VLANConfig `toml:"vlan,omitempty"`
}

type VLANConfig struct {
	// ID is the VLAN tag.
	ID *int `toml:"id" validate:"required"`
	// Name overrides the derived "<parent>.<id>" interface name.
	Name *string `toml:"name" validate:"omitempty,iface_name"`

	NetworkOptions
}

// IsPhysical reports whether the entry is hardware-bound. An empty kind
// defaults to physical.
func (iface *InterfaceConfig) IsPhysical() bool {
	return iface.Kind == KindPhysical || iface.Kind == ""
}

// DerivedName returns the VLAN interface name: the explicit name if set,
// otherwise "<parent>.<id>".
func (v *VLANConfig) DerivedName(parent string) string {
	if v.Name != nil {
		return *v.Name
	}

	id := 0
	if v.ID != nil {
		id = *v.ID
	}
	return fmt.Sprintf("%s.%d", parent, id)
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsNetworkdDir resolves the target directory against the config file
// location if it is relative.
func (c *Config) GetAbsNetworkdDir() string {
	return utils.GetAbsolutePath(c.General.NetworkdDir, c.GetConfigDir())
}

// Mode parses the configured file mode. The value is checked by the
// octal_mode validator beforehand.
func (g *GeneralConfig) Mode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(g.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file_mode %q: %v", g.FileMode, err)
	}
	return fs.FileMode(mode), nil
}

func (g *GeneralConfig) Owner() int {
	if g.FileOwner == nil {
		return 0
	}
	return *g.FileOwner
}

func (g *GeneralConfig) Group() int {
	if g.FileGroup == nil {
		return 0
	}
	return *g.FileGroup
}
