// Package networkd generates systemd-networkd unit files from the
// interface configuration.
//
// Generation is a pure transformation: an ordered list of interface
// entries goes in, a filename -> content mapping comes out. No filesystem
// or netlink access happens here, which keeps the output reproducible and
// the package trivially testable.
//
// # Generated files
//
// For a physical interface (hardware-bound via MAC):
//
//	10-<name>.link      MAC match + rename rule
//	10-<name>.network   per-interface network configuration
//
// For each VLAN sub-interface:
//
//	20-<vlan>.netdev    VLAN device declaration
//	20-<vlan>.network   VLAN network configuration
//
// For a bridge interface:
//
//	30-<name>.netdev    bridge device declaration
//	30-<name>.network   bridge network configuration
//
// The numeric prefixes impose networkd's load order and are configurable
// through the [general.naming] section.
//
// Field emission order inside a [Network] section is fixed (Address,
// Bridge, DHCP, DNS, Gateway, VLAN) so that diffs against the target
// directory stay stable.
package networkd
