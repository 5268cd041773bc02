package networking

import (
	"net"
	"strings"

	"github.com/vishvananda/netlink"
)

type Interface struct {
	netlink.Link
}

func GetInterfaceList() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	var interfaces []Interface
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

func (iface *Interface) MAC() string {
	return iface.Attrs().HardwareAddr.String()
}

// FindByMAC returns the system interface with the given hardware address,
// or nil if none matches. Comparison is case-insensitive.
func FindByMAC(interfaces []Interface, mac string) *Interface {
	for i := range interfaces {
		if strings.EqualFold(interfaces[i].MAC(), mac) {
			return &interfaces[i]
		}
	}
	return nil
}
