package config

import (
	"strings"
	"testing"
)

func validTestConfig() *Config {
	mac := "00:11:22:33:44:55"
	address := "192.168.1.1/24"
	vlanID := 1

	cfg := &Config{
		Interfaces: []*InterfaceConfig{
			{
				Name: "eth0",
				MAC:  &mac,
				VLANs: []*VLANConfig{
					{ID: &vlanID},
				},
			},
			{
				Name:           "br1",
				Kind:           KindBridge,
				NetworkOptions: NetworkOptions{Address: &address},
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func expectFieldError(t *testing.T, err error, fieldPath string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	for _, verr := range verrs {
		if strings.Contains(verr.FieldPath, fieldPath) {
			return
		}
	}
	t.Errorf("Expected error on field %q, got: %v", fieldPath, err)
}

func TestValidateConfig_Success(t *testing.T) {
	if err := validTestConfig().ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_NoInterfaces(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	expectFieldError(t, cfg.ValidateConfig(), "interface")
}

func TestValidateConfig_PhysicalWithoutMAC(t *testing.T) {
	cfg := validTestConfig()
	cfg.Interfaces[0].MAC = nil

	expectFieldError(t, cfg.ValidateConfig(), "mac")
}

func TestValidateConfig_InvalidMAC(t *testing.T) {
	cfg := validTestConfig()
	mac := "not-a-mac"
	cfg.Interfaces[0].MAC = &mac

	expectFieldError(t, cfg.ValidateConfig(), "mac")
}

func TestValidateConfig_InvalidCIDR(t *testing.T) {
	cfg := validTestConfig()
	address := "192.168.1.1"
	cfg.Interfaces[0].Address = &address

	expectFieldError(t, cfg.ValidateConfig(), "address")
}

func TestValidateConfig_InvalidGateway(t *testing.T) {
	cfg := validTestConfig()
	gateway := "not.an.ip.addr"
	cfg.Interfaces[0].Gateway = &gateway

	expectFieldError(t, cfg.ValidateConfig(), "gateway")
}

func TestValidateConfig_InvalidDNS(t *testing.T) {
	cfg := validTestConfig()
	cfg.Interfaces[0].DNS = []string{"1.1.1.1", "bogus"}

	expectFieldError(t, cfg.ValidateConfig(), "dns")
}

func TestValidateConfig_MissingVLANID(t *testing.T) {
	cfg := validTestConfig()
	cfg.Interfaces[0].VLANs[0].ID = nil

	expectFieldError(t, cfg.ValidateConfig(), "id")
}

func TestValidateConfig_DuplicateInterfaceName(t *testing.T) {
	cfg := validTestConfig()
	cfg.Interfaces[1].Name = "eth0"
	cfg.Interfaces[1].Kind = KindPhysical
	mac := "00:11:22:33:44:66"
	cfg.Interfaces[1].MAC = &mac

	expectFieldError(t, cfg.ValidateConfig(), "name")
}

func TestValidateConfig_DerivedVLANNameCollision(t *testing.T) {
	cfg := validTestConfig()
	// A second interface whose name collides with the derived "eth0.1".
	mac := "00:11:22:33:44:66"
	cfg.Interfaces = append(cfg.Interfaces, &InterfaceConfig{
		Name: "eth0.1",
		Kind: KindPhysical,
		MAC:  &mac,
	})

	expectFieldError(t, cfg.ValidateConfig(), "name")
}

func TestValidateConfig_ExplicitVLANNameCollision(t *testing.T) {
	cfg := validTestConfig()
	name := "br1"
	cfg.Interfaces[0].VLANs[0].Name = &name

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected validation error for VLAN name colliding with an interface")
	}
}

func TestValidateConfig_BridgeWithMAC(t *testing.T) {
	cfg := validTestConfig()
	mac := "00:11:22:33:44:66"
	cfg.Interfaces[1].MAC = &mac

	expectFieldError(t, cfg.ValidateConfig(), "mac")
}

func TestValidateConfig_BridgeWithVLANs(t *testing.T) {
	cfg := validTestConfig()
	vlanID := 2
	cfg.Interfaces[1].VLANs = []*VLANConfig{{ID: &vlanID}}

	expectFieldError(t, cfg.ValidateConfig(), "vlan")
}

func TestValidateConfig_BridgeWithoutAddress(t *testing.T) {
	cfg := validTestConfig()
	cfg.Interfaces[1].Address = nil

	// Only a warning: a bridge without an address keeps generating an
	// empty Address= line.
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected no error for bridge without address, got: %v", err)
	}
}

func TestValidateConfig_BadFileMode(t *testing.T) {
	cfg := validTestConfig()
	cfg.General.FileMode = "999"

	expectFieldError(t, cfg.ValidateConfig(), "file_mode")
}

func TestValidateConfig_BadNameTemplate(t *testing.T) {
	cfg := validTestConfig()
	cfg.General.Naming.LinkFile = "10-static.link"

	expectFieldError(t, cfg.ValidateConfig(), "link_file")
}

func TestValidateConfig_OutOfRangeVLANIDPassesThrough(t *testing.T) {
	cfg := validTestConfig()
	vlanID := 99999
	cfg.Interfaces[0].VLANs[0].ID = &vlanID

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("VLAN ids are not range-checked, got: %v", err)
	}
}
