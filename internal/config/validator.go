package config

import (
	"fmt"

	"github.com/mmaisel/networkd-apply/internal/log"
)

// ValidateConfig validates the entire configuration and returns all
// validation errors. It must succeed before any generation or filesystem
// work starts.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}
	if c.General.Naming != nil {
		if err := validate.Struct(c.General.Naming); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general.naming", "")...)
		}
	}

	if len(c.Interfaces) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "interface",
			Message:   "configuration must contain at least one interface",
		})
	} else {
		validationErrors = append(validationErrors, c.validateInterfaces()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateInterfaces() ValidationErrors {
	var validationErrors ValidationErrors

	// Interface names and derived VLAN names share one namespace: a
	// duplicate would make two entries produce the same unit file name and
	// the later one would silently win. Rejected up front.
	seenNames := make(map[string]bool)

	for i, iface := range c.Interfaces {
		itemName := iface.Name
		if itemName == "" {
			itemName = fmt.Sprintf("interface[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(iface); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("interface.%d", i), itemName)...)
		}

		if seenNames[iface.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate interface name: %s", iface.Name),
			})
		}
		seenNames[iface.Name] = true

		switch {
		case iface.IsPhysical():
			validationErrors = append(validationErrors, c.validatePhysical(i, iface, itemName, seenNames)...)
		case iface.Kind == KindBridge:
			validationErrors = append(validationErrors, c.validateBridge(iface, itemName)...)
		}
	}

	return validationErrors
}

func (c *Config) validatePhysical(i int, iface *InterfaceConfig, itemName string, seenNames map[string]bool) ValidationErrors {
	var validationErrors ValidationErrors

	// The hardware match rule is built from the MAC address, so a physical
	// interface without one cannot be renamed or configured.
	if iface.MAC == nil {
		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: "mac",
			Message:   "physical interface requires a mac address",
		})
	}

	for j, vlan := range iface.VLANs {
		if err := validate.Struct(vlan); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("interface.%d.vlan.%d", i, j), itemName)...)
		}

		if vlan.ID == nil {
			continue
		}

		vlanName := vlan.DerivedName(iface.Name)
		if seenNames[vlanName] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  vlanName,
				FieldPath: fmt.Sprintf("interface.%d.vlan.%d", i, j),
				Message:   fmt.Sprintf("duplicate interface name: %s", vlanName),
			})
		}
		seenNames[vlanName] = true
	}

	return validationErrors
}

func (c *Config) validateBridge(iface *InterfaceConfig, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	if iface.MAC != nil {
		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: "mac",
			Message:   "mac cannot be set on a bridge interface",
		})
	}

	if len(iface.VLANs) > 0 {
		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: "vlan",
			Message:   "vlans can only be attached to physical interfaces",
		})
	}

	// A bridge without an address still emits an empty "Address=" line in
	// its network file. Warn instead of failing to keep existing setups
	// applying.
	if iface.Address == nil {
		log.Warnf("Bridge '%s' has no address configured, its network file will contain an empty Address= line", itemName)
	}

	return validationErrors
}
