// Package config handles configuration file parsing and validation for
// networkd-apply.
//
// The configuration is TOML: a [general] section pointing at the networkd
// directory plus an ordered list of [[interface]] tables, each optionally
// carrying [[interface.vlan]] sub-tables. Optional values are decoded into
// pointers so that an absent key is distinguishable from a zero value; all
// defaulting happens once in LoadConfig.
//
// Validation collects every problem into a ValidationErrors value instead
// of stopping at the first one. Interface names and derived VLAN names are
// required to be unique because they determine generated file names.
package config
