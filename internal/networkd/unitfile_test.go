package networkd

import "testing"

func TestUnitFile_SectionsAndOrder(t *testing.T) {
	u := newUnitFile()
	u.addSection("Match").
		add("Name", "eth0")
	u.addSection("Network").
		add("Address", "192.168.1.2/24").
		add("DNS", "1.1.1.1").
		add("DNS", "8.8.8.8")

	expected := "[Match]\n" +
		"Name=eth0\n" +
		"\n" +
		"[Network]\n" +
		"Address=192.168.1.2/24\n" +
		"DNS=1.1.1.1\n" +
		"DNS=8.8.8.8\n"
	if u.String() != expected {
		t.Errorf("Unexpected rendering:\n%q\nwant:\n%q", u.String(), expected)
	}
}

func TestUnitFile_EmptySection(t *testing.T) {
	u := newUnitFile()
	u.addSection("Match").add("Name", "eth0")
	u.addSection("Network")

	expected := "[Match]\n" +
		"Name=eth0\n" +
		"\n" +
		"[Network]\n"
	if u.String() != expected {
		t.Errorf("Unexpected rendering:\n%q\nwant:\n%q", u.String(), expected)
	}
}

func TestSection_AddIfSet(t *testing.T) {
	value := "192.168.1.1"

	s := newUnitFile().addSection("Network")
	s.addIfSet("Gateway", &value)
	s.addIfSet("Address", nil)

	if len(s.lines) != 1 || s.lines[0] != "Gateway=192.168.1.1" {
		t.Errorf("Unexpected lines: %v", s.lines)
	}
}
