package networkd

import "strings"

// unitFile builds an ini-style systemd unit file from ordered sections.
// Lines are emitted exactly in the order they were added so that the
// rendered output is stable and diffable.
type unitFile struct {
	sections []*section
}

type section struct {
	name  string
	lines []string
}

func newUnitFile() *unitFile {
	return &unitFile{}
}

// addSection appends a new section and returns it for line building.
// Sections are never merged: calling addSection twice with the same name
// produces two section headers.
func (u *unitFile) addSection(name string) *section {
	s := &section{name: name}
	u.sections = append(u.sections, s)
	return s
}

// add appends a Key=Value line.
func (s *section) add(key, value string) *section {
	s.lines = append(s.lines, key+"="+value)
	return s
}

// addIfSet appends a Key=Value line only when the value is present.
func (s *section) addIfSet(key string, value *string) *section {
	if value != nil {
		s.add(key, *value)
	}
	return s
}

// String renders the file: every section is a "[Name]" header followed by
// its lines, sections are separated by a blank line and the file is
// newline-terminated.
func (u *unitFile) String() string {
	var sb strings.Builder
	for i, s := range u.sections {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[" + s.name + "]\n")
		for _, line := range s.lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
