package reconciler

import (
	"fmt"
	"sort"
	"strings"
)

// Diff is a human-readable rendering of the directory state before and
// after reconciliation. It is for display and audit only and never feeds
// back into the write/delete decision.
type Diff struct {
	Before string
	After  string
}

// RenderDiff renders the current snapshot against the desired state.
func RenderDiff(current map[string]File, desired map[string]string, wantAttrs FileAttrs) Diff {
	after := make(map[string]File, len(desired))
	for name, content := range desired {
		after[name] = File{Content: normalize(content), Attrs: wantAttrs}
	}

	return Diff{
		Before: renderState(current),
		After:  renderState(after),
	}
}

// renderState renders every file as a header, an attribute line and the
// file content, terminated by a blank separator line. Files are sorted so
// the output is deterministic.
func renderState(files map[string]File) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		file := files[name]
		sb.WriteString(fmt.Sprintf("***** %s *****\n", name))
		sb.WriteString(fmt.Sprintf("* uid: %d gid: %d mode: %04o *\n", file.Attrs.UID, file.Attrs.GID, file.Attrs.Mode))
		sb.WriteString(file.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
