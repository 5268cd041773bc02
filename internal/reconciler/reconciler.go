package reconciler

import (
	"sort"
	"strings"

	"github.com/mmaisel/networkd-apply/internal/log"
)

// Result describes the delta between desired and current directory state.
type Result struct {
	// Changed is true when anything has to be written, removed, or have
	// its attributes adjusted.
	Changed bool
	// ToWrite lists files whose desired content differs from disk (or
	// which do not exist yet), sorted.
	ToWrite []string
	// ToRemove lists files present on disk but no longer desired, sorted.
	ToRemove []string
}

// Reconcile computes the write and delete sets between the generated file
// mapping and a directory snapshot. Contents are compared with trailing
// newlines stripped on both sides, mirroring the snapshot reader, so that
// a generate-write-read cycle is a fixed point.
func Reconcile(desired map[string]string, current map[string]File, wantAttrs FileAttrs) Result {
	var result Result

	for name := range current {
		if _, ok := desired[name]; !ok {
			result.ToRemove = append(result.ToRemove, name)
		}
	}

	for name, content := range desired {
		cur, exists := current[name]
		if !exists {
			result.ToWrite = append(result.ToWrite, name)
			continue
		}
		if cur.Content != normalize(content) {
			result.ToWrite = append(result.ToWrite, name)
			continue
		}
		if cur.Attrs != wantAttrs {
			log.Debugf("Attributes of %s differ (have uid=%d gid=%d mode=%04o, want uid=%d gid=%d mode=%04o)",
				name, cur.Attrs.UID, cur.Attrs.GID, cur.Attrs.Mode, wantAttrs.UID, wantAttrs.GID, wantAttrs.Mode)
			result.Changed = true
		}
	}

	sort.Strings(result.ToWrite)
	sort.Strings(result.ToRemove)

	if len(result.ToWrite) > 0 || len(result.ToRemove) > 0 {
		result.Changed = true
	}

	return result
}

// Apply writes the computed delta to the store. Files are written before
// stale ones are removed, so an interrupted run never leaves the directory
// without a file that is still wanted. Attributes are enforced on every
// desired file afterwards, matching the behavior of a full configuration
// management run.
func Apply(store Store, desired map[string]string, wantAttrs FileAttrs, result Result) error {
	for _, name := range result.ToWrite {
		log.Debugf("Writing %s", name)
		if err := store.Write(name, desired[name]); err != nil {
			return err
		}
	}

	for _, name := range result.ToRemove {
		log.Debugf("Removing %s", name)
		if err := store.Remove(name); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(desired) {
		changed, err := store.EnsureAttrs(name, wantAttrs)
		if err != nil {
			return err
		}
		if changed {
			log.Debugf("Adjusted attributes of %s", name)
		}
	}

	return nil
}

func normalize(content string) string {
	return strings.TrimRight(content, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
