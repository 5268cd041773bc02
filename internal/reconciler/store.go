package reconciler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/mmaisel/networkd-apply/internal/log"
)

// FileAttrs is the ownership and permission state of a managed file.
type FileAttrs struct {
	UID  int
	GID  int
	Mode fs.FileMode
}

// File is one entry of a directory snapshot: its content with trailing
// newlines stripped, plus its attributes.
type File struct {
	Content string
	Attrs   FileAttrs
}

// Store abstracts the target directory so the reconciliation engine can be
// exercised against an in-memory implementation in tests.
type Store interface {
	// ReadAll returns a snapshot of every regular file directly inside
	// the directory. A missing or empty directory yields an empty map.
	ReadAll() (map[string]File, error)
	// Write creates or overwrites a file with the given content.
	Write(name, content string) error
	// Remove deletes a file.
	Remove(name string) error
	// EnsureAttrs adjusts ownership and permissions of a file if they
	// differ from the wanted state and reports whether a change was made.
	EnsureAttrs(name string, attrs FileAttrs) (bool, error)
}

// DirStore is the Store backed by a real directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *DirStore) ReadAll() (map[string]File, error) {
	files := make(map[string]File)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return files, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %v", s.dir, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			log.Debugf("Skipping non-regular entry: %s", entry.Name())
			continue
		}

		path := s.path(entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", path, err)
		}

		var st unix.Stat_t
		if err := unix.Stat(path, &st); err != nil {
			return nil, fmt.Errorf("failed to stat %s: %v", path, err)
		}

		files[entry.Name()] = File{
			// Trailing newlines are irrelevant for networkd and would
			// otherwise make every comparison fail.
			Content: strings.TrimRight(string(content), "\n"),
			Attrs: FileAttrs{
				UID:  int(st.Uid),
				GID:  int(st.Gid),
				Mode: fs.FileMode(st.Mode & 0o7777),
			},
		}
	}

	return files, nil
}

func (s *DirStore) Write(name, content string) error {
	path := s.path(name)

	// Write through a temporary file so a crash never leaves a partially
	// written unit file behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename %s: %v", tmp, err)
	}

	return nil
}

func (s *DirStore) Remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("failed to remove %s: %v", s.path(name), err)
	}
	return nil
}

func (s *DirStore) EnsureAttrs(name string, attrs FileAttrs) (bool, error) {
	path := s.path(name)

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, fmt.Errorf("failed to stat %s: %v", path, err)
	}

	changed := false

	if fs.FileMode(st.Mode&0o7777) != attrs.Mode {
		if err := os.Chmod(path, attrs.Mode); err != nil {
			return changed, fmt.Errorf("failed to chmod %s: %v", path, err)
		}
		changed = true
	}

	if int(st.Uid) != attrs.UID || int(st.Gid) != attrs.GID {
		if err := os.Chown(path, attrs.UID, attrs.GID); err != nil {
			return changed, fmt.Errorf("failed to chown %s: %v", path, err)
		}
		changed = true
	}

	return changed, nil
}
