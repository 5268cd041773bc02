package reconciler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStore_ReadAll_MissingDirectory(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "does-not-exist"))

	files, err := store.ReadAll()
	if err != nil {
		t.Fatalf("Expected no error for missing directory: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected empty snapshot, got %v", files)
	}
}

func TestDirStore_ReadAll_EmptyDirectory(t *testing.T) {
	store := NewDirStore(t.TempDir())

	files, err := store.ReadAll()
	if err != nil {
		t.Fatalf("Expected no error for empty directory: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected empty snapshot, got %v", files)
	}
}

func TestDirStore_ReadAll_StripsTrailingNewlines(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "10-eth0.network"), []byte("[Match]\nName=eth0\n\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	files, err := NewDirStore(dir).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	file, ok := files["10-eth0.network"]
	if !ok {
		t.Fatalf("Expected file in snapshot, got %v", files)
	}
	if file.Content != "[Match]\nName=eth0" {
		t.Errorf("Expected trailing newlines to be stripped, got %q", file.Content)
	}
}

func TestDirStore_ReadAll_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "10-eth0.network"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	files, err := NewDirStore(dir).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected only the regular file in the snapshot, got %v", files)
	}
}

func TestDirStore_WriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	content := "[Match]\nName=eth0\n\n[Network]\nDHCP=ipv4\n"
	if err := store.Write("10-eth0.network", content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "10-eth0.network"))
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(raw) != content {
		t.Errorf("Write must store content verbatim, got %q", string(raw))
	}

	files, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if files["10-eth0.network"].Content != "[Match]\nName=eth0\n\n[Network]\nDHCP=ipv4" {
		t.Errorf("Unexpected snapshot content: %q", files["10-eth0.network"].Content)
	}
}

func TestDirStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := store.Write("90-stale.conf", "stale\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := store.Remove("90-stale.conf"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "90-stale.conf")); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	if err := store.Remove("90-stale.conf"); err == nil {
		t.Error("Expected error when removing a missing file")
	}
}

func TestDirStore_EnsureAttrs_Mode(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := store.Write("10-eth0.network", "x\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := os.Chmod(filepath.Join(dir, "10-eth0.network"), 0o600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	// uid/gid of the current user so only the mode differs; chown to
	// other users needs privileges the test may not have.
	uid := os.Getuid()
	gid := os.Getgid()

	changed, err := store.EnsureAttrs("10-eth0.network", FileAttrs{UID: uid, GID: gid, Mode: 0o644})
	if err != nil {
		t.Fatalf("EnsureAttrs failed: %v", err)
	}
	if !changed {
		t.Error("Expected EnsureAttrs to report a change")
	}

	info, err := os.Stat(filepath.Join(dir, "10-eth0.network"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("Expected mode 0644, got %o", info.Mode().Perm())
	}

	changed, err = store.EnsureAttrs("10-eth0.network", FileAttrs{UID: uid, GID: gid, Mode: 0o644})
	if err != nil {
		t.Fatalf("EnsureAttrs failed: %v", err)
	}
	if changed {
		t.Error("Expected no change when attributes already match")
	}
}
