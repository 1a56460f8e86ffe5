package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServeRequiresCatalog(t *testing.T) {
	unsetEnv(t, "SF_CATALOG")
	dbPath := filepath.Join(t.TempDir(), "stays.db")

	_, err := executeCommand("serve", "--db", dbPath)
	if err == nil {
		t.Fatal("expected error without an imported catalog")
	}
	if !strings.Contains(err.Error(), "no catalog imported") {
		t.Errorf("error = %q", err)
	}
}

func TestServeRejectsInvalidCatalogFile(t *testing.T) {
	unsetEnv(t, "SF_CATALOG")
	dir := t.TempDir()

	_, err := executeCommand("serve", "--db", filepath.Join(dir, "stays.db"), "--catalog", filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
	if !strings.Contains(err.Error(), "importing") {
		t.Errorf("error = %q", err)
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
