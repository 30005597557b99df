package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/sampledeck/internal/utils"
)

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.txt")
	data := []byte("line1\r\nline2\n")
	if err := utils.SafeWriteFile(p, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("content mismatch: %q", got)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := utils.ExpandHome("~/fixtures")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "fixtures") {
		t.Fatalf("got %q", got)
	}
	if got, _ := utils.ExpandHome(""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
	if got, _ := utils.ExpandHome("a/../b"); got != "b" {
		t.Fatalf("expected cleaned path, got %q", got)
	}
	if got, _ := utils.ExpandHome("~"); got != home {
		t.Fatalf("bare ~ should be home, got %q", got)
	}
	if got, _ := utils.ExpandHome("~bob/x"); got != filepath.Clean("~bob/x") {
		t.Fatalf("~user path should be left alone, got %q", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := utils.PrettyJSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{\n  \"a\": 1\n}" {
		t.Fatalf("unexpected json: %s", b)
	}
}
