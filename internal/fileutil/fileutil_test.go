package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMoveFile(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "issue.pdf")
	if err := os.WriteFile(src, []byte("contents"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	dst := filepath.Join(base, "Magazine", "2023-08-01", "2023-08-01 - Magazine.pdf")
	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "contents" {
		t.Errorf("destination contents = %q", data)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still present: %v", err)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	base := t.TempDir()
	if err := MoveFile(filepath.Join(base, "absent.pdf"), filepath.Join(base, "out.pdf")); err == nil {
		t.Fatal("expected an error for a missing source")
	}
}

func TestCopyVerified(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src.pdf")
	if err := os.WriteFile(src, []byte("issue data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	dst := filepath.Join(base, "dst.pdf")
	if err := copyVerified(src, dst); err != nil {
		t.Fatalf("copyVerified: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "issue data" {
		t.Fatalf("destination = %q, %v", data, err)
	}
}
