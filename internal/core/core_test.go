package core_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scraperfix/internal/core"
	"scraperfix/internal/patch"
)

const simpleMethod = "async downloadImage(imageData: ImageData, filename: string): Promise<boolean> { return true; }"

// writeFixture creates an ImageScraper.ts in a fresh temp dir.
func writeFixture(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ImageScraper.ts")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRunPatchesFile(t *testing.T) {
	prefix := "class ImageScraper {\n  "
	suffix := "\n}\n"
	path := writeFixture(t, []byte(prefix+simpleMethod+suffix))

	res, err := core.Run(path)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Replaced {
		t.Error("Run() reported no replacement")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back target: %v", err)
	}
	if want := prefix + patch.Template + suffix; string(got) != want {
		t.Errorf("target after Run() = %q, want %q", got, want)
	}
}

func TestRunZeroMatchRewritesFileUnchanged(t *testing.T) {
	input := []byte("// no downloadImage here\nconst n = 1;\n")
	path := writeFixture(t, input)

	res, err := core.Run(path)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Replaced {
		t.Error("Run() reported a replacement for a non-matching file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back target: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("target after zero-match Run() = %q, want input unchanged", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ImageScraper.ts")

	if _, err := core.Run(path); err == nil {
		t.Error("Run() on a missing file succeeded, want error")
	}
}

func TestRunInvalidUTF8(t *testing.T) {
	input := []byte{0xff, 0xfe, 'a', 'b'}
	path := writeFixture(t, input)

	if _, err := core.Run(path); err == nil {
		t.Fatal("Run() on invalid UTF-8 succeeded, want error")
	} else if !strings.Contains(err.Error(), "UTF-8") {
		t.Errorf("Run() error = %v, want a UTF-8 decoding error", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back target: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Error("target was modified despite the decoding error")
	}
}

func TestRunPreservesFileMode(t *testing.T) {
	path := writeFixture(t, []byte("  "+simpleMethod+"\n"))
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("failed to chmod fixture: %v", err)
	}

	if _, err := core.Run(path); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat target: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("target mode after Run() = %o, want 0600", got)
	}
}

func TestRunLeavesNoTempFiles(t *testing.T) {
	path := writeFixture(t, []byte("  "+simpleMethod+"\n"))

	if _, err := core.Run(path); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to read target dir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("target dir contains %v, want only the target file", names)
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := writeFixture(t, []byte{0xc3, 0x28})

	if _, err := core.Load(path); err == nil {
		t.Error("Load() on invalid UTF-8 succeeded, want error")
	}
}

func TestLoadReturnsContent(t *testing.T) {
	input := []byte("const n = 1;\n")
	path := writeFixture(t, input)

	got, err := core.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("Load() = %q, want %q", got, input)
	}
}
