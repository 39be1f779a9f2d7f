package core

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"scraperfix/internal/patch"
)

// Run reads targetPath, applies the downloadImage patch, and rewrites the
// file in place. The file is rewritten even when the pattern does not match,
// so a zero-match run leaves it byte-for-byte unchanged; the returned Result
// tells the two outcomes apart.
func Run(targetPath string) (patch.Result, error) {
	content, err := os.ReadFile(targetPath)
	if err != nil {
		return patch.Result{}, fmt.Errorf("failed to read %s: %w", targetPath, err)
	}
	if !utf8.Valid(content) {
		return patch.Result{}, fmt.Errorf("%s is not valid UTF-8", targetPath)
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return patch.Result{}, fmt.Errorf("failed to stat %s: %w", targetPath, err)
	}

	res := patch.Apply(content)

	if err := writeFileAtomic(targetPath, res.Content, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", targetPath, err)
	}
	return res, nil
}

// Load reads and validates the target file without touching it, for preview.
func Load(targetPath string) ([]byte, error) {
	content, err := os.ReadFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", targetPath, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s is not valid UTF-8", targetPath)
	}
	return content, nil
}

// writeFileAtomic writes data to a temporary file in path's directory and
// renames it over path, so an interrupted write cannot leave the target
// truncated. The target's permission bits are carried over.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
