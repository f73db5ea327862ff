package jsonfix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so a failed write never leaves a truncated file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), perm)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
	}
	return err
}

// copyFile copies src to dst, preserving mode and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

// Validate parses the file at path and returns its top-level length: key
// count for an object, element count for an array. Any other top-level
// value is an error.
func Validate(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	switch t := v.(type) {
	case map[string]any:
		return len(t), nil
	case []any:
		return len(t), nil
	default:
		return 0, fmt.Errorf("%s: top-level value is %T, want object or array", path, v)
	}
}

// Promote backs up target to target+backupSuffix, then copies fixed over
// target. Returns the backup path; on a promotion failure after the backup
// succeeded, the backup is left in place and its path is still returned.
func Promote(fixed, target, backupSuffix string) (string, error) {
	backup := target + backupSuffix

	if err := copyFile(target, backup); err != nil {
		return "", fmt.Errorf("back up %s: %w", target, err)
	}
	if err := copyFile(fixed, target); err != nil {
		return backup, fmt.Errorf("promote %s: %w", fixed, err)
	}
	return backup, nil
}
