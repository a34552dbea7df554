package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DirSize returns the total apparent size in bytes of path and everything
// beneath it. Symlinks are counted but never followed. Any failure — a
// missing path, a permission error, a file vanishing mid-walk — is absorbed
// and the affected subtree simply contributes nothing. The function never
// returns an error: a path that cannot be measured reports 0.
func DirSize(path string) int64 {
	var total int64

	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry — skip it, keep walking.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		total += info.Size()
		return nil
	})

	return total
}

// NewestMTime returns the Unix epoch of the most recently modified regular
// file under path, or 0 if the tree is empty or cannot be read.
func NewestMTime(path string) int64 {
	var newest int64

	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if mt := info.ModTime().Unix(); mt > newest {
			newest = mt
		}
		return nil
	})

	return newest
}

// CountFilesWithExt counts regular files under path whose name ends with ext
// (e.g. ".py"). Returns 0 when the tree cannot be read.
func CountFilesWithExt(path, ext string) int {
	count := 0

	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			count++
		}
		return nil
	})

	return count
}
