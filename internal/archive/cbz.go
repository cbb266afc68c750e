// Package archive writes CBZ files: plain zip archives of sequentially
// named page images, stored uncompressed since JPEG data does not deflate.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ListImages returns the *.jpg files directly inside dir, sorted by name.
// Page images are zero-padded so lexicographic order is page order.
func ListImages(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Write creates a zip archive at zipPath containing files in order, each
// entry named by its basename. onAdd, if non-nil, is called after every
// entry for progress reporting.
func Write(zipPath string, files []string, onAdd func()) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addStored(zw, file); err != nil {
			zw.Close()
			return err
		}
		if onAdd != nil {
			onAdd()
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive %s: %w", zipPath, err)
	}
	return nil
}

// Finalize renames the finished zip archive to its .cbz name.
func Finalize(zipPath, cbzPath string) error {
	if err := os.Rename(zipPath, cbzPath); err != nil {
		return fmt.Errorf("failed to rename archive to %s: %w", cbzPath, err)
	}
	return nil
}

func addStored(zw *zip.Writer, file string) error {
	src, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   filepath.Base(file),
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", file, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write %s to archive: %w", file, err)
	}
	return nil
}
