// Package packager bundles the generated artifacts into a single zip.
package packager

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Pack writes a zip at outputPath containing each source file under its
// base name. Every listed file must exist; a pipeline that got this far
// with a missing artifact is a bug, not something to paper over.
func Pack(outputPath string, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no files to package")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addFile(zw, file); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize package: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("package artifact %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("add %s to package: %w", filepath.Base(path), err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write %s to package: %w", filepath.Base(path), err)
	}
	return nil
}
