package fetcher

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/sdlfetch/internal/utils"
)

// ExtractZip writes every entry of the archive at archivePath under destDir.
// Entries that would land outside destDir are rejected.
func ExtractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: error opening %s: %v", utils.ErrArchive, filepath.Base(archivePath), err)
	}
	defer reader.Close()

	destDir, err = filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("error resolving %s: %v", destDir, err)
	}
	for _, file := range reader.File {
		if err := extractEntry(file, destDir); err != nil {
			return fmt.Errorf("%w: %s: %v", utils.ErrArchive, file.Name, err)
		}
	}
	log.Debug().Str("op", "fetcher/extract").Msgf("Extracted %d entries from %s", len(reader.File), filepath.Base(archivePath))
	return nil
}

func entryPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if target != destDir && !strings.HasPrefix(target, destDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry escapes destination")
	}
	return target, nil
}

func extractEntry(file *zip.File, destDir string) error {
	target, err := entryPath(destDir, file.Name)
	if err != nil {
		return err
	}
	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
