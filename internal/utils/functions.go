package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

// PathExists reports whether anything (file or directory) exists at path.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DefaultBaseDir is the "external" directory beside the running executable.
func DefaultBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.Debug().Str("op", "utils/functions").Err(err).Msg("Cannot resolve executable, using working directory")
		return DefaultBaseDirName
	}
	return filepath.Join(filepath.Dir(exe), DefaultBaseDirName)
}

// CleanArchives removes leftover archives directly under baseDir and returns their names.
func CleanArchives(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ArchiveExtension) {
			continue
		}
		if err := os.Remove(filepath.Join(baseDir, entry.Name())); err != nil {
			return removed, fmt.Errorf("error removing %s: %v", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}
