package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Job is one archive to fetch and the folder it is expected to produce.
type Job struct {
	ID         string
	Name       string
	URL        string
	FolderName string // optional override for the extracted folder name
}

func NewJob(name, url, folderName string) Job {
	return Job{
		ID:         uuid.New().String(),
		Name:       name,
		URL:        url,
		FolderName: folderName,
	}
}

// ArchiveName is the last path segment of the job URL.
func (j Job) ArchiveName() string {
	parts := strings.Split(j.URL, "/")
	return parts[len(parts)-1]
}

// TargetFolder returns the override when set, else the archive name without ".zip".
func (j Job) TargetFolder() string {
	if j.FolderName != "" {
		return j.FolderName
	}
	return strings.TrimSuffix(j.ArchiveName(), ArchiveExtension)
}

func (j Job) Validate() error {
	archiveName := j.ArchiveName()
	if !strings.HasSuffix(archiveName, ArchiveExtension) {
		return fmt.Errorf("%w: %q does not end in %s", ErrPrecondition, j.URL, ArchiveExtension)
	}
	if j.TargetFolder() == "" {
		return fmt.Errorf("%w: empty target folder for %q", ErrPrecondition, j.URL)
	}
	return nil
}

func (j Job) Label() string {
	if j.Name != "" {
		return j.Name
	}
	return j.TargetFolder()
}

type JobEntry struct {
	Name       string `yaml:"name,omitempty"`
	URL        string `yaml:"link"`
	FolderName string `yaml:"folder,omitempty"`
}
