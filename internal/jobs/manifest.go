package jobs

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/sdlfetch/internal/utils"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML list of job entries from path.
func Load(path string) ([]utils.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading job list: %v", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]utils.Job, error) {
	var entries []utils.JobEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing job list: %v", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("job list is empty")
	}
	jobs := make([]utils.Job, 0, len(entries))
	for i, entry := range entries {
		if entry.URL == "" {
			return nil, fmt.Errorf("%w: entry %d has no link", utils.ErrPrecondition, i+1)
		}
		job := utils.NewJob(entry.Name, entry.URL, entry.FolderName)
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if job.Name == "" {
			job.Name = job.TargetFolder()
		}
		jobs = append(jobs, job)
	}
	log.Debug().Str("op", "jobs/manifest").Msgf("Loaded %d jobs", len(jobs))
	return jobs, nil
}

// Select returns the jobs of the list at path, or the defaults when path is empty.
func Select(path string) ([]utils.Job, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
