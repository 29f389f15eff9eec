// Package fetcher downloads library archives and extracts them into a base directory.
package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/sdlfetch/internal/output"
	"github.com/tanq16/sdlfetch/internal/utils"
)

// Source fetches the object at url into the file at outputPath.
type Source interface {
	Fetch(ctx context.Context, url, outputPath string, progress func(downloaded, total int64)) error
}

type Config struct {
	HTTPClientConfig utils.HTTPClientConfig
	S3Profile        string
}

type Fetcher struct {
	sources map[string]Source
}

func New(cfg Config) *Fetcher {
	httpSource := NewHTTPSource(cfg.HTTPClientConfig)
	return &Fetcher{
		sources: map[string]Source{
			"http":  httpSource,
			"https": httpSource,
			"s3":    NewS3Source(cfg.S3Profile),
		},
	}
}

// Register sets the source used for URLs with the given scheme.
func (f *Fetcher) Register(scheme string, source Source) {
	f.sources[strings.ToLower(scheme)] = source
}

// Run creates baseDir and ensures every job is extracted, in order.
// It stops at the first failing job.
func (f *Fetcher) Run(ctx context.Context, jobs []utils.Job, baseDir string) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("error creating base directory: %v", err)
	}
	log.Debug().Str("op", "fetcher/run").Str("dir", baseDir).Msgf("Processing %d jobs", len(jobs))
	for _, job := range jobs {
		if err := f.EnsureExtracted(ctx, job, baseDir); err != nil {
			return fmt.Errorf("%s: %w", job.Label(), err)
		}
	}
	return nil
}

// EnsureExtracted downloads and extracts job's archive into baseDir unless the
// target folder is already there. An existing entry of any kind counts.
func (f *Fetcher) EnsureExtracted(ctx context.Context, job utils.Job, baseDir string) error {
	if err := job.Validate(); err != nil {
		return err
	}
	archiveName := job.ArchiveName()
	target := job.TargetFolder()
	if utils.PathExists(filepath.Join(baseDir, target)) {
		log.Debug().Str("op", "fetcher/ensure").Str("job", job.ID).Msgf("%s already present, skipping", target)
		return nil
	}

	output.PrintPending(fmt.Sprintf("Downloading %s", archiveName))
	source, err := f.sourceFor(job.URL)
	if err != nil {
		return err
	}
	archivePath := filepath.Join(baseDir, archiveName)
	progress := output.NewProgress(archiveName)
	err = source.Fetch(ctx, job.URL, archivePath, progress.Update)
	progress.Done()
	if err != nil {
		return err
	}
	log.Debug().Str("op", "fetcher/ensure").Str("job", job.ID).Msgf("Downloaded %s", archivePath)

	if err := ExtractZip(archivePath, baseDir); err != nil {
		return err
	}
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("error removing archive %s: %v", archiveName, err)
	}
	if !utils.PathExists(filepath.Join(baseDir, target)) {
		return fmt.Errorf("%w: %s did not produce %s", utils.ErrPostcondition, archiveName, target)
	}
	log.Debug().Str("op", "fetcher/ensure").Str("job", job.ID).Msgf("Extracted %s", target)
	return nil
}

func (f *Fetcher) sourceFor(rawURL string) (Source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %v", utils.ErrNetwork, rawURL, err)
	}
	source, ok := f.sources[strings.ToLower(parsed.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported scheme %q", utils.ErrNetwork, parsed.Scheme)
	}
	return source, nil
}
