package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/sdlfetch/internal/utils"
)

// S3Source fetches s3://bucket/key URLs, for archives mirrored in a bucket.
type S3Source struct {
	profile string
	once    sync.Once
	client  *s3.Client
	initErr error
}

func NewS3Source(profile string) *S3Source {
	return &S3Source{profile: profile}
}

func (s *S3Source) getClient(ctx context.Context) (*s3.Client, error) {
	s.once.Do(func() {
		opts := []func(*config.LoadOptions) error{
			config.WithRetryMaxAttempts(1),
		}
		if s.profile != "" {
			opts = append(opts, config.WithSharedConfigProfile(s.profile))
		}
		cfg, err := config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			s.initErr = fmt.Errorf("error loading AWS config: %v", err)
			return
		}
		s.client = s3.NewFromConfig(cfg)
	})
	return s.client, s.initErr
}

func (s *S3Source) Fetch(ctx context.Context, rawURL, outputPath string, progress func(downloaded, total int64)) error {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrNetwork, err)
	}
	client, err := s.getClient(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrNetwork, err)
	}
	headObj, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: error accessing s3://%s/%s: %v", utils.ErrNetwork, bucket, key, err)
	}
	size := int64(-1)
	if headObj.ContentLength != nil {
		size = *headObj.ContentLength
	}
	log.Debug().Str("op", "fetcher/s3").Int64("size", size).Msgf("Fetching s3://%s/%s", bucket, key)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outFile.Close()

	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		d.Concurrency = 1
	})
	writer := &progressWriterAt{w: outFile, total: size, progress: progress}
	if _, err := downloader.Download(ctx, writer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("%w: error downloading s3://%s/%s: %v", utils.ErrNetwork, bucket, key, err)
	}
	return outFile.Close()
}

func parseS3URL(rawURL string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL %q: %v", rawURL, err)
	}
	if parsed.Scheme != "s3" {
		return "", "", fmt.Errorf("not an S3 URL: %q", rawURL)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if parsed.Host == "" || key == "" {
		return "", "", fmt.Errorf("S3 URL needs a bucket and a key: %q", rawURL)
	}
	return parsed.Host, key, nil
}

type progressWriterAt struct {
	w        io.WriterAt
	written  atomic.Int64
	total    int64
	progress func(downloaded, total int64)
}

func (p *progressWriterAt) WriteAt(b []byte, off int64) (int, error) {
	n, err := p.w.WriteAt(b, off)
	downloaded := p.written.Add(int64(n))
	if p.progress != nil {
		p.progress(downloaded, p.total)
	}
	return n, err
}
