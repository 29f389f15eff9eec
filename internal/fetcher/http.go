package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/sdlfetch/internal/utils"
)

type HTTPSource struct {
	client *utils.HTTPClient
}

func NewHTTPSource(cfg utils.HTTPClientConfig) *HTTPSource {
	return &HTTPSource{client: utils.NewHTTPClient(cfg)}
}

// Fetch performs a single GET and streams the body to outputPath. The file is
// only created once the server answered 200.
func (s *HTTPSource) Fetch(ctx context.Context, url, outputPath string, progress func(downloaded, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: error creating GET request: %v", utils.ErrNetwork, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: error executing GET request: %v", utils.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code: %d", utils.ErrNetwork, resp.StatusCode)
	}
	log.Debug().Str("op", "fetcher/http").Int64("size", resp.ContentLength).Msgf("Fetching %s", url)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outFile.Close()

	var downloaded int64
	buffer := make([]byte, utils.DefaultBufferSize)
	for {
		bytesRead, readErr := resp.Body.Read(buffer)
		if bytesRead > 0 {
			if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
				return fmt.Errorf("error writing to output file: %v", writeErr)
			}
			downloaded += int64(bytesRead)
			if progress != nil {
				progress(downloaded, resp.ContentLength)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return fmt.Errorf("%w: error reading response body: %v", utils.ErrNetwork, readErr)
		}
	}
	if err := outFile.Sync(); err != nil {
		return fmt.Errorf("error syncing output file: %v", err)
	}
	return outFile.Close()
}
