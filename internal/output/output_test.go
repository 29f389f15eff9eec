package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.00 KB", FormatBytes(1024))
	assert.Equal(t, "1.50 MB", FormatBytes(1536*1024))
	assert.Equal(t, "2.00 GB", FormatBytes(2*1024*1024*1024))
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "0 B/s", FormatSpeed(100, 0))
	assert.Equal(t, "1.00 KB/s", FormatSpeed(2048, 2))
}

func TestRenderProgressBar(t *testing.T) {
	bar := RenderProgressBar(5, 10, 10)
	assert.Equal(t, "•"+strings.Repeat("━", 5)+strings.Repeat(" ", 5)+"• 50.0%", bar)

	full := RenderProgressBar(20, 10, 4)
	assert.Equal(t, "•━━━━• 100.0%", full)

	empty := RenderProgressBar(-1, 0, 4)
	assert.Equal(t, "•    • 0.0%", empty)
}

func TestPrintGoesToWriter(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stdout)

	PrintPending("Downloading SDL2-devel-2.0.16-VC.zip")
	assert.Contains(t, buf.String(), "Downloading SDL2-devel-2.0.16-VC.zip")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestProgressSilentWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stdout)

	p := NewProgress("SDL2.zip")
	p.Update(10, 100)
	p.Update(100, 100)
	p.Done()
	assert.Empty(t, buf.String())
}
