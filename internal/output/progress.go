package output

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Progress redraws a single transient status line while bytes arrive.
// It draws nothing unless output goes to an interactive terminal.
type Progress struct {
	mu         sync.Mutex
	label      string
	enabled    bool
	startTime  time.Time
	lastDraw   time.Time
	drawTick   time.Duration
	lineLength int
}

func NewProgress(label string) *Progress {
	return &Progress{
		label:     label,
		enabled:   isTerminal(),
		startTime: time.Now(),
		drawTick:  100 * time.Millisecond,
	}
}

// Update is shaped to be passed as a download progress callback. A total of
// zero or less means the size is unknown.
func (p *Progress) Update(downloaded, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	if time.Since(p.lastDraw) < p.drawTick && downloaded != total {
		return
	}
	p.lastDraw = time.Now()
	p.draw(p.render(downloaded, total))
}

// Done clears the progress line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.lineLength == 0 {
		return
	}
	fmt.Fprintf(writer, "\r%s\r", strings.Repeat(" ", p.lineLength))
	p.lineLength = 0
}

func (p *Progress) render(downloaded, total int64) string {
	elapsed := time.Since(p.startTime).Seconds()
	speed := FormatSpeed(downloaded, elapsed)
	if total <= 0 {
		return fmt.Sprintf("  %s %s %s %s", StyleSymbols["arrow"], p.label, FormatBytes(uint64(downloaded)), speed)
	}
	barWidth := min(30, max(10, getTerminalWidth()-60))
	return fmt.Sprintf("  %s %s %s/%s %s", RenderProgressBar(downloaded, total, barWidth), p.label,
		FormatBytes(uint64(downloaded)), FormatBytes(uint64(total)), speed)
}

func (p *Progress) draw(line string) {
	maxWidth := getTerminalWidth() - 1
	if utf8.RuneCountInString(line) > maxWidth {
		line = string([]rune(line)[:maxWidth])
	}
	padding := ""
	if n := utf8.RuneCountInString(line); n < p.lineLength {
		padding = strings.Repeat(" ", p.lineLength-n)
	}
	fmt.Fprintf(writer, "\r%s%s", FDebug(line), padding)
	p.lineLength = utf8.RuneCountInString(line)
}
