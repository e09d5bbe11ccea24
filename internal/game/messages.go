package game

import "strings"

// NavPriority controls the color of a line in the nav log.
type NavPriority uint8

const (
	NavInfo     NavPriority = iota // cyan
	NavAcquired                    // green
	NavLost                        // yellow
	NavWarning                     // red
)

// NavMessage is a single line of the nav log.
type NavMessage struct {
	Text     string
	Priority NavPriority
	Tick     uint64
}

// NavLog is a bounded FIFO of HUD messages.
type NavLog struct {
	Messages []NavMessage
	maxSize  int
	width    int
}

// NewNavLog keeps the most recent maxSize lines, wrapping at width.
func NewNavLog(maxSize, width int) *NavLog {
	return &NavLog{
		Messages: make([]NavMessage, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends text, evicting the oldest lines when full.
func (l *NavLog) Add(tick uint64, text string, priority NavPriority) {
	for _, line := range wrapText(text, l.width) {
		msg := NavMessage{Text: line, Priority: priority, Tick: tick}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *NavLog) Recent(n int) []NavMessage {
	n = min(n, len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits text into lines no longer than width. Words longer than
// width get a line of their own.
func wrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
