// Package chunker provides fixed-size sliding-window text chunking.
package chunker

import "strings"

// DefaultMaxChars is the default window size in characters.
const DefaultMaxChars = 1200

// DefaultOverlap is the default number of overlapping characters
// between consecutive windows.
const DefaultOverlap = 150

// Chunker splits normalised text into overlapping fixed-size windows.
type Chunker struct {
	maxChars int
	overlap  int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxChars sets the window size in characters.
func WithMaxChars(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxChars = n
		}
	}
}

// WithOverlap sets the overlap between windows in characters.
func WithOverlap(n int) Option {
	return func(c *Chunker) {
		if n >= 0 {
			c.overlap = n
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxChars: DefaultMaxChars,
		overlap:  DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Non-advancing windows would loop forever; clamp like a quarter
	// window instead.
	if c.overlap >= c.maxChars {
		c.overlap = c.maxChars / 4
	}

	return c
}

// MaxChars returns the configured window size.
func (c *Chunker) MaxChars() int { return c.maxChars }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Split collapses all whitespace runs in text to single spaces, then
// slides a window of maxChars characters through it. Consecutive
// windows overlap by overlap characters; the final window may be
// shorter. Whitespace-only windows are dropped. Every character of the
// normalised text is covered by at least one chunk.
//
// Windows are measured in runes, not bytes, so multi-byte scripts are
// never split mid-character.
func (c *Chunker) Split(text string) []string {
	normalised := strings.Join(strings.Fields(text), " ")
	if normalised == "" {
		return nil
	}

	runes := []rune(normalised)
	n := len(runes)

	chunks := make([]string, 0, n/(c.maxChars-c.overlap)+1)
	start := 0
	for start < n {
		end := start + c.maxChars
		if end > n {
			end = n
		}

		window := string(runes[start:end])
		if strings.TrimSpace(window) != "" {
			chunks = append(chunks, window)
		}

		if end == n {
			break
		}
		start = end - c.overlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}
