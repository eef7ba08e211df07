package chunker

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := New()
		if c.maxChars != DefaultMaxChars {
			t.Errorf("expected maxChars %d, got %d", DefaultMaxChars, c.maxChars)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, c.overlap)
		}
	})

	t.Run("custom window size", func(t *testing.T) {
		c := New(WithMaxChars(500))
		if c.maxChars != 500 {
			t.Errorf("expected maxChars 500, got %d", c.maxChars)
		}
	})

	t.Run("overlap exceeds window size", func(t *testing.T) {
		c := New(WithMaxChars(100), WithOverlap(150))
		if c.overlap >= c.maxChars {
			t.Error("overlap should be clamped when it reaches the window size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c := New(WithMaxChars(0), WithOverlap(-1))
		if c.maxChars != DefaultMaxChars {
			t.Errorf("expected default maxChars, got %d", c.maxChars)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", c.overlap)
		}
	})
}

func TestSplit_Empty(t *testing.T) {
	c := New()
	if got := c.Split(""); len(got) != 0 {
		t.Errorf("expected no chunks for empty text, got %d", len(got))
	}
	if got := c.Split("  \n\t  "); len(got) != 0 {
		t.Errorf("expected no chunks for whitespace text, got %d", len(got))
	}
}

func TestSplit_SmallText(t *testing.T) {
	c := New()
	chunks := c.Split("hello   world\nnew line")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "hello world new line" {
		t.Errorf("whitespace not collapsed: %q", chunks[0])
	}
}

func TestSplit_ThreeWindows(t *testing.T) {
	// 3000 chars with maxChars=1200 and overlap=150 must give exactly
	// 3 chunks with 150-char overlaps between consecutive chunks.
	c := New(WithMaxChars(1200), WithOverlap(150))
	text := strings.Repeat("x", 3000)

	chunks := c.Split(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 1200 || len(chunks[1]) != 1200 {
		t.Errorf("expected full windows of 1200, got %d and %d", len(chunks[0]), len(chunks[1]))
	}
	// Last window starts at 2100.
	if len(chunks[2]) != 900 {
		t.Errorf("expected final window of 900, got %d", len(chunks[2]))
	}
}

func TestSplit_Coverage(t *testing.T) {
	// Concatenating each chunk minus its leading overlap reconstructs
	// the whole normalised input.
	c := New(WithMaxChars(50), WithOverlap(10))
	text := strings.Repeat("abcdefghij ", 37)
	normalised := strings.Join(strings.Fields(text), " ")

	chunks := c.Split(text)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}

	rebuilt := chunks[0]
	for _, chunk := range chunks[1:] {
		runes := []rune(chunk)
		rebuilt += string(runes[c.Overlap():])
	}
	if rebuilt != normalised {
		t.Error("chunks do not cover the normalised text")
	}
}

func TestSplit_Boundedness(t *testing.T) {
	c := New(WithMaxChars(100), WithOverlap(30))
	chunks := c.Split(strings.Repeat("word ", 500))
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 100 {
			t.Errorf("chunk %d exceeds maxChars: %d", i, len([]rune(chunk)))
		}
	}
}

func TestSplit_RuneSafe(t *testing.T) {
	// Cyrillic text must never be split mid-character.
	c := New(WithMaxChars(7), WithOverlap(2))
	chunks := c.Split(strings.Repeat("прайс ", 10))
	for i, chunk := range chunks {
		for _, r := range chunk {
			if r == '�' {
				t.Fatalf("chunk %d contains a broken rune: %q", i, chunk)
			}
		}
	}
}

func TestSplit_DegenerateOverlapTerminates(t *testing.T) {
	c := New(WithMaxChars(10), WithOverlap(10))
	chunks := c.Split(strings.Repeat("y", 100))
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	// Clamped overlap still advances the window.
	if len(chunks) > 100 {
		t.Errorf("suspiciously many chunks: %d", len(chunks))
	}
}
