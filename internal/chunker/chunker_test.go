package chunker

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := New()
		if c.size != DefaultChunkSize {
			t.Errorf("expected size %d, got %d", DefaultChunkSize, c.size)
		}
		if c.overlap != DefaultChunkOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultChunkOverlap, c.overlap)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		c := New(WithChunkSize(500), WithOverlap(100))
		if c.size != 500 {
			t.Errorf("expected size 500, got %d", c.size)
		}
		if c.overlap != 100 {
			t.Errorf("expected overlap 100, got %d", c.overlap)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		c := New(WithChunkSize(100), WithOverlap(150))
		if c.overlap >= c.size {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c := New(WithChunkSize(0), WithOverlap(-1))
		if c.size != DefaultChunkSize {
			t.Errorf("expected default size, got %d", c.size)
		}
		if c.overlap != DefaultChunkOverlap {
			t.Errorf("expected default overlap, got %d", c.overlap)
		}
	})
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses spaces", "a   b    c", "a b c"},
		{"collapses newlines and tabs", "a\n\nb\t\tc", "a b c"},
		{"trims ends", "  hello world  ", "hello world"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"  spaced \n out \t text ",
		"",
		strings.Repeat("word  ", 500),
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestChunk_Empty(t *testing.T) {
	c := New()
	if chunks := c.Chunk(""); chunks != nil {
		t.Errorf("expected nil for empty input, got %v", chunks)
	}
}

func TestChunk_SmallInput(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(20))

	chunks := c.Chunk("This fits in a single chunk.")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "This fits in a single chunk." {
		t.Errorf("unexpected chunk content: %q", chunks[0])
	}
}

func TestChunk_PrefersSentenceBoundary(t *testing.T) {
	c := New(WithChunkSize(50), WithOverlap(10))

	// The first sentence terminator after position 50 is within the
	// search window, so the first chunk should end just past it.
	text := Clean(strings.Repeat("word ", 11) + "end of sentence. And then some more text follows here to force a second chunk.")

	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], ".") {
		t.Errorf("expected first chunk to end at a sentence boundary, got %q", chunks[0])
	}
}

func TestChunk_SnapsToSpace(t *testing.T) {
	c := New(WithChunkSize(50), WithOverlap(10))

	// No sentence terminators at all; the break should land on a space
	// rather than mid-word.
	text := Clean(strings.Repeat("somewhat longish words without any terminators ", 5))

	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Each non-final chunk should end on a word boundary: the byte
	// following it in the input must be a space.
	for i, chunk := range chunks[:len(chunks)-1] {
		idx := strings.Index(text, chunk)
		if idx < 0 {
			t.Fatalf("chunk %d not found in input", i)
		}
		after := idx + len(chunk)
		if after < len(text) && text[after] != ' ' {
			t.Errorf("chunk %d cut mid-word near %q", i, chunk[len(chunk)-8:])
		}
	}
}

func TestChunk_Coverage(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(20))

	text := Clean(strings.Repeat("alpha beta gamma delta. ", 40))
	chunks := c.Chunk(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Every chunk must appear in the input, chunks must progress
	// monotonically, and the final chunk must reach the end of input.
	pos := 0
	for i, chunk := range chunks {
		idx := strings.Index(text[pos:], chunk)
		if idx < 0 {
			t.Fatalf("chunk %d is not a substring of the remaining input", i)
		}
		pos += idx
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Error("final chunk does not reach the end of the input")
	}
	if !strings.HasPrefix(text, chunks[0]) {
		t.Error("first chunk does not start at the beginning of the input")
	}
}

func TestChunk_SizeBound(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(20))

	text := Clean(strings.Repeat("lorem ipsum dolor sit amet. ", 100))
	chunks := c.Chunk(text)

	for i, chunk := range chunks[:len(chunks)-1] {
		if len(chunk) > 100+sentenceSearchWindow {
			t.Errorf("chunk %d exceeds size bound: %d chars", i, len(chunk))
		}
	}
}

func TestChunk_Terminates(t *testing.T) {
	// Pathological input with no break points at all.
	c := New(WithChunkSize(100), WithOverlap(99))

	text := strings.Repeat("x", 10_000)
	chunks := c.Chunk(text)

	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Error("final chunk does not reach the end of the input")
	}
}
