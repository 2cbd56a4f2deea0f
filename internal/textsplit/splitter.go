package textsplit

import "strings"

// separator priority: paragraph > line > sentence > word
var separators = []string{"\n\n", "\n", ". ", " "}

// Splitter breaks text into chunks of at most chunkSize bytes, preferring
// paragraph and sentence boundaries, with a trailing overlap carried into
// the next chunk.
type Splitter struct {
	chunkSize int
	overlap   int
}

func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}
}

func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	pieces := s.split(text, separators)
	return s.merge(pieces)
}

// split recursively breaks text into pieces no larger than chunkSize,
// trying each separator in priority order before hard-cutting.
func (s *Splitter) split(text string, seps []string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	if len(seps) == 0 {
		var out []string
		for len(text) > s.chunkSize {
			out = append(out, text[:s.chunkSize])
			text = text[s.chunkSize:]
		}
		if text != "" {
			out = append(out, text)
		}
		return out
	}

	parts := strings.SplitAfter(text, seps[0])
	if len(parts) == 1 {
		return s.split(text, seps[1:])
	}

	var out []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(p) <= s.chunkSize {
			out = append(out, p)
		} else {
			out = append(out, s.split(p, seps[1:])...)
		}
	}
	return out
}

// merge greedily packs pieces into chunks up to chunkSize. After each flush
// the last overlap bytes are carried into the next chunk.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string
	var buf strings.Builder
	fresh := false // buf holds content beyond the carried overlap

	flush := func() {
		if !fresh {
			buf.Reset()
			return
		}
		raw := buf.String()
		buf.Reset()
		chunk := strings.TrimSpace(raw)
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if s.overlap > 0 {
			tail := raw
			if len(tail) > s.overlap {
				tail = tail[len(tail)-s.overlap:]
			}
			buf.WriteString(tail)
		}
		fresh = false
	}

	for _, p := range pieces {
		if buf.Len() > 0 && buf.Len()+len(p) > s.chunkSize {
			flush()
		}
		buf.WriteString(p)
		fresh = true
	}
	flush()

	return chunks
}
