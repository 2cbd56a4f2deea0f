package llm

import (
	"fmt"
	"strings"

	"github.com/medkb/medical-chatbot-rag/internal/rag"
)

// buildSystemPrompt assembles the grounded system instruction and the
// excerpt block shared by every provider.
func buildSystemPrompt(chunks []rag.DocChunk, lang string) (string, string) {
	var sys strings.Builder
	var ctx strings.Builder

	target := map[string]string{
		"pt": "Brazilian Portuguese",
		"en": "English",
		"es": "Spanish",
	}[lang]
	if target == "" {
		target = "English"
	}

	sys.WriteString("You are a medical assistant for question-answering tasks. ")
	sys.WriteString(target)
	sys.WriteString(" is the target language for all responses. ")
	sys.WriteString("Always answer ONLY based on the provided document excerpts. ")
	sys.WriteString("If the answer is not clearly present, say that you don't know. ")
	sys.WriteString("Do not invent diagnoses, dosages or treatments. ")
	sys.WriteString("Keep the answer concise, three sentences maximum.\n")

	const (
		maxChunks     = 10
		maxChunkChars = 1200
	)

	n := len(chunks)
	if n > maxChunks {
		n = maxChunks
	}

	for i := 0; i < n; i++ {
		c := chunks[i]
		ctx.WriteString(fmt.Sprintf(
			"\n[DOC %s] source=%s page=%d\n",
			c.ID,
			oneLine(c.Source),
			c.Page,
		))
		ctx.WriteString(trimBody(c.Content, maxChunkChars))
		ctx.WriteString("\n----\n")
	}

	return sys.String(), ctx.String()
}

func userPrompt(question, contextText string) string {
	return fmt.Sprintf(
		"Question:\n%s\n\nRelevant document excerpts:\n%s",
		strings.TrimSpace(question),
		contextText,
	)
}

func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			if !space {
				b.WriteRune(' ')
				space = true
			}
		} else {
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) > 160 {
		return s[:160] + "..."
	}
	return s
}

func trimBody(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
