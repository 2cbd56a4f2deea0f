package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medkb/medical-chatbot-rag/internal/rag"
)

func TestBuildSystemPrompt_TargetLanguage(t *testing.T) {
	chunks := []rag.DocChunk{{ID: "a", Source: "book.pdf", Page: 1, Content: "text"}}

	sys, _ := buildSystemPrompt(chunks, "pt")
	assert.Contains(t, sys, "Brazilian Portuguese")

	sys, _ = buildSystemPrompt(chunks, "xx")
	assert.Contains(t, sys, "English")
}

func TestBuildSystemPrompt_IncludesExcerpts(t *testing.T) {
	chunks := []rag.DocChunk{
		{ID: "c1", Source: "medical_book.pdf", Page: 7, Content: "Insulin regulates glucose."},
		{ID: "c2", Source: "medical_book.pdf", Page: 8, Content: "Produced in the pancreas."},
	}

	_, ctx := buildSystemPrompt(chunks, "en")

	assert.Contains(t, ctx, "[DOC c1] source=medical_book.pdf page=7")
	assert.Contains(t, ctx, "Insulin regulates glucose.")
	assert.Contains(t, ctx, "[DOC c2]")
}

func TestBuildSystemPrompt_CapsChunksAndLength(t *testing.T) {
	var chunks []rag.DocChunk
	for i := 0; i < 15; i++ {
		chunks = append(chunks, rag.DocChunk{
			ID:      string(rune('a' + i)),
			Source:  "book.pdf",
			Content: strings.Repeat("z", 2000),
		})
	}

	_, ctx := buildSystemPrompt(chunks, "en")

	assert.Equal(t, 10, strings.Count(ctx, "[DOC "))
	assert.Contains(t, ctx, "...")
	assert.NotContains(t, ctx, strings.Repeat("z", 1300))
}

func TestUserPrompt_Layout(t *testing.T) {
	p := userPrompt("  what is insulin?  ", "EXCERPTS")

	require.True(t, strings.HasPrefix(p, "Question:\nwhat is insulin?"))
	assert.Contains(t, p, "Relevant document excerpts:\nEXCERPTS")
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normalizeWhitespace("  a \n\t b \r\n c  "))
	assert.Equal(t, "", normalizeWhitespace("   "))
}
