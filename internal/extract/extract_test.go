package extract

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMainText_StripsScriptAndStyle(t *testing.T) {
	htmlStr := `<html><head>
		<style>body { color: red; }</style>
		<script>alert("hi")</script>
	</head><body>
		<h1>Hypertension</h1>
		<p>High blood pressure often has no symptoms.</p>
	</body></html>`

	text := MainText(htmlStr)

	assert.Contains(t, text, "Hypertension")
	assert.Contains(t, text, "High blood pressure often has no symptoms.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestMainText_EmptyDocument(t *testing.T) {
	assert.Equal(t, "", MainText("<html><body></body></html>"))
}

func TestMainText_DropsSingleCharNoise(t *testing.T) {
	text := MainText("<body><p>x</p><p>Real content here</p></body>")

	assert.Equal(t, "Real content here", text)
}

func TestSanitizeUTF8_DropsInvalidBytes(t *testing.T) {
	in := "valid " + string([]byte{0xff, 0xfe}) + "text"

	out := SanitizeUTF8(in)

	assert.Equal(t, "valid text", out)
	assert.True(t, utf8.ValidString(out))
}

func TestSanitizeUTF8_KeepsMultibyteRunes(t *testing.T) {
	in := "dosagem de 5µg para o coração"

	assert.Equal(t, in, SanitizeUTF8(in))
}

func TestSanitizeUTF8_Empty(t *testing.T) {
	assert.Equal(t, "", SanitizeUTF8(""))
}
