package dialog

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "greeting"
msgstr "Hello there"

msgid "odds"
msgstr "100% sure, %d times over"

msgid "untranslated"
msgstr ""
`

func TestCatalogText(t *testing.T) {
	c := Parse([]byte(samplePO))
	assert.Equal(t, "Hello there", c.Text("greeting"))
	assert.Equal(t, "missing.key", c.Text("missing.key"))
	assert.Equal(t, "100% sure, %d times over", c.Text("odds"), "text is not a format string")
	assert.Equal(t, "untranslated", c.Text("untranslated"))

	var nilCatalog *Catalog
	assert.Equal(t, "x", nilCatalog.Text("x"))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"en.po": {Data: []byte(samplePO)}}
	c, err := Load(fsys, "en.po")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", c.Text("greeting"))

	_, err = Load(fsys, "fr.po")
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "one two", 10, []string{"one two"}},
		{"breaks on spaces", "one two three", 8, []string{"one two", "three"}},
		{"keeps newlines", "a\nb", 10, []string{"a", "b"}},
		{"splits long words", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"collapses spaces", "a    b", 10, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrapCountsWideGlyphs(t *testing.T) {
	lines := Wrap("🔥🔥🔥 water", 4)
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 4, "line %q", l)
	}
	assert.Equal(t, "🔥🔥🔥water", strings.Join(lines, ""))
}

func TestDialogPaging(t *testing.T) {
	d := New("k", "one two three four five six", 7, 2)
	require.Equal(t, 3, d.Pages())
	assert.Equal(t, []string{"one two", "three"}, d.Page())
	assert.False(t, d.Done())

	d.Next()
	assert.Equal(t, 1, d.Index())
	assert.Equal(t, []string{"four", "five"}, d.Page())
	d.Next()
	assert.Equal(t, []string{"six"}, d.Page())
	d.Next()
	assert.True(t, d.Done())
	assert.Nil(t, d.Page())
	d.Next()
	assert.True(t, d.Done())
}

func TestEmptyDialogHasOnePage(t *testing.T) {
	d := New("k", "", 10, 3)
	assert.Equal(t, 1, d.Pages())
	assert.False(t, d.Done())
}
