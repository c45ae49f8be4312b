package dialog

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Dialog is a text split into pages of at most Lines lines, each at most
// Width columns wide.
type Dialog struct {
	Key   string
	pages [][]string
	page  int
}

// New wraps text to width columns and pages it by lines.
func New(key, text string, width, lines int) *Dialog {
	if lines < 1 {
		lines = 1
	}
	wrapped := Wrap(text, width)
	d := &Dialog{Key: key}
	for len(wrapped) > 0 {
		n := min(lines, len(wrapped))
		d.pages = append(d.pages, wrapped[:n])
		wrapped = wrapped[n:]
	}
	if len(d.pages) == 0 {
		d.pages = [][]string{{""}}
	}
	return d
}

// Page returns the lines of the current page.
func (d *Dialog) Page() []string {
	if d.Done() {
		return nil
	}
	return d.pages[d.page]
}

// Pages returns the number of pages.
func (d *Dialog) Pages() int { return len(d.pages) }

// Index returns the current page number, from zero.
func (d *Dialog) Index() int { return d.page }

// Next moves to the following page.
func (d *Dialog) Next() {
	if !d.Done() {
		d.page++
	}
}

// Done reports whether every page was shown.
func (d *Dialog) Done() bool { return d.page >= len(d.pages) }

// Wrap breaks text into lines no wider than width columns. Explicit
// newlines start a new line; words longer than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		lw := 0
		flush := func() {
			out = append(out, line.String())
			line.Reset()
			lw = 0
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			flush()
			continue
		}
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			if lw > 0 && lw+1+ww > width {
				flush()
			}
			for ww > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// A single glyph wider than the box.
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				if lw > 0 {
					flush()
				}
				line.WriteString(head)
				flush()
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			if word == "" {
				continue
			}
			if lw > 0 {
				line.WriteByte(' ')
				lw++
			}
			line.WriteString(word)
			lw += ww
		}
		if lw > 0 {
			flush()
		}
	}
	return out
}
