// Package dialog loads the game's text and splits it into pages for the
// dialog box.
package dialog

import (
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// Catalog maps message keys to text.
type Catalog struct {
	po *gotext.Po
}

// Parse builds a catalog from GNU gettext PO source.
func Parse(src []byte) *Catalog {
	po := gotext.NewPo()
	po.Parse(src)
	return &Catalog{po: po}
}

// Load reads the PO file at name from fsys.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("dialog: load %s: %w", name, err)
	}
	return Parse(src), nil
}

// Text returns the message for key, or key itself when it has none.
func (c *Catalog) Text(key string) string {
	if c == nil || c.po == nil {
		return key
	}
	tr, ok := c.po.GetDomain().GetTranslations()[key]
	if !ok || tr == nil {
		return key
	}
	return tr.Get()
}
