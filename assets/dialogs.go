package assets

import "embed"

// Dialogs holds the dialog catalogs, one PO file per language.
//
//go:embed dialogs/*.po
var Dialogs embed.FS

// DefaultLanguage is the catalog loaded when none is configured.
const DefaultLanguage = "en"
