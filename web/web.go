package web

import (
	_ "embed"
)

// IndexHTML is the single-page frontend served at "/".
//
//go:embed index.html
var IndexHTML []byte

// DejaVu Sans Condensed covers Arabic and Latin, so customer names print
// as real glyphs on the measurement sheet.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	FontRegular []byte

	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	FontBold []byte
)
