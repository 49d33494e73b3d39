package lexer

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

// utf8BOM is the byte-order mark some editors prepend to a .va file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a leading BOM and applies Unicode NFC normalization
// so that two differently-encoded copies of the same source (composed
// vs. combining-accent form of the same character) lex to the same
// token stream. Called once per file, before the lexer sees any bytes.
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, utf8BOM)
	if !norm.NFC.IsNormal(src) {
		return norm.NFC.Bytes(src)
	}
	return src
}
