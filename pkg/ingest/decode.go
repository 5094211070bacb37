// Package ingest converts an uploaded chat export into decoded transcript text.
package ingest

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw export bytes to text, trying a fixed ordered list of
// encodings: UTF-8, then UTF-16 (BOM required), then ISO8859-1. The first
// encoding that decodes cleanly wins. ISO8859-1 accepts any byte sequence,
// so it acts as the last-resort fallback; Android and iPhone exports differ
// in encoding, which is why the chain exists at all.
// Returns the decoded text and the name of the encoding that was used.
func Decode(data []byte) (string, string, error) {
	if text, ok := decodeUTF8(data); ok {
		return text, "utf-8", nil
	}
	if text, ok := decodeUTF16(data); ok {
		return text, "utf-16", nil
	}
	text, err := decodeLatin1(data)
	if err != nil {
		return "", "", fmt.Errorf("decoding transcript: %w", err)
	}
	return text, "iso8859-1", nil
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	// A leading BOM would turn the first transcript line into an
	// unparsable continuation, so it is stripped here.
	return string(bytes.TrimPrefix(data, utf8BOM)), true
}

func decodeUTF16(data []byte) (string, bool) {
	if len(data) < 2 || len(data)%2 != 0 {
		return "", false
	}
	// ExpectBOM rejects input without a byte order mark; the BOM itself
	// determines endianness and is consumed by the decoder.
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeLatin1(data []byte) (string, error) {
	dec := charmap.ISO8859_1.NewDecoder()
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
