package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// IsZip reports whether the data looks like a zip archive.
// iPhone exports often arrive zipped even when named .txt by the sender.
func IsZip(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// ExtractTranscript returns the contents of the first .txt member of a zip
// archive. An archive without any .txt member is a fatal input error.
func ExtractTranscript(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening zip archive: %w", err)
	}

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".txt") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening zip member %s: %w", f.Name, err)
		}
		contents, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading zip member %s: %w", f.Name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("closing zip member %s: %w", f.Name, closeErr)
		}
		return contents, nil
	}

	return nil, fmt.Errorf("no .txt transcript found inside zip archive")
}

// Load turns raw uploaded bytes into decoded transcript text, unwrapping a
// zip archive first when one is detected. Returns the text and the encoding
// that decoded it.
func Load(data []byte) (string, string, error) {
	if IsZip(data) {
		inner, err := ExtractTranscript(data)
		if err != nil {
			return "", "", err
		}
		data = inner
	}
	return Decode(data)
}
