package utils

import (
	"io"
	"os"
	"strings"
)

// maxInputSize caps how much piped input is read
const maxInputSize = 64 * 1024

// ReadInput reads all content from r and trims surrounding whitespace.
// A terminal, or an empty regular file, yields "" without blocking.
func ReadInput(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", err
		}

		// If it's a terminal, we don't want to block waiting for input
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", nil
		}

		// If it's a regular file and it's empty, return empty (don't block)
		if stat.Mode().IsRegular() && stat.Size() == 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputSize))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
