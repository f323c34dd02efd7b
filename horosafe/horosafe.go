// Package horosafe provides the guards used when splash resources are looked
// up: identifier validation for UI names, resource path anchoring with a
// traversal check, and bounded reads.
package horosafe

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"strings"
)

// MaxResourceSize is the default cap for a single resource read (1 MiB).
const MaxResourceSize int64 = 1 << 20

// ErrPathTraversal is returned when a resource name escapes the root of its
// file system.
var ErrPathTraversal = errors.New("horosafe: path traversal detected")

// ErrTooLarge is returned by LimitedReadAll when the limit is exceeded.
var ErrTooLarge = errors.New("horosafe: content too large")

// ResourcePath anchors name at dir inside an fs.FS. A name starting with "/"
// is taken from the root of the file system instead of dir. The result is a
// cleaned, slash-separated path accepted by fs.ValidPath, or ErrPathTraversal
// if the name climbs above the root.
func ResourcePath(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("horosafe: empty resource name")
	}
	var p string
	if strings.HasPrefix(name, "/") {
		p = path.Clean(strings.TrimLeft(name, "/"))
	} else {
		p = path.Join(strings.Trim(dir, "/"), name)
	}
	if p == "" || p == "." || !fs.ValidPath(p) {
		return "", ErrPathTraversal
	}
	return p, nil
}

// ValidateIdentifier rejects identifiers that contain characters unsuitable
// for registry keys, file names, or URL path segments. Allows alphanumeric,
// underscore, hyphen, and dot.
func ValidateIdentifier(s string) error {
	if s == "" {
		return fmt.Errorf("horosafe: identifier must not be empty")
	}
	if len(s) > 256 {
		return fmt.Errorf("horosafe: identifier too long (max 256)")
	}
	for _, r := range s {
		if !isIdentChar(r) {
			return fmt.Errorf("horosafe: invalid character %q in identifier", r)
		}
	}
	return nil
}

// LimitedReadAll reads at most maxBytes from r. Returns an error wrapping
// ErrTooLarge if the limit is exceeded.
func LimitedReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	n := maxBytes
	if n < math.MaxInt64 {
		n++
	}
	lr := io.LimitReader(r, n)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, maxBytes)
	}
	return data, nil
}

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.'
}
