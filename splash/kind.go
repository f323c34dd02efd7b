// CLAUDE:SUMMARY Classifies splash resource file names into HTML or image sources by exact suffix.
package splash

import "strings"

// Kind is the kind of splash content a file name refers to.
type Kind string

const (
	KindHTML  Kind = "html"
	KindImage Kind = "image"
)

// Source is a classified splash resource.
type Source struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

var suffixes = []struct {
	suffix string
	kind   Kind
}{
	{".html", KindHTML},
	{".htm", KindHTML},
	{".png", KindImage},
	{".jpg", KindImage},
	{".jpeg", KindImage},
}

// Classify decides the kind of fileName from its suffix. Matching is exact:
// "logo.PNG" is not an image.
func Classify(fileName string) (Source, error) {
	for _, s := range suffixes {
		if strings.HasSuffix(fileName, s.suffix) {
			return Source{Kind: s.kind, Path: fileName}, nil
		}
	}
	return Source{}, &ErrUnsupportedKind{File: fileName}
}

// SupportedExtensions returns the recognised suffixes in dispatch order.
func SupportedExtensions() []string {
	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = s.suffix
	}
	return out
}
