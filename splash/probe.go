// CLAUDE:SUMMARY Decodes image splash resources to report their intrinsic pixel size.
package splash

import (
	"github.com/disintegration/imaging"
)

// ProbeImage decodes the image resource fileName of ui and returns its size
// in pixels. Resolution never calls it: image contents are not read.
func (l *Loader) ProbeImage(ui UI, fileName string) (width, height int, err error) {
	src, err := Classify(fileName)
	if err != nil {
		return 0, 0, err
	}
	if src.Kind != KindImage {
		return 0, 0, &ErrUnsupportedKind{File: fileName}
	}

	f, err := l.open(ui, fileName)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return 0, 0, &ErrResourceRead{UI: ui.Name, File: fileName, Cause: err}
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
