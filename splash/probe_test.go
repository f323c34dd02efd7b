package splash

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProbeImage(t *testing.T) {
	files := fstest.MapFS{
		"app/main/logo.png":    {Data: pngBytes(t, 64, 24)},
		"app/main/corrupt.jpg": {Data: []byte("not a jpeg")},
	}
	ui := testUI(files)
	l := NewLoader(Config{})

	w, h, err := l.ProbeImage(ui, "logo.png")
	if err != nil {
		t.Fatal(err)
	}
	if w != 64 || h != 24 {
		t.Fatalf("size = %dx%d, want 64x24", w, h)
	}

	_, _, err = l.ProbeImage(ui, "corrupt.jpg")
	var rf *ErrResourceRead
	if !errors.As(err, &rf) {
		t.Fatalf("expected ErrResourceRead, got %v", err)
	}

	_, _, err = l.ProbeImage(ui, "missing.png")
	var nf *ErrResourceNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}

	_, _, err = l.ProbeImage(ui, "splash.html")
	var uk *ErrUnsupportedKind
	if !errors.As(err, &uk) {
		t.Fatalf("expected ErrUnsupportedKind for html, got %v", err)
	}
}
