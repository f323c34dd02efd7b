// CLAUDE:SUMMARY Loads splash contents: parses HTML resources into head+body child nodes, or synthesizes an img node.
package splash

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hazyhaar/splashscreen/horosafe"
)

// Loader turns splash resource names into DOM nodes.
type Loader struct {
	cfg    Config
	logger *slog.Logger
}

// NewLoader creates a Loader with the given configuration.
func NewLoader(cfg Config) *Loader {
	cfg.defaults()
	return &Loader{cfg: cfg, logger: cfg.Logger}
}

// Contents returns the splash contents for fileName, dispatching on its
// extension.
func (l *Loader) Contents(ui UI, fileName string) ([]*html.Node, error) {
	src, err := Classify(fileName)
	if err != nil {
		return nil, err
	}

	var nodes []*html.Node
	switch src.Kind {
	case KindHTML:
		nodes, err = l.HTMLContents(ui, src.Path)
	case KindImage:
		nodes = ImageContents(src.Path)
	default:
		return nil, &ErrUnsupportedKind{File: fileName}
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("splash: contents resolved", "ui", ui.Name, "file", fileName, "kind", src.Kind, "nodes", len(nodes))
	return nodes, nil
}

// ImageContents returns a single img element whose src is src verbatim.
func ImageContents(src string) []*html.Node {
	return []*html.Node{{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
		Attr:     []html.Attribute{{Key: "src", Val: src}},
	}}
}

// HTMLContents parses the HTML resource fileName of ui and returns the direct
// children of <head> followed by the direct children of <body>. Each node
// keeps its subtree and is detached from the parsed document.
func (l *Loader) HTMLContents(ui UI, fileName string) ([]*html.Node, error) {
	f, err := l.open(ui, fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// UTF-8, dropping a leading byte order mark.
	r := transform.NewReader(f, unicode.UTF8BOM.NewDecoder())
	data, err := horosafe.LimitedReadAll(r, l.cfg.MaxResourceSize)
	if err != nil {
		return nil, &ErrResourceRead{UI: ui.Name, File: fileName, Cause: err}
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrResourceRead{UI: ui.Name, File: fileName, Cause: err}
	}

	head, body := headAndBody(doc)
	contents := make([]*html.Node, 0)
	contents = appendChildren(contents, head)
	contents = appendChildren(contents, body)
	return contents, nil
}

// open resolves fileName against the UI's location and opens it.
func (l *Loader) open(ui UI, fileName string) (fs.File, error) {
	if ui.Resources == nil {
		return nil, &ErrResourceNotFound{UI: ui.Name, File: fileName}
	}
	p, err := horosafe.ResourcePath(ui.Dir, fileName)
	if err != nil {
		l.logger.Debug("splash: rejected resource path", "ui", ui.Name, "file", fileName, "error", err)
		return nil, &ErrResourceNotFound{UI: ui.Name, File: fileName}
	}
	f, err := ui.Resources.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, &ErrResourceNotFound{UI: ui.Name, File: fileName}
		}
		return nil, &ErrResourceRead{UI: ui.Name, File: fileName, Cause: fmt.Errorf("open %s: %w", p, err)}
	}
	return f, nil
}

func headAndBody(doc *html.Node) (head, body *html.Node) {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode || n.DataAtom != atom.Html {
			continue
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Head:
				head = c
			case atom.Body, atom.Frameset:
				body = c
			}
		}
	}
	return head, body
}

// appendChildren moves the direct children of parent onto dst, in order.
func appendChildren(dst []*html.Node, parent *html.Node) []*html.Node {
	if parent == nil {
		return dst
	}
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		parent.RemoveChild(c)
		dst = append(dst, c)
		c = next
	}
	return dst
}
