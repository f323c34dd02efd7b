// CLAUDE:SUMMARY Renders splash contents to HTML (optionally sanitised) or Markdown, and builds JSON views.
package splash

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Renderer serialises splash contents for a rendering layer.
type Renderer struct {
	policy      *bluemonday.Policy // nil unless Config.Sanitize
	mdConverter *converter.Converter
}

// View is a JSON-friendly snapshot of a Configuration.
type View struct {
	Contents []string `json:"contents"` // one HTML fragment per node
	HTML     string   `json:"html"`
	Width    string   `json:"width"`
	Height   string   `json:"height"`
	Autohide bool     `json:"autohide"`
}

// NewRenderer creates a Renderer.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{
		mdConverter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
	if cfg.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Fragments renders each node separately.
func (r *Renderer) Fragments(nodes []*html.Node) ([]string, error) {
	out := make([]string, 0, len(nodes))
	var sb strings.Builder
	for _, n := range nodes {
		sb.Reset()
		if err := html.Render(&sb, n); err != nil {
			return nil, err
		}
		frag := sb.String()
		if r.policy != nil {
			frag = r.policy.Sanitize(frag)
		}
		out = append(out, frag)
	}
	return out, nil
}

// HTML renders nodes as one HTML string.
func (r *Renderer) HTML(nodes []*html.Node) (string, error) {
	frags, err := r.Fragments(nodes)
	if err != nil {
		return "", err
	}
	return strings.Join(frags, ""), nil
}

// Markdown renders nodes as Markdown, for previews in a terminal.
func (r *Renderer) Markdown(nodes []*html.Node) (string, error) {
	s, err := r.HTML(nodes)
	if err != nil {
		return "", err
	}
	return r.mdConverter.ConvertString(s)
}

// View renders c into a View.
func (r *Renderer) View(c *Configuration) (*View, error) {
	frags, err := r.Fragments(c.Contents)
	if err != nil {
		return nil, err
	}
	return &View{
		Contents: frags,
		HTML:     strings.Join(frags, ""),
		Width:    c.Width,
		Height:   c.Height,
		Autohide: c.Autohide,
	}, nil
}
