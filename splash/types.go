// CLAUDE:SUMMARY Defines UI, Directive, Environment and Configuration types for splash screen resolution.
package splash

import (
	"io/fs"

	"golang.org/x/net/html"
)

// UI identifies a user interface that may carry a splash screen. Resources
// holds its files and Dir is the UI's own location inside Resources; relative
// resource names are resolved from there.
type UI struct {
	Name      string
	Resources fs.FS
	Dir       string
}

// Directive names the splash resource of a UI and how it is displayed.
type Directive struct {
	Value    string `json:"value" yaml:"value"` // resource file name (.html, .htm, .png, .jpg, .jpeg)
	Width    string `json:"width" yaml:"width"`
	Height   string `json:"height" yaml:"height"`
	Autohide bool   `json:"autohide" yaml:"autohide"`
}

// Environment is what a Configurator sees: the UI and the directive the
// caller attached to it. A nil Directive means the UI has no splash screen.
type Environment struct {
	UI        UI
	Directive *Directive
}

// Configuration is a resolved splash screen, ready for a rendering layer.
// Contents is never nil.
type Configuration struct {
	Contents []*html.Node
	Width    string
	Height   string
	Autohide bool
}
