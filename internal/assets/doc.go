// Package assets provides the stylesheets embedded in HTML course previews.
//
// Styles live under styles/{name}.css and are compiled into the binary.
// Names are validated so that a caller-supplied name can never reach
// outside the styles directory.
package assets
