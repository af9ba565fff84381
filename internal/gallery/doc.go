// Package gallery is the preview gallery: one demo per widget, each shown
// live next to its documentation and example code.
//
// Demos are registered in a Registry. Their prose is markdown with YAML
// front matter, embedded under docs/ and converted with goldmark. A page
// visit creates a Session that owns the demo's state until the browser
// disconnects.
package gallery
