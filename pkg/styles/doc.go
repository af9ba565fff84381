// Package styles mounts component stylesheets into the page being
// rendered. Each widget calls Mount with its id while rendering; the page
// collects one copy per id in first-mount order.
package styles
