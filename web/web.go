// Package web embeds the HTML pages and static assets served by the app.
package web

import (
	"embed"
	"io/fs"
)

// Page names under views/.
const (
	PageIndex    = "index"
	PageAbout    = "about"
	PageNotFound = "404"
)

//go:embed views/*.html public
var content embed.FS

// Page returns the HTML of the named page.
func Page(name string) ([]byte, error) {
	return content.ReadFile("views/" + name + ".html")
}

// Public returns the static asset tree served from the site root.
func Public() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		// "public" is embedded at compile time.
		panic(err)
	}
	return sub
}
