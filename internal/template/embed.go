package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Templates returns the embedded template sets. The project tree lives
// under "app" and the ingredient templates under "ingredient".
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails for an invalid path literal.
		panic(err)
	}
	return sub
}
