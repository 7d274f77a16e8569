// Package public embeds the browser assets served under /assets.
package public

import (
	"embed"
	"fmt"
	"io/fs"
)

// Dir is the embedded directory that holds the assets.
const Dir = "static"

//go:embed static
var static embed.FS

// StaticFS returns the asset tree rooted at Dir. Every name in required must
// be a regular file in it.
func StaticFS(required ...string) (fs.FS, error) {
	sub, err := fs.Sub(static, Dir)
	if err != nil {
		return nil, fmt.Errorf("public: %w", err)
	}
	for _, name := range required {
		info, err := fs.Stat(sub, name)
		if err != nil {
			return nil, fmt.Errorf("public: required asset %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("public: required asset %s is not a file", name)
		}
	}
	return sub, nil
}
