// Package cover assigns decorative cover images to new interviews.
package cover

import (
	"math/rand/v2"
	"path"
)

const basePath = "/covers"

var defaultCatalog = []string{
	"adobe.png",
	"amazon.png",
	"facebook.png",
	"hostinger.png",
	"pinterest.png",
	"quora.png",
	"reddit.png",
	"skype.png",
	"spotify.png",
	"telegram.png",
	"tiktok.png",
	"yahoo.png",
}

// Picker returns a cover image path
type Picker interface {
	Pick() string
}

type RandomPicker struct {
	catalog []string
	intn    func(n int) int
}

// NewRandomPicker picks uniformly from the built-in catalog
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{catalog: defaultCatalog, intn: rand.IntN}
}

// NewPicker picks from files with a caller-supplied source of indices
func NewPicker(files []string, intn func(n int) int) *RandomPicker {
	if len(files) == 0 {
		files = defaultCatalog
	}
	if intn == nil {
		intn = rand.IntN
	}
	return &RandomPicker{catalog: files, intn: intn}
}

func (p *RandomPicker) Pick() string {
	return path.Join(basePath, p.catalog[p.intn(len(p.catalog))])
}

// Catalog lists every path Pick can return
func (p *RandomPicker) Catalog() []string {
	paths := make([]string, len(p.catalog))
	for i, f := range p.catalog {
		paths[i] = path.Join(basePath, f)
	}
	return paths
}

// Fixed always returns the same path
type Fixed string

func (f Fixed) Pick() string {
	return string(f)
}
