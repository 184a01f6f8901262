package qcReport

import (
	"path/filepath"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// NameCleaner derives sample names from file names by truncating them at the
// first occurrence of any clean extension.
type NameCleaner struct {
	exts    []string
	matcher *ahocorasick.Matcher
}

func NewNameCleaner(exts []string) *NameCleaner {
	var c = &NameCleaner{}
	for _, ext := range exts {
		if ext != "" {
			c.exts = append(c.exts, ext)
		}
	}
	if len(c.exts) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.exts)
	}
	return c
}

// Clean returns the base name of path cut before the earliest clean
// extension. A name that would become empty is kept whole.
func (c *NameCleaner) Clean(path string) string {
	var name = filepath.Base(path)
	if c.matcher == nil {
		return name
	}
	var cut = len(name)
	for _, i := range c.matcher.Match([]byte(name)) {
		if idx := strings.Index(name, c.exts[i]); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	if cut == 0 {
		return name
	}
	return name[:cut]
}
