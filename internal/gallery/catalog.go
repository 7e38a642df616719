// Package gallery holds the scene catalogue and switches between scenes.
package gallery

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/composer"
	"github.com/Faultbox/scene-gallery/internal/logger"
)

//go:embed scenes/*.yaml
var builtin embed.FS

// builtinOrder is the navigation order of the embedded scenes.
var builtinOrder = []string{"index", "box", "basic-animation", "geometries", "spring", "labels"}

// Entry is one catalogued scene.
type Entry struct {
	Name   string
	Title  string
	Source string // Embedded path or file on disk
	desc   *composer.Description
}

// Description returns the parsed scene description.
func (e *Entry) Description() *composer.Description {
	return e.desc
}

// Catalog is an ordered set of scene descriptions.
type Catalog struct {
	entries []*Entry
	byName  map[string]int
}

// NewCatalog returns an empty catalogue.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]int)}
}

// LoadCatalog loads the embedded scenes, then any *.yaml files in dir. A
// file scene replaces an embedded scene of the same name. An empty dir loads
// only the embedded scenes.
func LoadCatalog(dir string) (*Catalog, error) {
	c := NewCatalog()
	for _, name := range builtinOrder {
		path := "scenes/" + name + ".yaml"
		data, err := builtin.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("embedded scene %s: %w", name, err)
		}
		if err := c.Add(path, data); err != nil {
			return nil, err
		}
	}

	if dir == "" {
		return c, nil
	}
	if err := c.LoadDir(os.DirFS(dir), dir); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadDir adds every *.yaml and *.yml file at the root of fsys in name order.
// root is only used to label the entries' sources.
func (c *Catalog) LoadDir(fsys fs.FS, root string) error {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading scene dir %s: %w", root, err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

	for _, f := range files {
		ext := filepath.Ext(f.Name())
		if f.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := fs.ReadFile(fsys, f.Name())
		if err != nil {
			return fmt.Errorf("reading scene %s: %w", f.Name(), err)
		}
		if err := c.Add(filepath.Join(root, f.Name()), data); err != nil {
			return err
		}
	}
	return nil
}

// Add parses data and adds it under the scene's name, falling back to the
// file name when the description has none.
func (c *Catalog) Add(source string, data []byte) error {
	desc, err := composer.Parse(data)
	if err != nil {
		return fmt.Errorf("scene %s: %w", source, err)
	}
	if desc.Name == "" {
		base := filepath.Base(source)
		desc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	title := desc.Title
	if title == "" {
		title = desc.Name
	}

	e := &Entry{Name: desc.Name, Title: title, Source: source, desc: desc}
	if i, ok := c.byName[e.Name]; ok {
		logger.Info("scene overridden",
			zap.String("scene", e.Name),
			zap.String("was", c.entries[i].Source),
			zap.String("now", source),
		)
		c.entries[i] = e
		return nil
	}
	c.byName[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
	return nil
}

// Len returns the number of scenes.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at navigation index i.
func (c *Catalog) At(i int) *Entry {
	return c.entries[i]
}

// Index returns the navigation index of name, or -1.
func (c *Catalog) Index(name string) int {
	i, ok := c.byName[name]
	if !ok {
		return -1
	}
	return i
}

// Names lists scene names in navigation order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}
