package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wedify/pkg/platform/sentinel"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Registry is the immutable template catalog. Construct via Load/LoadFrom at
// boot and share freely; it is safe for concurrent reads and has no mutation
// API.
type Registry struct {
	templates  []Template
	byID       map[string]*Template
	fallbackID string
}

type catalogFile struct {
	Fallback  string     `yaml:"fallback"`
	Templates []Template `yaml:"templates"`
}

// Load builds the registry from the embedded catalog artifact.
func Load() (*Registry, error) {
	return parse(embeddedCatalog)
}

// LoadFrom builds the registry from a YAML file on disk, for deployments that
// override the built-in catalog. An empty path falls back to the embedded one.
func LoadFrom(path string) (*Registry, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	r := &Registry{
		templates:  file.Templates,
		byID:       make(map[string]*Template, len(file.Templates)),
		fallbackID: file.Fallback,
	}
	for i := range r.templates {
		t := &r.templates[i]
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate template id %q", t.ID)
		}
		r.byID[t.ID] = t
	}
	return r, nil
}

// Find returns the template for id, or sentinel.ErrNotFound. Callers on the
// render path must treat a miss as "use Fallback()", never as a request error:
// a dangling id in old tenant data must not break rendering.
func (r *Registry) Find(id string) (*Template, error) {
	if t, ok := r.byID[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("template %q: %w", id, sentinel.ErrNotFound)
}

// List returns all templates in catalog order.
func (r *Registry) List() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Fallback returns the designated default template, used whenever a
// referenced template id or layout variant is unknown.
func (r *Registry) Fallback() *Template {
	return r.byID[r.fallbackID]
}

// Verify asserts the catalog's configuration-consistency invariants. It runs
// once at startup and aborts boot on violation; render-time code may then
// assume every variant tag it meets has a renderer.
func (r *Registry) Verify(registeredVariants map[LayoutVariant]bool) error {
	if len(r.templates) == 0 {
		return errors.New("catalog: no templates configured")
	}
	if _, ok := r.byID[r.fallbackID]; !ok {
		return fmt.Errorf("catalog: fallback template %q not in catalog", r.fallbackID)
	}
	for _, t := range r.templates {
		if t.ID == "" {
			return errors.New("catalog: template with empty id")
		}
		if !t.DefaultPalette.IsComplete() {
			return fmt.Errorf("catalog: template %q has incomplete default palette", t.ID)
		}
		if !registeredVariants[t.LayoutVariant] {
			return fmt.Errorf("catalog: template %q references layout variant %q with no registered renderer", t.ID, t.LayoutVariant)
		}
	}
	return nil
}
