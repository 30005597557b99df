package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed grammars.yaml
var catalogYAML []byte

// Definition describes one grammar known to the editor.
type Definition struct {
	ID         string   `yaml:"-" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Category   string   `yaml:"category" json:"category"`
	Extensions []string `yaml:"file_extensions" json:"extensions,omitempty"`
	Aliases    []string `yaml:"aliases" json:"aliases,omitempty"`
	MimeTypes  []string `yaml:"mime_types" json:"mime_types,omitempty"`
	IsBinary   bool     `yaml:"is_binary" json:"is_binary,omitempty"`
}

// HasExtension reports whether ext (with or without leading dot) belongs to d.
func (d *Definition) HasExtension(ext string) bool {
	ext = normalizeExt(ext)
	for _, e := range d.Extensions {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}

func (d *Definition) hasAlias(name string) bool {
	for _, a := range d.Aliases {
		if strings.ToLower(a) == name {
			return true
		}
	}
	return false
}

// Registry is an immutable, id-sorted grammar catalog.
type Registry struct {
	defs []*Definition
	byID map[string]*Definition
}

// Parse builds a registry from a YAML catalog keyed by grammar id.
func Parse(data []byte) (*Registry, error) {
	raw := map[string]*Definition{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse grammar catalog: %w", err)
	}
	r := &Registry{byID: make(map[string]*Definition, len(raw))}
	for id, d := range raw {
		if d == nil {
			return nil, fmt.Errorf("grammar %q: empty definition", id)
		}
		d.ID = strings.ToLower(id)
		if d.Category == "" {
			d.Category = "other"
		}
		r.byID[d.ID] = d
		r.defs = append(r.defs, d)
	}
	sort.Slice(r.defs, func(i, j int) bool { return r.defs[i].ID < r.defs[j].ID })
	return r, nil
}

// Lookup resolves an identifier by id, then alias, then file extension.
// Matching is case-insensitive and a leading dot is ignored for extensions.
func (r *Registry) Lookup(identifier string) (*Definition, bool) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if id == "" {
		return nil, false
	}
	if d, ok := r.byID[id]; ok {
		return d, true
	}
	for _, d := range r.defs {
		if d.hasAlias(id) {
			return d, true
		}
	}
	for _, d := range r.defs {
		if d.HasExtension(id) {
			return d, true
		}
	}
	return nil, false
}

// Get returns the definition with exactly this id.
func (r *Registry) Get(id string) (*Definition, bool) {
	d, ok := r.byID[strings.ToLower(id)]
	return d, ok
}

// ForSampleFile resolves the grammar of a sample file id ("proto", "py",
// "python") or name ("sample.proto"): renamed ids first, then Lookup.
func (r *Registry) ForSampleFile(name string) (*Definition, bool) {
	fileID := strings.ToLower(strings.TrimPrefix(name, SamplePrefix))
	if d, ok := r.byID[GrammarIDFromFileName(fileID)]; ok {
		return d, true
	}
	return r.Lookup(fileID)
}

// FromExtension resolves by extension first and falls back to aliases.
func (r *Registry) FromExtension(ext string) (*Definition, bool) {
	ext = normalizeExt(ext)
	if ext == "" {
		return nil, false
	}
	for _, d := range r.defs {
		if d.HasExtension(ext) {
			return d, true
		}
	}
	for _, d := range r.defs {
		if d.hasAlias(ext) {
			return d, true
		}
	}
	return nil, false
}

// FromFileName resolves a grammar from the last extension of a file name or path.
func (r *Registry) FromFileName(name string) (*Definition, bool) {
	i := strings.LastIndex(name, ".")
	if i == -1 || i == len(name)-1 {
		return nil, false
	}
	return r.FromExtension(name[i+1:])
}

// All returns every definition sorted by id.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ByCategory returns the definitions in the given category, sorted by id.
func (r *Registry) ByCategory(category string) []*Definition {
	var out []*Definition
	for _, d := range r.defs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns the distinct categories in sorted order.
func (r *Registry) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range r.defs {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	sort.Strings(out)
	return out
}

// DisplayCategory turns "data_format" into "Data Format".
func DisplayCategory(category string) string {
	parts := strings.Split(category, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}

var defaultRegistry *Registry

func init() {
	r, err := Parse(catalogYAML)
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// Default returns the embedded grammar catalog.
func Default() *Registry { return defaultRegistry }

// Lookup resolves identifier against the embedded catalog.
func Lookup(identifier string) (*Definition, bool) { return defaultRegistry.Lookup(identifier) }

// FromFileName resolves name against the embedded catalog.
func FromFileName(name string) (*Definition, bool) { return defaultRegistry.FromFileName(name) }
