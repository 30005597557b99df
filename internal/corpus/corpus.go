package corpus

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KaramelBytes/sampledeck/internal/grammar"
	"github.com/KaramelBytes/sampledeck/internal/logging"
	"go.uber.org/zap"
)

// Samples live under testdata so the go tool never builds sample.go.
//
//go:embed testdata/files
var embedded embed.FS

const (
	embeddedRoot = "testdata/files"
	displayRoot  = "files"
)

// ErrNotFound indicates no fixture exists for the requested language key.
var ErrNotFound = errors.New("fixture not found")

// Corpus is a read-only snapshot of sample files keyed by file id.
// It is safe for concurrent use.
type Corpus struct {
	files    map[string]*Fixture
	registry *grammar.Registry
	source   string
	log      *zap.SugaredLogger
}

// Entry summarizes one fixture for listings.
type Entry struct {
	Language string `json:"language"`
	FileID   string `json:"file_id"`
	Path     string `json:"path"`
	Size     int    `json:"size"`
}

// Option configures New.
type Option func(*options)

type options struct {
	dir      string
	registry *grammar.Registry
	log      *zap.SugaredLogger
}

// WithDir loads fixtures from dir instead of the embedded set.
func WithDir(dir string) Option { return func(o *options) { o.dir = dir } }

// WithRegistry overrides the grammar catalog used for key resolution.
func WithRegistry(r *grammar.Registry) Option { return func(o *options) { o.registry = r } }

// WithLogger attaches a logger.
func WithLogger(l *zap.SugaredLogger) Option { return func(o *options) { o.log = l } }

// New snapshots every sample.<id> file from the configured source.
func New(opts ...Option) (*Corpus, error) {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	c := &Corpus{
		files:    make(map[string]*Fixture),
		registry: o.registry,
		log:      logging.OrNop(o.log),
	}
	if c.registry == nil {
		c.registry = grammar.Default()
	}

	var (
		fsys    fs.FS
		root    string
		display func(name string) string
	)
	if o.dir != "" {
		info, err := os.Stat(o.dir)
		if err != nil {
			return nil, fmt.Errorf("fixtures dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("fixtures dir %s: not a directory", o.dir)
		}
		fsys, root = os.DirFS(o.dir), "."
		display = func(name string) string { return filepath.Join(o.dir, name) }
		c.source = o.dir
	} else {
		fsys, root = embedded, embeddedRoot
		display = func(name string) string { return path.Join(displayRoot, name) }
		c.source = "embedded"
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, grammar.SamplePrefix) {
			continue
		}
		fileID := strings.ToLower(strings.TrimPrefix(name, grammar.SamplePrefix))
		if fileID == "" {
			continue
		}
		if prev, ok := c.files[fileID]; ok {
			return nil, fmt.Errorf("fixtures %s and %s share file id %q", prev.Path, display(name), fileID)
		}
		b, err := fs.ReadFile(fsys, path.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", name, err)
		}
		// Unknown file ids keep the id as their tag; the integrity check flags them.
		lang := fileID
		if d, ok := c.registry.ForSampleFile(fileID); ok {
			lang = d.ID
		}
		c.files[fileID] = &Fixture{
			Language: lang,
			FileID:   fileID,
			Path:     display(name),
			content:  b,
		}
	}
	c.log.Debugw("corpus loaded", "source", c.source, "fixtures", len(c.files))
	return c, nil
}

// Source reports where fixtures were loaded from ("embedded" or a directory).
func (c *Corpus) Source() string { return c.source }

// Get returns the fixture for a language key. An exact file id wins;
// otherwise the key is resolved as a grammar id, alias or extension.
func (c *Corpus) Get(key string) (*Fixture, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return nil, fmt.Errorf("fixture for empty key: %w", ErrNotFound)
	}
	f, ok := c.files[k]
	if !ok {
		if d, found := c.registry.Lookup(k); found {
			f, ok = c.files[grammar.SampleFileID(d.ID)]
			if !ok {
				f, ok = c.byLanguage(d.ID)
			}
		}
	}
	if !ok {
		c.log.Debugw("fixture miss", "key", key)
		return nil, fmt.Errorf("fixture %q: %w", key, ErrNotFound)
	}
	return f.withKey(key), nil
}

// byLanguage finds a fixture tagged lang whose file id differs from the
// canonical one (sample.py for python). The smallest file id wins.
func (c *Corpus) byLanguage(lang string) (*Fixture, bool) {
	var best *Fixture
	for _, f := range c.files {
		if f.Language == lang && (best == nil || f.FileID < best.FileID) {
			best = f
		}
	}
	return best, best != nil
}

// ForFile resolves the fixture matching a file name's extension.
func (c *Corpus) ForFile(name string) (*Fixture, error) {
	d, ok := c.registry.FromFileName(name)
	if !ok {
		return nil, fmt.Errorf("fixture for file %q: %w", name, ErrNotFound)
	}
	return c.Get(d.ID)
}

// List returns every fixture sorted by language tag, then file id.
func (c *Corpus) List() []Entry {
	out := make([]Entry, 0, len(c.files))
	for _, f := range c.files {
		out = append(out, Entry{Language: f.Language, FileID: f.FileID, Path: f.Path, Size: len(f.content)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Language != out[j].Language {
			return out[i].Language < out[j].Language
		}
		return out[i].FileID < out[j].FileID
	})
	return out
}

// Languages returns the distinct language tags of every fixture, sorted.
func (c *Corpus) Languages() []string {
	var out []string
	for _, e := range c.List() {
		if len(out) == 0 || out[len(out)-1] != e.Language {
			out = append(out, e.Language)
		}
	}
	return out
}

// Registry returns the grammar catalog used to resolve keys and tags.
func (c *Corpus) Registry() *grammar.Registry { return c.registry }
