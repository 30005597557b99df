package integrity

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KaramelBytes/sampledeck/internal/corpus"
	"github.com/KaramelBytes/sampledeck/internal/grammar"
	"github.com/KaramelBytes/sampledeck/internal/logging"
	"github.com/KaramelBytes/sampledeck/internal/parser"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Check names.
const (
	CheckIdempotent = "idempotent_read"
	CheckTag        = "tag_matches_extension"
	CheckEncoding   = "encoding"
	CheckBalance    = "balance"
	CheckGrammar    = "grammar"
)

// Outcome is the result of one check.
type Outcome struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Report is the integrity verdict for a single fixture.
type Report struct {
	RunID     string         `json:"run_id"`
	Language  string         `json:"language"`
	Path      string         `json:"path"`
	Size      int            `json:"size"`
	Checks    []Outcome      `json:"checks"`
	Syntax    *parser.Result `json:"syntax,omitempty"`
	Balance   parser.Balance `json:"balance"`
	CheckedAt time.Time      `json:"checked_at"`
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.Passed && !c.Skipped {
			return false
		}
	}
	return true
}

// Failed returns the failing checks.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, c := range r.Checks {
		if !c.Passed && !c.Skipped {
			out = append(out, c)
		}
	}
	return out
}

// Verifier runs integrity checks against a corpus.
type Verifier struct {
	corpus  *corpus.Corpus
	workers int
	log     *zap.SugaredLogger
	runID   string
}

// NewVerifier builds a verifier. workers bounds VerifyAll fan-out; values < 1 mean 1.
func NewVerifier(c *corpus.Corpus, workers int, log *zap.SugaredLogger) *Verifier {
	if workers < 1 {
		workers = 1
	}
	return &Verifier{corpus: c, workers: workers, log: logging.OrNop(log), runID: uuid.NewString()}
}

// RunID identifies every report produced by this verifier.
func (v *Verifier) RunID() string { return v.runID }

// Verify checks the fixture for key. Lookup errors (including
// corpus.ErrNotFound) are returned as-is; check failures live in the report.
func (v *Verifier) Verify(ctx context.Context, key string) (*Report, error) {
	first, err := v.corpus.Get(key)
	if err != nil {
		return nil, err
	}
	second, err := v.corpus.Get(key)
	if err != nil {
		return nil, err
	}
	content := first.Bytes()
	rep := &Report{
		RunID:     v.runID,
		Language:  first.Language,
		Path:      first.Path,
		Size:      len(content),
		CheckedAt: time.Now().UTC(),
	}

	rep.Checks = append(rep.Checks, idempotent(first, second))
	rep.Checks = append(rep.Checks, tagMatches(v.corpus.Registry(), first))
	rep.Checks = append(rep.Checks, encoding(content))

	rep.Balance = parser.CheckBalance(content)
	bal := Outcome{Name: CheckBalance, Passed: rep.Balance.Balanced()}
	if !bal.Passed {
		bal.Detail = fmt.Sprintf("braces %d/%d, parens %d/%d",
			rep.Balance.OpenBraces, rep.Balance.CloseBraces, rep.Balance.OpenParens, rep.Balance.CloseParens)
	}
	rep.Checks = append(rep.Checks, bal)

	syn, err := parser.ParseContent(ctx, first.Language, content)
	switch {
	case err != nil:
		rep.Checks = append(rep.Checks, Outcome{Name: CheckGrammar, Detail: err.Error()})
	case !syn.Grammar:
		rep.Syntax = syn
		rep.Checks = append(rep.Checks, Outcome{Name: CheckGrammar, Skipped: true, Detail: "no grammar for " + first.Language})
	default:
		rep.Syntax = syn
		g := Outcome{Name: CheckGrammar, Passed: syn.SyntaxErrors == 0}
		if !g.Passed {
			g.Detail = fmt.Sprintf("%d syntax errors, first at line %d", syn.SyntaxErrors, syn.FirstErrorLine)
		}
		rep.Checks = append(rep.Checks, g)
	}

	v.log.Debugw("fixture verified", "language", rep.Language, "ok", rep.OK(), "run_id", v.runID)
	return rep, nil
}

// VerifyAll checks every fixture in the corpus and returns reports sorted
// by language, then path. Fixtures are addressed by file id so two files
// sharing a tag (sample.yml, sample.yaml) are both verified.
func (v *Verifier) VerifyAll(ctx context.Context) ([]*Report, error) {
	entries := v.corpus.List()
	reports := make([]*Report, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := v.Verify(gctx, e.FileID)
			if err != nil {
				return fmt.Errorf("verify %s: %w", e.Path, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Language != reports[j].Language {
			return reports[i].Language < reports[j].Language
		}
		return reports[i].Path < reports[j].Path
	})
	return reports, nil
}

func idempotent(a, b *corpus.Fixture) Outcome {
	o := Outcome{Name: CheckIdempotent}
	x, y := a.Bytes(), b.Bytes()
	o.Passed = bytes.Equal(x, y)
	if o.Passed && len(x) > 0 {
		// Returned copies must not alias the stored content.
		x[0] ^= 0xff
		o.Passed = bytes.Equal(b.Bytes(), y)
	}
	if !o.Passed {
		o.Detail = "content differs between reads"
	}
	return o
}

// tagMatches requires the tag to be a catalog grammar id and the file
// extension to name that grammar, either directly or as its sample file id.
func tagMatches(reg *grammar.Registry, f *corpus.Fixture) Outcome {
	o := Outcome{Name: CheckTag}
	ext := strings.TrimPrefix(path.Ext(f.Path), ".")
	if ext == "" {
		ext = f.Extension()
	}
	ext = strings.ToLower(ext)
	d, ok := reg.Get(f.Language)
	if !ok {
		o.Detail = fmt.Sprintf("tag %q is not a known grammar", f.Language)
		return o
	}
	if grammar.SampleFileID(d.ID) == ext {
		o.Passed = true
		return o
	}
	got, ok := reg.FromFileName(f.Path)
	switch {
	case !ok:
		o.Detail = fmt.Sprintf("extension %q names no grammar, tag is %q", ext, f.Language)
	case got.ID != d.ID:
		o.Detail = fmt.Sprintf("extension %q resolves to %q, tag is %q", ext, got.ID, f.Language)
	default:
		o.Passed = true
	}
	return o
}

func encoding(content []byte) Outcome {
	o := Outcome{Name: CheckEncoding, Passed: true}
	switch {
	case !utf8.Valid(content):
		o.Passed, o.Detail = false, "not valid UTF-8"
	case bytes.IndexByte(content, 0) >= 0:
		o.Passed, o.Detail = false, "contains NUL bytes"
	case len(content) == 0 || content[len(content)-1] != '\n':
		o.Passed, o.Detail = false, "missing trailing newline"
	}
	return o
}
