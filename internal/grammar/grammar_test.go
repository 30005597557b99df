package grammar_test

import (
	"testing"

	"github.com/KaramelBytes/sampledeck/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_IDAliasExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"java", "java"},
		{"JAVA", "java"},
		{"golang", "go"},
		{"py", "python"},
		{".pyw", "python"},
		{"yml", "yaml"},
		{"proto", "protobuf"},
		{"text", "plaintext"},
		{"txt", "plaintext"},
	}
	for _, c := range cases {
		d, ok := grammar.Lookup(c.in)
		require.Truef(t, ok, "lookup %q", c.in)
		assert.Equalf(t, c.want, d.ID, "lookup %q", c.in)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := grammar.Lookup("cobol")
	assert.False(t, ok)
	_, ok = grammar.Lookup("   ")
	assert.False(t, ok)
}

func TestFromFileName(t *testing.T) {
	d, ok := grammar.FromFileName("/src/app/Main.java")
	require.True(t, ok)
	assert.Equal(t, "java", d.ID)

	d, ok = grammar.FromFileName("config.YML")
	require.True(t, ok)
	assert.Equal(t, "yaml", d.ID)

	_, ok = grammar.FromFileName("Makefile")
	assert.False(t, ok)
	_, ok = grammar.FromFileName("trailing.")
	assert.False(t, ok)
}

func TestSampleFileMapping(t *testing.T) {
	assert.Equal(t, "sample.java", grammar.SampleFileName("java"))
	assert.Equal(t, "sample.proto", grammar.SampleFileName("protobuf"))
	assert.Equal(t, "sample.text", grammar.SampleFileName("plaintext"))
	assert.Equal(t, "protobuf", grammar.GrammarIDFromFileName("sample.proto"))
	assert.Equal(t, "messagepack", grammar.GrammarIDFromFileName("msgpack"))
	assert.Equal(t, "java", grammar.GrammarIDFromFileName("sample.java"))
}

func TestCategories(t *testing.T) {
	r := grammar.Default()
	cats := r.Categories()
	require.NotEmpty(t, cats)
	assert.IsIncreasing(t, cats)
	assert.Contains(t, cats, "programming_language")

	langs := r.ByCategory("programming_language")
	ids := make([]string, 0, len(langs))
	for _, d := range langs {
		ids = append(ids, d.ID)
	}
	assert.Contains(t, ids, "java")
	assert.NotContains(t, ids, "json")
}

func TestDisplayCategory(t *testing.T) {
	assert.Equal(t, "Data Format", grammar.DisplayCategory("data_format"))
	assert.Equal(t, "Text", grammar.DisplayCategory("text"))
}

func TestParse_Errors(t *testing.T) {
	_, err := grammar.Parse([]byte("java: [unterminated"))
	assert.Error(t, err)

	r, err := grammar.Parse([]byte("Foo:\n  name: Foo\n"))
	require.NoError(t, err)
	d, ok := r.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, "other", d.Category)
}

func TestForSampleFile(t *testing.T) {
	r := grammar.Default()
	for in, want := range map[string]string{
		"sample.proto":  "protobuf",
		"matlabmat":     "matlab",
		"py":            "python",
		"sample.Python": "python",
		"sample.text":   "plaintext",
		"sample.java":   "java",
		"sample.yml":    "yaml",
	} {
		d, ok := r.ForSampleFile(in)
		require.Truef(t, ok, "resolve %q", in)
		assert.Equalf(t, want, d.ID, "resolve %q", in)
	}
	_, ok := r.ForSampleFile("sample.csv")
	assert.False(t, ok)

	d, ok := r.Get("JAVA")
	require.True(t, ok)
	assert.Equal(t, "java", d.ID)
	_, ok = r.Get("py")
	assert.False(t, ok, "Get matches ids only")
}
