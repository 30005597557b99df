package corpus

// Fixture is an immutable sample text plus its declared language tag.
type Fixture struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	FileID   string `json:"file_id"`
	Path     string `json:"path"`

	content []byte
}

// Bytes returns a copy of the raw content.
func (f *Fixture) Bytes() []byte {
	b := make([]byte, len(f.content))
	copy(b, f.content)
	return b
}

// Text returns the content as a string.
func (f *Fixture) Text() string { return string(f.content) }

// Size is the content length in bytes.
func (f *Fixture) Size() int { return len(f.content) }

// Extension returns the file extension without the dot.
func (f *Fixture) Extension() string { return f.FileID }

func (f *Fixture) withKey(key string) *Fixture {
	cp := *f
	cp.Key = key
	return &cp
}
