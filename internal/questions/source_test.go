package questions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBank = `[
  {"id": 1, "question": "2^{10} = ?", "options": [
    {"text": "1024", "correct": true},
    {"text": "1000", "correct": false}
  ], "explanation": "Powers of two.", "quiz": "kviz1"},
  {"id": "two", "question": "Pick primes", "options": [
    {"text": "2", "correct": true},
    {"text": "3", "correct": true},
    {"text": "4"}
  ]}
]`

func TestParse(t *testing.T) {
	b, err := Parse([]byte(sampleBank))
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())

	q, ok := b.Get("1")
	require.True(t, ok)
	assert.Equal(t, "kviz1", q.Quiz)
	assert.Equal(t, "Powers of two.", q.Explanation)
	assert.False(t, q.IsMultiCorrect())

	q, ok = b.Get("two")
	require.True(t, ok)
	assert.True(t, q.IsMultiCorrect())
	assert.False(t, q.Options[2].Correct)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `[{"id": 1,`},
		{"not an array", `{"id": 1}`},
		{"missing options", `[{"id": 1, "question": "q"}]`},
		{"missing id", `[{"question": "q", "options": []}]`},
		{"bad option type", `[{"id": 1, "question": "q", "options": ["a"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestParse_Duplicate(t *testing.T) {
	_, err := Parse([]byte(`[{"id": 1, "question": "a", "options": []}, {"id": "1", "question": "b", "options": []}]`))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_NumericIDForms(t *testing.T) {
	_, err := Parse([]byte(`[{"id": 1, "question": "a", "options": []}, {"id": 1.0, "question": "b", "options": []}]`))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = Parse([]byte(`[{"id": 1e0, "question": "a", "options": []}, {"id": "1", "question": "b", "options": []}]`))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_NonStringExplanation(t *testing.T) {
	b, err := Parse([]byte(`[
  {"id": 1, "question": "a", "options": [], "explanation": 42},
  {"id": 2, "question": "b", "options": [], "explanation": null},
  {"id": 3, "question": "c", "options": [], "explanation": {"text": "x"}},
  {"id": 4, "question": "d", "options": [], "explanation": "kept"}
]`))
	require.NoError(t, err)

	for _, id := range []ID{"1", "2", "3"} {
		q, ok := b.Get(id)
		require.True(t, ok)
		assert.Empty(t, q.Explanation, "question %s", id)
	}
	q, _ := b.Get("4")
	assert.Equal(t, "kept", q.Explanation)
}

func TestParse_EmptyArray(t *testing.T) {
	b, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBank), 0o644))

	b, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.Load(context.Background())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBank))
	}))
	defer srv.Close()

	b, err := HTTPSource{URL: srv.URL + "/questions.json"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	_, err = HTTPSource{URL: srv.URL + "/missing.json"}.Load(context.Background())
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := HTTPSource{URL: srv.URL}.Load(context.Background())
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
