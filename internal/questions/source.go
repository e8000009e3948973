package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// maxRemoteBankSize caps the body read from a remote bank.
const maxRemoteBankSize = 16 << 20

// Source loads a bank from somewhere.
type Source interface {
	Load(ctx context.Context) (*Bank, error)
	String() string
}

// Parse validates raw against the bank schema and decodes it.
func Parse(raw []byte) (*Bank, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var list []Question
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return NewBank(list)
}

// FileSource reads a bank from a local JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Load(ctx context.Context) (*Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	return b, nil
}

// HTTPSource fetches a bank with a single GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) String() string { return s.URL }

func (s HTTPSource) Load(ctx context.Context) (*Bank, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: s.URL, Err: fmt.Errorf("%w (%d)", ErrBadStatus, resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBankSize))
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: fmt.Errorf("read body: %w", err)}
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	return b, nil
}
