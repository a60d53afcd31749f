// Package view is the client side of the hello endpoint: one fetch, then
// either the report or an error message.
package view

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bengobox/clock-service/internal/report"
)

// HelloPath is the relative path the view fetches.
const HelloPath = "/api/hello"

// ErrNotOK is reported when the backend answers outside 2xx.
var ErrNotOK = errors.New("Network response was not ok") //nolint:staticcheck // user-visible text

// ErrNotObject is reported when the body is valid JSON but not an object.
var ErrNotObject = errors.New("response is not a JSON object")

// State is where a view is in its single fetch.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Model is the view state. Success and Error are terminal.
type Model struct {
	State  State
	Report report.TimeReport
	// Raw is the response body re-indented with two spaces.
	Raw string
	Err string
}

// NewModel returns the initial Loading model.
func NewModel() Model {
	return Model{State: StateLoading}
}

// Doer is the subset of *http.Client the loader uses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader fetches the report from one backend.
type Loader struct {
	client  Doer
	baseURL string
}

// NewLoader constructs a Loader. baseURL is the backend origin, e.g.
// http://localhost:3000; an empty baseURL yields a relative request.
func NewLoader(client Doer, baseURL string) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Load performs exactly one GET and returns the terminal model. It never
// retries; a hung request blocks until ctx is done.
func (l *Loader) Load(ctx context.Context) Model {
	raw, rep, err := l.fetch(ctx)
	if err != nil {
		return Model{State: StateError, Err: err.Error()}
	}
	return Model{State: StateSuccess, Report: rep, Raw: raw}
}

func (l *Loader) fetch(ctx context.Context) (string, report.TimeReport, error) {
	var rep report.TimeReport

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+HelloPath, nil)
	if err != nil {
		return "", rep, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := l.client.Do(req)
	if err != nil {
		return "", rep, err
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", rep, ErrNotOK
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", rep, err
	}
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", rep, err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return "", rep, ErrNotObject
	}
	if err := json.Unmarshal(raw, &rep); err != nil {
		return "", rep, err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return "", rep, err
	}
	return indented.String(), rep, nil
}
