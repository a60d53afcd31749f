package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengobox/clock-service/internal/cli"
)

func backend(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Text(t *testing.T) {
	url := backend(t, http.StatusOK, `{"timeIST":"X","timeUTC":"Y"}`)

	out, err := execute(t, "--url", url)

	require.NoError(t, err)
	assert.Contains(t, out, "IST Time\n  X\n")
	assert.Contains(t, out, "UTC Time\n  Y\n")
}

func TestRoot_HTML(t *testing.T) {
	url := backend(t, http.StatusOK, `{"timeIST":"X","timeUTC":"Y"}`)

	out, err := execute(t, "--url", url, "--format", "html")

	require.NoError(t, err)
	assert.Contains(t, out, `data-state="success"`)
	assert.Contains(t, out, "<h2>IST Time</h2><p>X</p>")
}

func TestRoot_ErrorState(t *testing.T) {
	url := backend(t, http.StatusServiceUnavailable, `{}`)

	out, err := execute(t, "--url", url, "--timeout", "5s")

	require.ErrorIs(t, err, cli.ErrViewFailed)
	assert.Equal(t, "Error: Network response was not ok\n", out)
}

func TestRoot_BadFormat(t *testing.T) {
	_, err := execute(t, "--format", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}
