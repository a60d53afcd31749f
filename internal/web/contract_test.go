package web_test

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengobox/clock-service/internal/view"
	"github.com/bengobox/clock-service/internal/web"
)

// The browser page and internal/view render the same markup and messages.

func TestIndex_LoadingMarkupMatchesView(t *testing.T) {
	index, err := fs.ReadFile(web.FS(), "index.html")
	require.NoError(t, err)

	var loading bytes.Buffer
	require.NoError(t, view.Render(&loading, view.NewModel()))

	assert.Contains(t, string(index), strings.TrimSpace(loading.String()))
}

func TestAppScript_SharesViewContract(t *testing.T) {
	script, err := fs.ReadFile(web.FS(), "assets/app.js")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "fetch path", token: "fetch('" + view.HelloPath + "')"},
		{name: "not ok message", token: "'" + view.ErrNotOK.Error() + "'"},
		{name: "non object message", token: "'" + view.ErrNotObject.Error() + "'"},
		{name: "non object guard", token: "Array.isArray(data)"},
		{name: "ist heading", token: "'IST Time', data.timeIST"},
		{name: "utc heading", token: "'UTC Time', data.timeUTC"},
		{name: "empty field placeholder", token: "value || 'N/A'"},
		{name: "error prefix", token: "'Error: ' + message"},
		{name: "error class", token: "{ class: 'error' }"},
		{name: "data class", token: "{ class: 'data' }"},
		{name: "raw dump", token: "{ class: 'raw' }, JSON.stringify(data, null, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, string(script), tt.token)
		})
	}
}

func TestAppScript_StatesMatchViewStates(t *testing.T) {
	script, err := fs.ReadFile(web.FS(), "assets/app.js")
	require.NoError(t, err)

	for _, s := range []view.State{view.StateSuccess, view.StateError} {
		assert.Contains(t, string(script), "'data-state', '"+s.String()+"'")
	}
}
