package resources

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.ParseFS(FS, "templates/*.gohtml")
	require.NoError(t, err)
	return tmpl
}

func TestNotices_RenderEscapedToasts(t *testing.T) {
	var buf bytes.Buffer
	err := parse(t).ExecuteTemplate(&buf, "notices", []notify.Notice{
		{Level: notify.Error, Message: "Could not load folios: <b>down</b>"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `<div class="notice notice-error" role="status">`)
	assert.Contains(t, buf.String(), "&lt;b&gt;down&lt;/b&gt;")
}

func TestLayout_SwapsErrorResponses(t *testing.T) {
	var buf bytes.Buffer
	err := parse(t).ExecuteTemplate(&buf, "layout_head", map[string]any{"SiteName": "HotelHub"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `name="htmx-config"`)
	assert.Contains(t, out, `{"code":"[45]..","swap":true,"error":true}`)
	assert.Contains(t, out, "htmx.min.js")
	assert.Contains(t, out, `<div id="notices">`)
}
