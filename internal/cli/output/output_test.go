package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, ModeText, Mode("text"))
	assert.Equal(t, ModeMarkdown, Mode("markdown"))
	assert.Equal(t, ModeJSON, Mode("json"))
	assert.Equal(t, ModeAuto, Mode("auto"))
	assert.Equal(t, ModeAuto, Mode(""))
	assert.Equal(t, ModeAuto, Mode("xml"))
}

func TestRenderer_EffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())

	// A buffer is never a terminal.
	assert.Equal(t, ModeMarkdown, NewRenderer(&out, &errOut, ModeAuto).EffectiveMode())
}

func TestRenderer_Table(t *testing.T) {
	headers := []string{"Number", "Numeral"}
	rows := [][]any{{1, "I"}, {4, "IV"}}
	data := []map[string]any{{"number": 1, "numeral": "I"}, {"number": 4, "numeral": "IV"}}

	t.Run("markdown", func(t *testing.T) {
		var out bytes.Buffer
		r := NewRendererWithTTY(&out, &out, false, ModeMarkdown)
		require.NoError(t, r.Table(headers, rows, data))
		assert.Contains(t, out.String(), "| Number | Numeral |")
		assert.Contains(t, out.String(), "| 4 | IV |")
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		r := NewRendererWithTTY(&out, &out, true, ModeAuto)
		require.NoError(t, r.Table(headers, rows, data))
		assert.Contains(t, out.String(), "NUMERAL")
		assert.Contains(t, out.String(), "IV")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		r := NewRendererWithTTY(&out, &out, true, ModeJSON)
		require.NoError(t, r.Table(headers, rows, data))
		assert.JSONEq(t, `[{"number":1,"numeral":"I"},{"number":4,"numeral":"IV"}]`, out.String())
	})
}

func TestRenderer_Warn(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)
	r.Warn("skipped %d", 2)
	assert.Equal(t, "Warning: skipped 2\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestRenderer_StylesPlainWhenNotTTY(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeText)

	styles := r.Styles()
	assert.Same(t, styles, r.Styles())
	assert.Equal(t, "ok", styles.Success.Render("ok"))
	assert.Equal(t, "failed", styles.Error.Render("failed"))

	r.Printf("%s %d\n", styles.Bold.Render("count"), 3)
	assert.Equal(t, "count 3\n", out.String())
}
