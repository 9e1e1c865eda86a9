package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSession() (*replSession, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &replSession{out: &out, errOut: &errOut}, &out, &errOut
}

func TestREPL_Convert(t *testing.T) {
	s, out, errOut := newTestSession()

	assert.False(t, s.eval("1224"))
	assert.False(t, s.eval("  MMMCMXCIX  "))
	assert.False(t, s.eval(""))
	assert.Equal(t, "MCCXXIV\n3999\n", out.String())
	assert.Empty(t, errOut.String())

	assert.False(t, s.eval("4000"))
	assert.Contains(t, errOut.String(), "Error: integer must be >0 and <4000, got 4000")
}

func TestREPL_Toggles(t *testing.T) {
	s, out, errOut := newTestSession()

	s.eval("IIII")
	s.eval(".strict")
	s.eval("IIII")
	assert.Contains(t, errOut.String(), "well-formed")

	s.eval(".strict off")
	s.eval(".fold on")
	s.eval("xiv")
	assert.Equal(t, "4\nstrict on\nstrict off\nfold-case on\n14\n", out.String())

	errOut.Reset()
	s.eval(".fold maybe")
	assert.True(t, s.foldCase)
	assert.Contains(t, errOut.String(), "usage: .fold [on|off]")
}

func TestREPL_Table(t *testing.T) {
	s, out, errOut := newTestSession()

	s.eval(".table 1 3")
	assert.Equal(t, "     1  I\n     2  II\n     3  III\n", out.String())

	s.eval(".table 1")
	s.eval(".table 0 5")
	assert.Contains(t, errOut.String(), "usage: .table <start> <end>")
	assert.Contains(t, errOut.String(), "got 0")
}

func TestREPL_DotCommands(t *testing.T) {
	s, out, errOut := newTestSession()

	assert.False(t, s.eval(".help"))
	assert.Contains(t, out.String(), ".table <start> <end>")

	assert.False(t, s.eval(".nope"))
	assert.Contains(t, errOut.String(), "unknown command: .nope")

	assert.True(t, s.eval(".quit"))
	assert.True(t, s.eval(".EXIT"))
}
