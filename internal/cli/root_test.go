package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/roman/internal/cli/commands"
	"github.com/leapstack-labs/roman/internal/cli/config"
	"github.com/leapstack-labs/roman/pkg/numeral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in a fresh working directory and returns stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	err = cmd.Execute()
	return out.String(), err
}

func TestRootCommandMetadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "roman", cmd.Name())
	for _, flag := range []string{"config", "verbose", "output", "store", "store-path", "store-dsn", "collection"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}
	for _, flag := range []string{"strict", "fold-case"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"version", "convert", "table", "names", "serve", "repl", "doctor", "init", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	out, err := execute(t, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRoot_Convert(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "1994")
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV\n", out)

	out, err = execute(t, dir, "convert", "MCMXCIV")
	require.NoError(t, err)
	assert.Equal(t, "1994\n", out)

	_, err = execute(t, dir, "--strict", "IIII")
	assert.ErrorIs(t, err, numeral.ErrMalformed)

	_, err = execute(t, dir, "0")
	var rangeErr *numeral.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 0, rangeErr.Value)
}

func TestRoot_ConvertJSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "-o", "json", "XIV")
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":"XIV","kind":"numeral","output":"14"}`, out)
}

func TestRoot_ConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roman.yaml"), []byte("convert:\n  strict: true\n  fold_case: true\n"), 0600))

	// Config enables case folding.
	out, err := execute(t, dir, "xiv")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	// Config enables strict decoding; the flag turns it back off.
	_, err = execute(t, dir, "IIII")
	assert.ErrorIs(t, err, numeral.ErrMalformed)

	out, err = execute(t, dir, "--strict=false", "IIII")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestRoot_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roman.yaml"), []byte("output: text\n"), 0600))
	t.Setenv("ROMAN_OUTPUT", "json")

	out, err := execute(t, dir, "IX")
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":"IX","kind":"numeral","output":"9"}`, out)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--store", "redis", "names", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestRoot_NamesLifecycle(t *testing.T) {
	dir := t.TempDir()
	storeArgs := []string{"--store", "sqlite", "--store-path", filepath.Join(dir, "data", "names.db")}
	with := func(args ...string) []string {
		return append(append([]string{}, storeArgs...), args...)
	}

	out, err := execute(t, dir, with("names", "add", "Ada", "36")...)
	require.NoError(t, err)
	assert.Equal(t, "Added Ada to database\n", out)

	_, err = execute(t, dir, with("names", "add", "Grace", "85")...)
	require.NoError(t, err)

	out, err = execute(t, dir, with("-o", "json", "names", "get", "Ada")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","age":36}`, out)

	out, err = execute(t, dir, with("-o", "json", "names", "list")...)
	require.NoError(t, err)
	var persons []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	require.Len(t, persons, 2)
	assert.Equal(t, "Ada", persons[0]["name"])
	assert.Equal(t, "Grace", persons[1]["name"])

	_, err = execute(t, dir, with("names", "get", "Linus")...)
	assert.ErrorIs(t, err, commands.ErrNotFound)
}

func TestRoot_NamesSeed(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "persons.yaml")
	require.NoError(t, os.WriteFile(seed, []byte("persons:\n  - name: Ada\n    age: 36\n  - name: Alan\n    age: 41\n"), 0600))
	storeArgs := []string{"--store", "sqlite", "--store-path", "names.db", "--collection", "people"}

	_, err := execute(t, dir, append(storeArgs, "names", "seed", seed)...)
	require.NoError(t, err)

	out, err := execute(t, dir, append(storeArgs, "-o", "json", "names", "list")...)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Ada","age":36},{"name":"Alan","age":41}]`, out)

	// A different collection does not see the seeded records.
	out, err = execute(t, dir, "--store", "sqlite", "--store-path", "names.db", "-o", "json", "names", "list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestRoot_DoctorSQLite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roman.yaml"), []byte("store:\n  driver: sqlite\n  path: names.db\n"), 0600))

	_, err := execute(t, dir, "names", "add", "Ada", "36")
	require.NoError(t, err)

	out, err := execute(t, dir, "-o", "json", "doctor")
	require.NoError(t, err)

	var report commands.DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "sqlite", report.Summary.Driver)
	assert.Equal(t, 1, report.Summary.Records)
	assert.Equal(t, int64(1), report.Summary.SchemaVersion)
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Recommendations)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "roman")

	_, err = execute(t, t.TempDir(), "completion", "tcsh")
	assert.Error(t, err)
}
