package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: basics
version: "1.0"
cases:
  - id: c1
    input: zwei plus drei
    expect: 5
  - id: c2
    description: division
    input: zehn durch null
    error: division_by_zero
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "basics", s.Name)
		assert.Equal(t, DefaultTolerance, s.Tolerance)
		require.Len(t, s.Cases, 2)
		require.NotNil(t, s.Cases[0].Expect)
		assert.Equal(t, 5.0, *s.Cases[0].Expect)
		assert.Equal(t, ErrorDivisionByZero, s.Cases[1].Error)
	})

	t.Run("expect zero is an expectation", func(t *testing.T) {
		s, err := Parse([]byte("name: z\ncases:\n  - id: c1\n    input: \"null\"\n    expect: 0\n"))
		require.NoError(t, err)
		require.NotNil(t, s.Cases[0].Expect)
		assert.Zero(t, *s.Cases[0].Expect)
	})

	t.Run("explicit tolerance", func(t *testing.T) {
		s, err := Parse([]byte("name: t\ntolerance: 0.5\ncases:\n  - id: c1\n    input: eins\n    expect: 1\n"))
		require.NoError(t, err)
		assert.Equal(t, 0.5, s.Tolerance)
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no cases", "name: empty\n", "no cases"},
		{"negative tolerance", "name: t\ntolerance: -1\ncases:\n  - id: c1\n    input: eins\n    expect: 1\n", "tolerance"},
		{"missing id", "name: t\ncases:\n  - input: eins\n    expect: 1\n", "no id"},
		{"duplicate id", "name: t\ncases:\n  - id: c1\n    input: eins\n    expect: 1\n  - id: c1\n    input: zwei\n    expect: 2\n", `duplicate case id "c1"`},
		{"both", "name: t\ncases:\n  - id: c1\n    input: eins\n    expect: 1\n    error: syntax\n", "both"},
		{"neither", "name: t\ncases:\n  - id: c1\n    input: eins\n", "neither"},
		{"unknown kind", "name: t\ncases:\n  - id: c1\n    input: eins\n    error: overflow\n", "invalid error kind"},
		{"malformed yaml", "name: [\n", "parse suite YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\ncases:\n  - id: c1\n    input: elf\n    expect: 11\n"), 0o644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read suite file")
}
