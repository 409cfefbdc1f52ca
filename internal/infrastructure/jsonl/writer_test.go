package jsonl_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalsahee/alertgen/internal/infrastructure/jsonl"
)

type record struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestWriteFile(t *testing.T) {
	t.Run("writes one parseable JSON object per line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jsonl")
		records := []record{{Name: "a", Query: "x"}, {Name: "b", Query: "y"}, {Name: "c", Query: "z"}}

		n, err := jsonl.WriteFile(path, records)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		lines := readLines(t, path)
		require.Len(t, lines, 3)
		for _, line := range lines {
			var got record
			require.NoError(t, json.Unmarshal([]byte(line), &got))
		}
	})

	t.Run("zero records yields an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.jsonl")

		n, err := jsonl.WriteFile(path, []record{})
		require.NoError(t, err)
		assert.Zero(t, n)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "out.jsonl")

		_, err := jsonl.WriteFile(path, []record{{Name: "a"}})
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jsonl")

		_, err := jsonl.WriteFile(path, []record{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}})
		require.NoError(t, err)

		_, err = jsonl.WriteFile(path, []record{{Name: "f"}, {Name: "g"}})
		require.NoError(t, err)

		lines := readLines(t, path)
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"f"`)
	})

	t.Run("does not escape HTML-significant characters", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jsonl")

		_, err := jsonl.WriteFile(path, []record{{Name: "ATT&CK Framework", Query: "a=1&b=2"}})
		require.NoError(t, err)

		lines := readLines(t, path)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "ATT&CK Framework")
		assert.NotContains(t, lines[0], `\u0026`)
	})

	t.Run("fails when the directory path is blocked by a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		_, err := jsonl.WriteFile(filepath.Join(blocker, "sub", "out.jsonl"), []record{{Name: "a"}})
		assert.Error(t, err)
	})
}
