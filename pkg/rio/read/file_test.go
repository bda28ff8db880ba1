package read

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestOpenFile_ExistingPath(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "Hello\n42\n")

	res := OpenFile(path)
	require.True(t, res.IsSuccess(), "err: %v", res.Err())
	defer res.Result().Close()

	line := res.Result().ReadString()
	require.True(t, line.IsSuccess(), "err: %v", line.Err())
	assert.Equal(t, "Hello", line.Result().Value)
}

func TestOpenFile_MissingPathIsFailure(t *testing.T) {
	t.Parallel()
	res := OpenFile(filepath.Join(t.TempDir(), "no-such-file.txt"))

	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), os.ErrNotExist)
}

func TestOpenFile_NeverPanics(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		OpenFile("")
		OpenFile(string([]byte{0}))
	})
}

func TestOpenFile_ReadChainWithScopedClose(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "Hello\n42\n")

	res := OpenFile(path)
	require.True(t, res.IsSuccess())
	r := res.Result()
	defer r.Close()

	first := r.ReadString()
	require.True(t, first.IsSuccess())
	assert.Equal(t, "Hello", first.Result().Value)

	second := first.Result().Next.ReadInt()
	require.True(t, second.IsSuccess(), "err: %v", second.Err())
	assert.Equal(t, 42, second.Result().Value)
}
