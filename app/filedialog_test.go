package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/x/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct{ bytes.Buffer }

func (nopWriteCloser) Close() error { return nil }

func TestWriteTapeReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	res := writeTape(f, []byte("1+1 = 2\n"))
	require.NoError(t, res.Err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, 8, res.Bytes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1+1 = 2\n", string(data))
}

func TestWriteTapeWithoutPath(t *testing.T) {
	var w nopWriteCloser
	res := writeTape(&w, []byte("x"))
	require.NoError(t, res.Err)
	assert.Equal(t, "", res.Path)
	assert.Equal(t, "x", w.String())
}

func TestReadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 + 2 ="), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)

	res := readScript(f)
	require.NoError(t, res.Err)
	assert.Equal(t, path, res.Name)
	assert.Equal(t, "2 + 2 =", string(res.Data))
}

func TestReadScriptTooLarge(t *testing.T) {
	big := io.NopCloser(strings.NewReader(strings.Repeat("1 ", maxScriptSize)))
	res := readScript(big)
	assert.Error(t, res.Err)
	assert.Nil(t, res.Data)
}

func TestDialogCanceled(t *testing.T) {
	assert.True(t, SaveResult{Err: explorer.ErrUserDecline}.Canceled())
	assert.True(t, ScriptResult{Err: explorer.ErrUserDecline}.Canceled())
	assert.False(t, SaveResult{Err: errors.New("disk full")}.Canceled())
	assert.False(t, ScriptResult{}.Canceled())
}
