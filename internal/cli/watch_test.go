package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for concurrent use; the watch
// goroutine writes while the test inspects.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [file]", watchCmd.Use)
}

func TestWatchCmd_MissingFile(t *testing.T) {
	isolatePrefs(t)

	err := runWatch(watchCmd, []string{filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot watch")
}

func TestWatchCmd_ScoresAndExitsOnRemoval(t *testing.T) {
	isolatePrefs(t)

	path := writeTempText(t, pangram)

	buf := new(syncBuffer)
	watchCmd.SetOut(buf)
	defer watchCmd.SetOut(nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runWatch(watchCmd, []string{path})
	}()

	// Give the watcher time to print the initial scores and settle.
	time.Sleep(500 * time.Millisecond)
	assert.Contains(t, buf.String(), "Readability Scores")

	require.NoError(t, os.Remove(path))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not exit after file removal")
	}

	assert.Contains(t, buf.String(), "removed, exiting")
}

func TestWatchCmd_RescoresOnWrite(t *testing.T) {
	isolatePrefs(t)

	path := writeTempText(t, "Short one.")

	buf := new(syncBuffer)
	watchCmd.SetOut(buf)
	defer watchCmd.SetOut(nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runWatch(watchCmd, []string{path})
	}()

	time.Sleep(500 * time.Millisecond)
	first := buf.Len()

	require.NoError(t, os.WriteFile(path, []byte(pangram), 0600))

	// Wait out the debounce and the rescore.
	time.Sleep(1 * time.Second)
	assert.Greater(t, buf.Len(), first, "expected a second score table after the write")

	require.NoError(t, os.Remove(path))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not exit after file removal")
	}
}
