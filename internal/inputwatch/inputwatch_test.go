package inputwatch

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan Signal) Signal {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for signal")
		return 0
	}
}

// blockingReader serves a fixed byte sequence and then blocks forever,
// like a quiet terminal.
type blockingReader struct {
	data []byte
	pos  int
	done chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		<-r.done
		return 0, io.EOF
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestPauseResumeAbort(t *testing.T) {
	r := &blockingReader{data: []byte("ppq"), done: make(chan struct{})}
	defer close(r.done)

	w := StartWithReader(r)
	defer w.Stop()

	assert.Equal(t, SignalPause, recv(t, w.Signals()))
	assert.Equal(t, SignalResume, recv(t, w.Signals()))
	assert.Equal(t, SignalAbort, recv(t, w.Signals()))
}

func TestUppercaseKeysRecognized(t *testing.T) {
	r := &blockingReader{data: []byte("PQ"), done: make(chan struct{})}
	defer close(r.done)

	w := StartWithReader(r)
	defer w.Stop()

	assert.Equal(t, SignalPause, recv(t, w.Signals()))
	assert.Equal(t, SignalAbort, recv(t, w.Signals()))
}

func TestCtrlCAborts(t *testing.T) {
	r := &blockingReader{data: []byte{0x03}, done: make(chan struct{})}
	defer close(r.done)

	w := StartWithReader(r)
	defer w.Stop()

	assert.Equal(t, SignalAbort, recv(t, w.Signals()))
}

// Unrecognized keys produce nothing; the channel stays quiet.
func TestIgnoresOtherKeys(t *testing.T) {
	r := &blockingReader{data: []byte("xyz "), done: make(chan struct{})}
	defer close(r.done)

	w := StartWithReader(r)
	defer w.Stop()

	select {
	case s := <-w.Signals():
		t.Fatalf("unexpected signal %v", s)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStopWithoutRestoreIsSafe(t *testing.T) {
	r := &blockingReader{done: make(chan struct{})}
	defer close(r.done)

	w := StartWithReader(r)
	require.NotPanics(t, w.Stop)
}
