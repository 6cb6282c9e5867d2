package host

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/colsplit/internal/columns"
)

func TestJSONEmitter_WritesOneMessagePerLine(t *testing.T) {
	var buf bytes.Buffer
	e := NewJSONEmitter(&buf)

	require.NoError(t, e.SetFrameHeight(DefaultFrameHeight))
	require.NoError(t, e.SetComponentValue(NewResizeEvent([]float64{70, 30})))

	scanner := bufio.NewScanner(&buf)
	var msgs []Message
	for scanner.Scan() {
		var m Message
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		msgs = append(msgs, m)
	}

	require.Len(t, msgs, 2)
	assert.Equal(t, MessageFrameHeight, msgs[0].Type)
	assert.Equal(t, 60, msgs[0].Height)
	assert.Equal(t, MessageComponentValue, msgs[1].Type)
	require.NotNil(t, msgs[1].Value)
	assert.Equal(t, []float64{70, 30}, msgs[1].Value.Sizes)
	assert.Equal(t, ActionResize, msgs[1].Value.Action)
}

func TestJSONEmitter_RejectsBadFrameHeight(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewJSONEmitter(&buf).SetFrameHeight(0))
	assert.Zero(t, buf.Len())
}

func TestNewResizeEvent_CopiesSizes(t *testing.T) {
	sizes := []float64{1, 2}
	ev := NewResizeEvent(sizes)
	sizes[0] = 5
	assert.Equal(t, []float64{1, 2}, ev.Sizes)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	_, ok := r.Last()
	assert.False(t, ok)

	require.NoError(t, r.SetComponentValue(NewResizeEvent([]float64{1})))
	require.NoError(t, r.SetComponentValue(NewResizeEvent([]float64{2})))
	require.NoError(t, r.SetFrameHeight(60))

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, []float64{2}, last.Sizes)
	assert.Equal(t, []int{60}, r.FrameHeights)
}

func TestDebouncer_RunsOnlyLastCall(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls, last atomic.Int32

	for i := int32(1); i <= 5; i++ {
		v := i
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[1, 1]\n"), 0644))

	got := make(chan *columns.Config, 4)
	w := NewWatcher(path, 10*time.Millisecond, func(cfg *columns.Config) { got <- cfg }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[1, 2, 1]\n"), 0644))

	select {
	case cfg := <-got:
		assert.Equal(t, []float64{1, 2, 1}, cfg.Widths)
	case <-time.After(2 * time.Second):
		t.Fatal("layout change was not delivered")
	}

	cancel()
	assert.NoError(t, <-done)
}
