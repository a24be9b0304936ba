package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherRunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uni.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0644))

	runs := make(chan string, 16)
	w := New(zap.NewNop(), path, 50*time.Millisecond, func(p string) error {
		runs <- p
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(ctx) })

	// Initial run fires before any file event.
	select {
	case p := <-runs:
		assert.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("initial run never fired")
	}

	require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0644))

	select {
	case p := <-runs:
		assert.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("change run never fired")
	}

	cancel()
	require.NoError(t, g.Wait())
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uni.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0644))

	runs := make(chan struct{}, 64)
	w := New(zap.NewNop(), path, 150*time.Millisecond, func(string) error {
		runs <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	<-runs // initial run

	// A burst of saves must collapse into one debounced run.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced run never fired")
	}

	select {
	case <-runs:
		t.Fatal("burst produced more than one run")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uni.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0644))

	runs := make(chan struct{}, 16)
	w := New(zap.NewNop(), path, 50*time.Millisecond, func(string) error {
		runs <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	<-runs // initial run

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case <-runs:
		t.Fatal("unrelated file triggered a run")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New(zap.NewNop(), "/nonexistent-dir/uni.yaml", 0, func(string) error { return nil })
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
