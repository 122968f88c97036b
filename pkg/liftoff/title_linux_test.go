//go:build linux && unit

package liftoff

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func readComm(t *testing.T) string {
	t.Helper()

	b, err := os.ReadFile(procComm)
	require.NoError(t, err)

	return strings.TrimSuffix(string(b), "\n")
}

// onWorkerThread runs fn on a locked OS thread that is not the thread-group
// leader.
func onWorkerThread(t *testing.T, fn func()) {
	t.Helper()

	pid := os.Getpid()
	done := make(chan struct{})

	go func() {
		defer close(done)

		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if unix.Gettid() != pid {
			fn()
			return
		}

		// this thread is the leader and stays locked, so the next locked
		// goroutine lands on another one.
		inner := make(chan struct{})
		go func() {
			defer close(inner)

			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			assert.NotEqual(t, pid, unix.Gettid())
			fn()
		}()
		<-inner
	}()

	<-done
}

// Not parallel: the process name is global.
func TestSetProcessTitle(t *testing.T) {
	original := readComm(t)
	t.Cleanup(func() { _ = setProcessTitle(original) })

	t.Run("should rename the process from a worker thread", func(t *testing.T) {
		var err error
		onWorkerThread(t, func() { err = setProcessTitle("liftoff-title") })
		require.NoError(t, err)

		assert.Equal(t, "liftoff-title", readComm(t))
	})

	t.Run("should truncate long titles", func(t *testing.T) {
		require.NoError(t, setProcessTitle("liftoff-test-demo-title"))

		assert.Equal(t, "liftoff-test-de", readComm(t))
	})

	t.Run("should be the default titler of Launch", func(t *testing.T) {
		l, err := New(Config{Name: "demo", ProcessTitle: "liftoff-launch"})
		require.NoError(t, err)

		onWorkerThread(t, func() {
			err = l.Launch(Options{Cwd: t.TempDir()}, func(*Liftoff, *Environment) error { return nil })
		})
		require.NoError(t, err)

		assert.Equal(t, "liftoff-launch", readComm(t))
	})
}
