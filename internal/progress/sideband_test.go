package progress_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/progress"
)

func TestWriter(t *testing.T) {
	t.Run("parses carriage-return updates", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, err := fmt.Fprint(w, "Receiving objects:  25% (1/4)\rReceiving objects:  50% (2/4)\r")
		require.NoError(t, err)
		_, err = fmt.Fprint(w, "Receiving objects: 100% (4/4), done.\n")
		require.NoError(t, err)

		require.Equal(t, []int{25, 50, 100}, rec.values())
	})

	t.Run("handles lines split across writes", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, _ = w.Write([]byte("Compressing objects:  3"))
		require.Empty(t, rec.values())
		_, _ = w.Write([]byte("3% (1/3)\n"))
		require.Equal(t, []int{33}, rec.values())
	})

	t.Run("ignores text without counters", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		n, err := w.Write([]byte("Enumerating objects: 12, done.\nremote: hello\n"))
		require.NoError(t, err)
		require.Equal(t, 45, n)
		require.Empty(t, rec.values())
	})

	t.Run("flush parses the trailing line", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, _ = w.Write([]byte("Receiving objects:  10% (1/10)"))
		require.Empty(t, rec.values())
		w.Flush()
		require.Equal(t, []int{10}, rec.values())
	})

	t.Run("counting phases do not saturate the reporter", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, _ = fmt.Fprint(w, "Enumerating objects: 4, done.\nCounting objects: 100% (4/4), done.\n")
		_, _ = fmt.Fprint(w, "Compressing objects:  50% (1/2)\rCompressing objects: 100% (2/2), done.\n")
		require.Equal(t, []int{50, 100}, rec.values())
	})

	t.Run("remote prefix is accepted", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, _ = fmt.Fprint(w, "remote: Compressing objects:  40% (2/5)\n")
		require.Equal(t, []int{40}, rec.values())
	})

	t.Run("later transfer phases restarting at zero stay monotonic", func(t *testing.T) {
		rec := &recorder{}
		w := progress.NewWriter(progress.NewReporter(progress.PhaseDownloading, rec))

		_, _ = fmt.Fprint(w, "Compressing objects: 100% (2/2)\nReceiving objects:  50% (1/2)\nReceiving objects: 100% (2/2)\n")
		require.Equal(t, []int{100}, rec.values())
	})
}
