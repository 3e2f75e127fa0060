package progress_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/progress"
)

type recorder struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recorder) Emit(e progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := make([]int, 0, len(r.events))
	for _, e := range r.events {
		values = append(values, e.Value)
	}
	return values
}

func requireStrictlyIncreasing(t *testing.T, values []int) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		require.Greater(t, values[i], values[i-1], "sequence %v is not strictly increasing at %d", values, i)
	}
}

func TestReporter(t *testing.T) {
	t.Run("throttles to percentage changes", func(t *testing.T) {
		rec := &recorder{}
		r := progress.NewReporter(progress.PhaseDownloading, rec)

		for i := int64(0); i <= 1000; i++ {
			r.Tick(i, 1000)
		}

		values := rec.values()
		require.Len(t, values, 100)
		require.Equal(t, 1, values[0])
		require.Equal(t, 100, values[len(values)-1])
		requireStrictlyIncreasing(t, values)
	})

	t.Run("zero total is skipped", func(t *testing.T) {
		rec := &recorder{}
		r := progress.NewReporter(progress.PhaseDownloading, rec)

		r.Tick(5, 0)
		require.Empty(t, rec.values())
		require.Equal(t, 0, r.Last())
	})

	t.Run("regressing ticks emit nothing", func(t *testing.T) {
		rec := &recorder{}
		r := progress.NewReporter(progress.PhaseDownloading, rec)

		r.Tick(50, 100)
		r.Tick(10, 100)
		r.Tick(50, 100)
		require.Equal(t, []int{50}, rec.values())
	})

	t.Run("complete emits 100 once", func(t *testing.T) {
		rec := &recorder{}
		r := progress.NewReporter(progress.PhaseDownloading, rec)

		r.Tick(3, 4)
		r.Complete()
		r.Complete()
		require.Equal(t, []int{75, 100}, rec.values())

		rec2 := &recorder{}
		r2 := progress.NewReporter(progress.PhaseDownloading, rec2)
		r2.Tick(4, 4)
		r2.Complete()
		require.Equal(t, []int{100}, rec2.values())
	})

	t.Run("finish always emits the terminal phase", func(t *testing.T) {
		rec := &recorder{}
		r := progress.NewReporter(progress.PhasePushing, rec)

		r.Tick(10, 10)
		r.Finish(progress.PhaseCompleted)

		require.Equal(t, []progress.Event{
			{Phase: progress.PhasePushing, Value: 100},
			{Phase: progress.PhaseCompleted, Value: 100},
		}, rec.events)
	})

	t.Run("fresh reporter per operation", func(t *testing.T) {
		rec := &recorder{}
		first := progress.NewReporter(progress.PhaseDownloading, rec)
		first.Tick(1, 1)

		second := progress.NewReporter(progress.PhaseDownloading, rec)
		second.Tick(1, 2)
		require.Equal(t, []int{100, 50}, rec.values())
	})

	t.Run("nil sink is allowed", func(t *testing.T) {
		r := progress.NewReporter(progress.PhaseDownloading, nil)
		r.Tick(1, 2)
		require.Equal(t, 50, r.Last())
	})
}

func TestReporterConcurrentTicks(t *testing.T) {
	rec := &recorder{}
	r := progress.NewReporter(progress.PhaseDownloading, rec)

	const total = 5000
	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 2000; i++ {
				r.Tick(rng.Int63n(total+1), total)
			}
		}(int64(w))
	}
	wg.Wait()
	r.Complete()

	values := rec.values()
	require.NotEmpty(t, values)
	requireStrictlyIncreasing(t, values)
	require.Equal(t, 100, values[len(values)-1])
	for _, v := range values {
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 100)
	}
}
