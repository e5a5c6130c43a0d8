package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBurstRunsOnlyLastCall(t *testing.T) {
	d := New(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Value

	for _, q := range []string{"g", "go", "gol", "gola"} {
		q := q
		d.Trigger(func() {
			calls.Add(1)
			last.Store(q)
		})
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "gola", last.Load())
	assert.False(t, d.Pending())
}

func TestSeparatedTriggersEachRun(t *testing.T) {
	d := New(5 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 2*time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 2*time.Millisecond)
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	d := New(time.Hour)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	assert.True(t, d.Pending())

	d.Flush()
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())

	d.Flush()
	assert.Equal(t, int32(1), calls.Load(), "nothing left to flush")
}

func TestStopDropsPending(t *testing.T) {
	d := New(5 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.False(t, d.Pending())
}
