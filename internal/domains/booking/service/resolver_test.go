package service_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talentlink/internal/domains/booking/service"
)

func TestResolver_FiresOnce(t *testing.T) {
	resolver := service.NewResolver(10 * time.Millisecond)
	defer resolver.Shutdown()

	fired := make(chan struct{})

	resolver.Schedule("request-1", func() {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("resolution did not fire")
	}

	// The timer already ran, nothing left to cancel.
	assert.False(t, resolver.Cancel("request-1"))
}

func TestResolver_CancelDisarms(t *testing.T) {
	resolver := service.NewResolver(50 * time.Millisecond)
	defer resolver.Shutdown()

	var fired atomic.Bool

	resolver.Schedule("request-1", func() {
		fired.Store(true)
	})

	assert.True(t, resolver.Cancel("request-1"))

	time.Sleep(150 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestResolver_CancelUnknownRequest(t *testing.T) {
	resolver := service.NewResolver(10 * time.Millisecond)
	defer resolver.Shutdown()

	assert.False(t, resolver.Cancel("never-scheduled"))
}

func TestResolver_RescheduleReplacesTimer(t *testing.T) {
	resolver := service.NewResolver(20 * time.Millisecond)
	defer resolver.Shutdown()

	var count atomic.Int32

	done := make(chan struct{})

	resolver.Schedule("request-1", func() {
		count.Add(1)
	})
	resolver.Schedule("request-1", func() {
		count.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("resolution did not fire")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestResolver_ShutdownDisarmsAll(t *testing.T) {
	resolver := service.NewResolver(50 * time.Millisecond)

	var fired atomic.Bool

	resolver.Schedule("request-1", func() { fired.Store(true) })
	resolver.Schedule("request-2", func() { fired.Store(true) })

	resolver.Shutdown()

	// Scheduling after shutdown is dropped.
	resolver.Schedule("request-3", func() { fired.Store(true) })

	time.Sleep(150 * time.Millisecond)
	assert.False(t, fired.Load())
}
