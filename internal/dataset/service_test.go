package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
)

func collect(t *testing.T, bus eventbus.EventBus, types ...eventbus.EventType) <-chan eventbus.DomainEvent {
	t.Helper()
	ch := make(chan eventbus.DomainEvent, 8)
	for _, et := range types {
		unsub := bus.Subscribe(et, func(e eventbus.DomainEvent) { ch <- e })
		t.Cleanup(unsub)
	}
	return ch
}

func waitEvent(t *testing.T, ch <-chan eventbus.DomainEvent) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestServiceReloadReplacesStore(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	events := collect(t, bus, eventbus.EventDataLoaded)

	store := logic.NewMemoryDatasetStore()
	path := filepath.Join("testdata", "data.json")
	svc := NewService(nil, store, bus, Source{Path: path})

	require.NoError(t, svc.Reload(context.Background()))
	require.NotNil(t, store.Current())
	assert.Equal(t, path, store.Source())
	assert.Equal(t, uint64(1), store.Generation())

	e := waitEvent(t, events).(eventbus.DataLoadedEvent)
	assert.Equal(t, path, e.Source)
	assert.Equal(t, 6, e.Areas)
}

func TestServiceFailedReloadKeepsPreviousDataset(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	events := collect(t, bus, eventbus.EventDataLoadFailed)

	store := logic.NewMemoryDatasetStore()
	previous := &domain.Dataset{Disclaimer: "previous"}
	store.Replace(previous)

	svc := NewService(nil, store, bus, Source{Path: filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, svc.Reload(context.Background()))

	assert.Same(t, previous, store.Current())
	e := waitEvent(t, events).(eventbus.DataLoadFailedEvent)
	assert.ErrorIs(t, e.Err, os.ErrNotExist)
}

func TestServiceReloadsOnEvents(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	events := collect(t, bus, eventbus.EventDataLoaded)

	store := logic.NewMemoryDatasetStore()
	svc := NewService(nil, store, bus, Source{Path: filepath.Join("testdata", "data.json")}, WithTimeout(time.Second))
	svc.Start(context.Background())
	defer svc.Stop()

	bus.Publish(eventbus.DataLoadRequestedEvent{Reason: "test"})
	waitEvent(t, events)
	assert.Equal(t, uint64(1), store.Generation())

	bus.Publish(eventbus.DataFileChangedEvent{Path: "data.json"})
	waitEvent(t, events)
	assert.Equal(t, uint64(2), store.Generation())
}

func TestServiceStopUnsubscribes(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	store := logic.NewMemoryDatasetStore()
	svc := NewService(nil, store, bus, Source{Path: filepath.Join("testdata", "data.json")})
	svc.Start(context.Background())
	svc.Stop()

	bus.Publish(eventbus.DataLoadRequestedEvent{Reason: "after stop"})
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.Generation())
}

func TestSourceWatchPaths(t *testing.T) {
	assert.Equal(t, []string{"data.json"}, Source{Path: "data.json"}.WatchPaths())
	assert.Empty(t, Source{Path: "https://example.com/data.json"}.WatchPaths())

	split := Source{Overview: "o.json", Countries: "https://x/c.json", Regions: "r.json", Utlas: "u.json"}
	assert.True(t, split.Split())
	assert.Equal(t, []string{"o.json", "r.json", "u.json"}, split.WatchPaths())
	assert.Equal(t, "o.json (+3)", split.String())
}

func TestServiceNoLoadsStartAfterStop(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	store := logic.NewMemoryDatasetStore()
	svc := NewService(nil, store, bus, Source{Path: filepath.Join("testdata", "data.json")}, WithTimeout(time.Second))
	svc.Start(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			bus.Publish(eventbus.DataLoadRequestedEvent{Reason: "burst"})
		}
	}()
	time.Sleep(time.Millisecond)
	svc.Stop()
	<-done

	settled := store.Generation()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, store.Generation())
}
