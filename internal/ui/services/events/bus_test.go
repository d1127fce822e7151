package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ n int }
type ponged struct{}

func TestBusDeliversSynchronouslyInOrder(t *testing.T) {
	b := NewBus()
	var got []int
	b.Subscribe(TypeOf(pinged{}), func(e interface{}) { got = append(got, e.(pinged).n) })

	for i := 1; i <= 3; i++ {
		b.Publish(pinged{n: i})
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBusRoutesByType(t *testing.T) {
	b := NewBus()
	var pings, pongs int
	b.Subscribe(TypeOf(pinged{}), func(interface{}) { pings++ })
	b.Subscribe(TypeOf(ponged{}), func(interface{}) { pongs++ })

	b.Publish(pinged{})
	b.Publish(pinged{})
	b.Publish(ponged{})
	assert.Equal(t, 2, pings)
	assert.Equal(t, 1, pongs)
}

func TestBusUnsubscribe(t *testing.T) {
	b := NewBus()
	var first, second int
	unsubscribe := b.Subscribe(TypeOf(pinged{}), func(interface{}) { first++ })
	b.Subscribe(TypeOf(pinged{}), func(interface{}) { second++ })

	b.Publish(pinged{})
	unsubscribe()
	unsubscribe()
	b.Publish(pinged{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestBusHandlerMayUnsubscribeItself(t *testing.T) {
	b := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = b.Subscribe(TypeOf(pinged{}), func(interface{}) {
		calls++
		unsubscribe()
	})

	b.Publish(pinged{})
	b.Publish(pinged{})
	assert.Equal(t, 1, calls)
}

func TestNullBus(t *testing.T) {
	var b EventBus = &NullBus{}
	b.Publish(pinged{})
	b.Subscribe(TypeOf(pinged{}), func(interface{}) { t.Fatal("called") })()
}
