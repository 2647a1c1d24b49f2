// Package event implements the optional structured event sink for the game engine.
//
// Behavior code publishes narrative events (a bee stung, an ant died, a wave was
// released) through a Dispatcher instead of printing them. A nil *Dispatcher is
// valid everywhere and drops all events: correctness never depends on a sink
// being attached.
package event

// Type identifies a kind of game event.
type Type string

const (
	AntDeployed  Type = "AntDeployed"
	AntRemoved   Type = "AntRemoved"
	AntKilled    Type = "AntKilled"
	BeeKilled    Type = "BeeKilled"
	BeeSwallowed Type = "BeeSwallowed"
	BeeCoughedUp Type = "BeeCoughedUp"
	BoostApplied Type = "BoostApplied"
	BoostFound   Type = "BoostFound"
	FoodProduced Type = "FoodProduced"
	WaveReleased Type = "WaveReleased"
	GameWon      Type = "GameWon"
	GameLost     Type = "GameLost"
)

// Event carries the event type and an optional type-specific payload.
type Event struct {
	Type Type
	Data any
}

// Listener receives every event it subscribed to, synchronously.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event Event)

// OnEvent implements Listener.
func (fn ListenerFunc) OnEvent(event Event) { fn(event) }

// Dispatcher routes events to subscribed listeners.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers the listener for the given event type.
func (d *Dispatcher) Subscribe(eventType Type, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch delivers the event to all listeners of its type, in subscription order.
// Calling Dispatch on a nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
