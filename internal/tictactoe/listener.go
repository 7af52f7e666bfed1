package tictactoe

type EventKind string

const (
	EventMove EventKind = "move"
	EventJump EventKind = "jump"
	EventSort EventKind = "sort"
)

// Event describes a transition that changed the game. Cell is -1 unless a
// mark was placed.
type Event struct {
	Kind EventKind
	Cell int
	Mark string
	Move int
}

// Listener is called synchronously after every accepted transition.
type Listener func(event Event, game *Game)

// Subscribe - registers the listener and returns a func that removes it.
func (that *Game) Subscribe(listener Listener) func() {
	id := that.nextListenerID
	that.nextListenerID++
	that.listeners[id] = listener

	return func() {
		delete(that.listeners, id)
	}
}

func (that *Game) notify(event Event) {
	for id := 0; id < that.nextListenerID; id++ {
		if listener, ok := that.listeners[id]; ok {
			listener(event, that)
		}
	}
}
