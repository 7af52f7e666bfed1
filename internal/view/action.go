package view

type ActionKind int

const (
	ActionSquare ActionKind = iota
	ActionJump
	ActionToggleSort
)

// Action is a single gesture on the rendered tree. Index is the board index
// for ActionSquare and the history index for ActionJump.
type Action struct {
	Kind  ActionKind
	Index int
}

// Dispatcher is the set of game operations a gesture can trigger.
type Dispatcher interface {
	ApplyMove(cell int) bool
	JumpTo(move int) bool
	ToggleSortOrder()
}

func ClickSquare(index int) Action {
	return Action{Kind: ActionSquare, Index: index}
}

// ClickMove - the gesture for a move list item. Returns false for the inert
// current item.
func ClickMove(item MoveItem) (Action, bool) {
	if item.Current {
		return Action{}, false
	}

	return Action{Kind: ActionJump, Index: item.Move}, true
}

func ClickSort() Action {
	return Action{Kind: ActionToggleSort}
}

// Dispatch - runs the gesture against the game and reports whether the state
// changed.
func Dispatch(dispatcher Dispatcher, action Action) bool {
	switch action.Kind {
	case ActionSquare:
		return dispatcher.ApplyMove(action.Index)
	case ActionJump:
		return dispatcher.JumpTo(action.Index)
	case ActionToggleSort:
		dispatcher.ToggleSortOrder()
		return true
	default:
		return false
	}
}
