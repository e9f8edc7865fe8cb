package event_bus

// StateChanged is published after every successful mutation of the
// in-memory application state. The snapshot manager subscribes to it to
// persist the full state blob.
const StateChanged EventType = "state.changed"

// StateChange describes which entity was mutated and how.
type StateChange struct {
	Entity string
	Action string
	ID     string
}
