package fitcoach

import "time"

// Message is a single entry in a session transcript. Messages are created
// once and never mutated; their order is replayed to the model as context.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
