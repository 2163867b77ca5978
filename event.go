package fitcoach

// Event is a sealed interface representing something that happened during a
// turn. The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventReply carries the assistant message appended for a turn. Failed is set
// when the content is a gateway warning rather than generated text.
type EventReply struct {
	Content string
	Failed  bool
}

func (EventReply) event() {}

// EventPlanArchived signals that a reply was saved to an archive. Number is
// the 1-based position in that archive.
type EventPlanArchived struct {
	Intent  Intent
	Number  int
	Content string
}

func (EventPlanArchived) event() {}

// Interface compliance checks.
var (
	_ Event = EventReply{}
	_ Event = EventPlanArchived{}
)
