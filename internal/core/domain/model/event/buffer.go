package event

// Buffer collects the events an aggregate raised since it was loaded or
// last flushed. Aggregates embed it; the unit of work drains it on commit.
type Buffer struct {
	events []DomainEvent
}

func (b *Buffer) Record(e DomainEvent) {
	b.events = append(b.events, e)
}

// Events returns the recorded events in the order they were raised.
func (b *Buffer) Events() []DomainEvent {
	out := make([]DomainEvent, len(b.events))
	copy(out, b.events)
	return out
}

func (b *Buffer) Clear() {
	b.events = nil
}
