package convo

// DefaultWindow is the number of exchanges retained for context.
const DefaultWindow = 10

// Buffer is a fixed-capacity ordered store of recent exchanges. The oldest
// entry is evicted when an insert would exceed capacity. Not safe for
// concurrent use; the session serializes access.
type Buffer struct {
	capacity int
	entries  []Exchange
}

// NewBuffer creates an empty buffer. Capacity values <= 0 fall back to
// DefaultWindow.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultWindow
	}
	return &Buffer{
		capacity: capacity,
		entries:  make([]Exchange, 0, capacity),
	}
}

// Append inserts an exchange, evicting the oldest entry on overflow.
func (b *Buffer) Append(e Exchange) {
	if len(b.entries) >= b.capacity {
		b.entries = append(b.entries[:0], b.entries[1:]...)
		b.entries = append(b.entries, e)
		return
	}
	b.entries = append(b.entries, e)
}

// Entries returns the stored exchanges oldest-first. The returned slice is
// a copy; mutating it does not affect the buffer.
func (b *Buffer) Entries() []Exchange {
	out := make([]Exchange, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of stored exchanges.
func (b *Buffer) Len() int { return len(b.entries) }

// Restore replaces the buffer contents with the given exchanges, keeping
// only the most recent `capacity` entries. Used to reload persisted
// history at startup.
func (b *Buffer) Restore(entries []Exchange) {
	if len(entries) > b.capacity {
		entries = entries[len(entries)-b.capacity:]
	}
	b.entries = b.entries[:0]
	b.entries = append(b.entries, entries...)
}
