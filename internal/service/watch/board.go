package watch

import "sync"

// Board is the in-memory announcement sink surfaced by the status endpoint.
type Board struct {
	mu  sync.Mutex
	msg string
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) SetMessage(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msg = msg
}

func (b *Board) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}
