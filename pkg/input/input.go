package input

import "sync"

// Controller is the input collaborator of the simulation: a consumable
// "jump requested" signal that is polled once per tick by the player update
// and cleared when the jump is taken.
type Controller interface {
	// QueueJump requests a jump on the next possible tick.
	QueueJump()
	// JumpQueued reports whether a jump request is pending.
	JumpQueued() bool
	// ConsumeJump clears the pending jump request.
	ConsumeJump()
}

// State is a thread-safe Controller. Producers (input pollers, network
// handlers) queue jumps from any goroutine; the game loop polls and consumes.
type State struct {
	lock       sync.Mutex
	jumpQueued bool
}

func NewState() *State {
	return &State{}
}

func (s *State) QueueJump() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.jumpQueued = true
}

func (s *State) JumpQueued() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.jumpQueued
}

func (s *State) ConsumeJump() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.jumpQueued = false
}
