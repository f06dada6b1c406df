package queue

import (
	"fmt"
	"sync"
)

// InMemoryQueue implements an in-memory queue over a buffered channel.
type InMemoryQueue struct {
	ch   chan interface{}
	lock sync.Mutex
}

// NewInMemoryQueue creates a new queue with the given capacity.
func NewInMemoryQueue(size int) *InMemoryQueue {
	return &InMemoryQueue{
		ch: make(chan interface{}, size),
	}
}

// Enqueue adds an item to the end of the queue. It fails rather than blocks
// when the queue is full so producers never stall the game loop.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return fmt.Errorf("queue is full")
	}
}

// ReadAllMessages reads all pending messages in the queue.
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for len(q.ch) > 0 {
		messages = append(messages, <-q.ch)
	}

	return messages, nil
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.ch)
}

// Clear drops all pending messages.
func (q *InMemoryQueue) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()
	for len(q.ch) > 0 {
		<-q.ch
	}
}
