package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/ckoehne/hurdler/pkg/messages"
)

type InMemoryManager struct {
	lock     sync.RWMutex
	snapshot *messages.GameSnapshot
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{}
}

func (m *InMemoryManager) Get(ctx context.Context) (*messages.GameSnapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.snapshot == nil {
		return nil, nil
	}

	copy := *m.snapshot
	copy.Obstacles = make([]messages.ObstacleSnapshot, len(m.snapshot.Obstacles))
	for i, o := range m.snapshot.Obstacles {
		copy.Obstacles[i] = o
	}

	return &copy, nil
}

func (m *InMemoryManager) Set(ctx context.Context, snapshot *messages.GameSnapshot) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	m.snapshot = snapshot
	return nil
}
