package catalog

import (
	"context"
	"sync"

	"automfg/internal/core/ports"
)

// MaterialAvailability reports every part as available except the parts
// put on the shortage list.
type MaterialAvailability struct {
	mu       sync.RWMutex
	shortage map[string]struct{}
}

var _ ports.MaterialAvailabilityGateway = (*MaterialAvailability)(nil)

func NewMaterialAvailability(shortageParts ...string) *MaterialAvailability {
	m := &MaterialAvailability{shortage: make(map[string]struct{})}
	for _, p := range shortageParts {
		m.shortage[p] = struct{}{}
	}
	return m
}

func (m *MaterialAvailability) CheckAvailability(_ context.Context, partNumber string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, short := m.shortage[partNumber]
	return !short, nil
}

// SetShortage marks a part as short or clears the shortage.
func (m *MaterialAvailability) SetShortage(partNumber string, short bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if short {
		m.shortage[partNumber] = struct{}{}
		return
	}
	delete(m.shortage, partNumber)
}
