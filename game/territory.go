package game

import (
	"errors"
	"fmt"
)

var ErrRegistryFull = errors.New("cannot register territory: registry is full")

// Territory is a unit of contested ground.
type Territory struct {
	Name   string // Display name, not unique
	Color  string // Army currently holding the territory
	Troops int    // Troops stationed, never negative
}

// Registry is the ordered, fixed-capacity collection of territories owned by a session.
type Registry struct {
	territories []Territory
	capacity    int
}

// NewRegistry creates an empty registry that accepts up to capacity territories.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		territories: make([]Territory, 0, capacity),
		capacity:    capacity,
	}
}

// Add appends a territory. Once the registry is full it never grows again.
func (r *Registry) Add(t Territory) error {
	if r.Full() {
		return ErrRegistryFull
	}
	r.territories = append(r.territories, t)
	return nil
}

func (r *Registry) Len() int {
	return len(r.territories)
}

func (r *Registry) Capacity() int {
	return r.capacity
}

func (r *Registry) Full() bool {
	return len(r.territories) >= r.capacity
}

// At returns the territory at a 1-based position.
func (r *Registry) At(position int) (*Territory, error) {
	if position < 1 || position > len(r.territories) {
		return nil, fmt.Errorf("%w: position %d outside [1, %d]", ErrInvalidTarget, position, len(r.territories))
	}
	return &r.territories[position-1], nil
}

// Snapshot returns a copy of every territory in registration order.
func (r *Registry) Snapshot() []Territory {
	snapshot := make([]Territory, len(r.territories))
	copy(snapshot, r.territories)
	return snapshot
}

// CountOwnedBy returns how many territories the given army holds.
func (r *Registry) CountOwnedBy(color string) int {
	count := 0
	for _, t := range r.territories {
		if t.Color == color {
			count++
		}
	}
	return count
}

// TroopsOf tallies the troops of the given army across all its territories.
func (r *Registry) TroopsOf(color string) int {
	troops := 0
	for _, t := range r.territories {
		if t.Color == color {
			troops += t.Troops
		}
	}
	return troops
}
