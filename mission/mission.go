// Package mission holds the fixed catalog of secret victory conditions and
// the checks that decide whether one has been fulfilled.
package mission

import (
	"fmt"

	"war/game"
	"war/meta"
)

// ID identifies a mission in the catalog.
type ID int

const (
	ConquerThreeTerritories ID = iota // 0
	EliminateRedTroops                // 1
	HoldTwoStrongholds                // 2
	DoubleEnemyTroops                 // 3
	WinThreeBattlesInARow             // 4
)

var descriptions = []string{
	"Conquistar 3 territorios seguidos",
	"Eliminar todas as tropas vermelhas",
	"Dominar 2 territorios com mais de 10 tropas",
	"Ter o dobro de tropas do inimigo",
	"Vencer 3 batalhas consecutivas",
}

// Catalog lists every mission in catalog order.
func Catalog() []ID {
	ids := make([]ID, len(descriptions))
	for i := range descriptions {
		ids[i] = ID(i)
	}
	return ids
}

func (id ID) Valid() bool {
	return id >= 0 && int(id) < len(descriptions)
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("mission(%d)", int(id))
	}
	return descriptions[id]
}

// Lookup maps a catalog description back to its ID.
func Lookup(description string) (ID, error) {
	for i, d := range descriptions {
		if d == description {
			return ID(i), nil
		}
	}
	return -1, fmt.Errorf("mission not found: %q", description)
}

// Assign draws a mission uniformly from the catalog. Players draw
// independently, so two players may hold the same mission.
func Assign(src game.Source) ID {
	return ID(src.Intn(len(descriptions)))
}

// Board is the read-only view of the territories a mission is checked against.
type Board interface {
	CountOwnedBy(color string) int
}

// IsComplete reports whether the mission is fulfilled on the board.
// Only the conquest mission has a check, every other mission stays unfulfilled.
func IsComplete(id ID, board Board) bool {
	switch id {
	case ConquerThreeTerritories:
		return board.CountOwnedBy(meta.CONQUEST_COLOR) >= meta.CONQUEST_TARGET
	default:
		return false
	}
}
