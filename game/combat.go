package game

import "errors"

var (
	ErrSameFaction        = errors.New("cannot attack: target territory is held by the same army")
	ErrInsufficientTroops = errors.New("cannot attack: not enough troops to attack")
	ErrInvalidTarget      = errors.New("cannot attack: invalid target")
)

// Outcome describes a resolved attack for display.
type Outcome struct {
	AttackerDie int
	DefenderDie int
	Conquered   bool
}

// ResolveAttack adjudicates one attack between two territories.
// On success exactly one of the two territories is mutated. On error neither is.
func ResolveAttack(rules Rules, src Source, attacker, defender *Territory) (Outcome, error) {
	if attacker == nil || defender == nil || attacker == defender {
		return Outcome{}, ErrInvalidTarget
	}
	if attacker.Color == defender.Color {
		return Outcome{}, ErrSameFaction
	}
	if attacker.Troops < rules.MinAttackTroops() {
		return Outcome{}, ErrInsufficientTroops
	}

	outcome := Outcome{
		AttackerDie: rollDie(src),
		DefenderDie: rollDie(src),
	}

	if rules.IsAttackSuccessful(outcome.AttackerDie, outcome.DefenderDie) {
		// Capture the territory, the attacker keeps its own troops
		defender.Troops = rules.OccupyingTroops(attacker.Troops)
		defender.Color = attacker.Color
		outcome.Conquered = true
	} else {
		attacker.Troops = max(0, attacker.Troops-rules.AttackerLosses())
	}

	return outcome, nil
}
