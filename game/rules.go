package game

type Rules interface {
	MinAttackTroops() int
	// IsAttackSuccessful decides a single exchange of dice.
	IsAttackSuccessful(attackerDie, defenderDie int) bool
	// OccupyingTroops is the garrison left on a conquered territory.
	OccupyingTroops(attackerTroops int) int
	// AttackerLosses is the number of troops an attacker loses on a failed attack.
	AttackerLosses() int
}
