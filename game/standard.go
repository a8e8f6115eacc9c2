package game

import "war/meta"

type StandardRules struct {
	MinTroops int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MinTroops: meta.MIN_ATTACK_TROOPS,
	}
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinTroops
}

func (sr *StandardRules) IsAttackSuccessful(attackerDie, defenderDie int) bool {
	// Defender holds on ties
	return attackerDie > defenderDie
}

func (sr *StandardRules) OccupyingTroops(attackerTroops int) int {
	return attackerTroops / 2
}

func (sr *StandardRules) AttackerLosses() int {
	return 1
}
