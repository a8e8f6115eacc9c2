package player

import (
	"war/game"
	"war/meta"
)

// Attack is a candidate attack between two 1-based territory positions.
type Attack struct {
	From int
	To   int
}

// Agent decides which attack an army launches on its turn.
type Agent interface {
	ChooseAttack(territories []game.Territory, color string) (Attack, bool)
}

// LegalAttacks lists every attack the army may launch: from a territory it
// holds with enough troops onto any territory held by another army.
func LegalAttacks(territories []game.Territory, color string) []Attack {
	var attacks []Attack
	for from, attacker := range territories {
		if attacker.Color != color || attacker.Troops < meta.MIN_ATTACK_TROOPS {
			continue
		}
		for to, defender := range territories {
			if defender.Color != color {
				attacks = append(attacks, Attack{From: from + 1, To: to + 1})
			}
		}
	}
	return attacks
}

// Random picks uniformly among the legal attacks.
type Random struct {
	source game.Source
}

func NewRandom(source game.Source) *Random {
	return &Random{source: source}
}

func (r *Random) ChooseAttack(territories []game.Territory, color string) (Attack, bool) {
	attacks := LegalAttacks(territories, color)
	if len(attacks) == 0 {
		return Attack{}, false
	}
	return attacks[r.source.Intn(len(attacks))], true
}

// Greedy attacks from its strongest territory onto the weakest enemy territory.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) ChooseAttack(territories []game.Territory, color string) (Attack, bool) {
	var best Attack
	found := false
	for _, attack := range LegalAttacks(territories, color) {
		if !found || better(territories, attack, best) {
			best = attack
			found = true
		}
	}
	return best, found
}

// better prefers more attacking troops, then fewer defending troops.
func better(territories []game.Territory, a, b Attack) bool {
	aFrom, bFrom := territories[a.From-1].Troops, territories[b.From-1].Troops
	if aFrom != bFrom {
		return aFrom > bFrom
	}
	return territories[a.To-1].Troops < territories[b.To-1].Troops
}
