package metrics

import (
	"sync"
	"time"
)

type BattleMetric struct {
	Step          int
	AttackerColor string
	DefenderColor string
	AttackerDie   int
	DefenderDie   int
	Conquered     bool
}

// ArmyMetric tallies one army's battles as attacker.
type ArmyMetric struct {
	Battles    int
	Conquests  int
	Defeats    int
	Streak     int // Consecutive conquests up to the latest battle
	LongestRun int
}

type GameMetric struct {
	Winner    string // Winning army color, "" if none
	Mission   string
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	RecordBattle(attackerColor, defenderColor string, attackerDie, defenderDie int, conquered bool)
	Battles() []BattleMetric
	Army(color string) ArmyMetric
}

type collector struct {
	mu      sync.Mutex
	battles []BattleMetric
	armies  map[string]ArmyMetric
}

func NewCollector() Collector {
	return &collector{
		armies: make(map[string]ArmyMetric),
	}
}

func (c *collector) RecordBattle(attackerColor, defenderColor string, attackerDie, defenderDie int, conquered bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.battles = append(c.battles, BattleMetric{
		Step:          len(c.battles) + 1,
		AttackerColor: attackerColor,
		DefenderColor: defenderColor,
		AttackerDie:   attackerDie,
		DefenderDie:   defenderDie,
		Conquered:     conquered,
	})

	army := c.armies[attackerColor]
	army.Battles++
	if conquered {
		army.Conquests++
		army.Streak++
		army.LongestRun = max(army.LongestRun, army.Streak)
	} else {
		army.Defeats++
		army.Streak = 0
	}
	c.armies[attackerColor] = army
}

func (c *collector) Battles() []BattleMetric {
	c.mu.Lock()
	defer c.mu.Unlock()

	battles := make([]BattleMetric, len(c.battles))
	copy(battles, c.battles)
	return battles
}

func (c *collector) Army(color string) ArmyMetric {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.armies[color]
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) RecordBattle(attackerColor, defenderColor string, attackerDie, defenderDie int, conquered bool) {
}
func (c *dummyCollector) Battles() []BattleMetric      { return nil }
func (c *dummyCollector) Army(color string) ArmyMetric { return ArmyMetric{} }
