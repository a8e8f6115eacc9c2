package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("numbers battles in order", func(t *testing.T) {
		c := NewCollector()
		c.RecordBattle("azul", "vermelho", 6, 1, true)
		c.RecordBattle("vermelho", "azul", 2, 5, false)

		battles := c.Battles()

		require.Len(t, battles, 2)
		require.Equal(t, BattleMetric{Step: 1, AttackerColor: "azul", DefenderColor: "vermelho", AttackerDie: 6, DefenderDie: 1, Conquered: true}, battles[0])
		require.Equal(t, 2, battles[1].Step)
	})

	t.Run("tracks conquest streaks per army", func(t *testing.T) {
		c := NewCollector()
		c.RecordBattle("azul", "vermelho", 6, 1, true)
		c.RecordBattle("azul", "vermelho", 5, 1, true)
		c.RecordBattle("vermelho", "azul", 6, 1, true)
		c.RecordBattle("azul", "vermelho", 1, 1, false)
		c.RecordBattle("azul", "vermelho", 4, 2, true)

		azul := c.Army("azul")

		require.Equal(t, ArmyMetric{Battles: 4, Conquests: 3, Defeats: 1, Streak: 1, LongestRun: 2}, azul)
		require.Equal(t, 1, c.Army("vermelho").Conquests, "Armies should be tallied separately")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.RecordBattle("azul", "vermelho", 6, 1, true)

		require.Empty(t, c.Battles())
		require.Equal(t, ArmyMetric{}, c.Army("azul"))
	})
}

func TestWriter(t *testing.T) {
	t.Run("writes battles as csv", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)

		err := w.WriteBattles([]BattleMetric{
			{Step: 1, AttackerColor: "azul", DefenderColor: "vermelho", AttackerDie: 6, DefenderDie: 1, Conquered: true},
		})

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Equal(t, []string{
			"step,attacker,defender,attacker_die,defender_die,conquered",
			"1,azul,vermelho,6,1,true",
		}, lines)
	})

	t.Run("writes the game summary", func(t *testing.T) {
		var buf bytes.Buffer
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		err := NewWriter(&buf).WriteGame(GameMetric{
			Winner:    "azul",
			Mission:   "Conquistar 3 territorios seguidos",
			Turns:     12,
			StartTime: start,
			EndTime:   start.Add(time.Second),
			Duration:  time.Second,
		})

		require.NoError(t, err)
		require.Contains(t, buf.String(), "azul,Conquistar 3 territorios seguidos,12,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s")
	})
}
