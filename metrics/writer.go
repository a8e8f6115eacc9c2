package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

func (w *Writer) WriteBattles(battles []BattleMetric) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"step", "attacker", "defender", "attacker_die", "defender_die", "conquered"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write battles header: %w", err)
	}

	// Write each row
	for _, battle := range battles {
		row := []string{
			strconv.Itoa(battle.Step),
			battle.AttackerColor,
			battle.DefenderColor,
			strconv.Itoa(battle.AttackerDie),
			strconv.Itoa(battle.DefenderDie),
			strconv.FormatBool(battle.Conquered),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write battle row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteGame(game GameMetric) error {
	writer := csv.NewWriter(w.out)

	header := []string{"winner", "mission", "turns", "start_time", "end_time", "duration"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game header: %w", err)
	}

	row := []string{
		game.Winner,
		game.Mission,
		strconv.Itoa(game.Turns),
		game.StartTime.Format(time.RFC3339),
		game.EndTime.Format(time.RFC3339),
		game.Duration.String(),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write game row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
