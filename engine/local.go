package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"war/gamemaster"
	"war/metrics"
	"war/player"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Session  *gamemaster.Session
	Agents   []player.Agent
	MaxTurns int
}

func LocalEngine(session *gamemaster.Session, agents []player.Agent, maxTurns int) *Engine {
	if len(agents) != len(session.Players()) {
		panic("number of agents does not match number of players")
	}
	if maxTurns < 1 {
		panic("need at least one turn")
	}

	return &Engine{
		Session:  session,
		Agents:   agents,
		MaxTurns: maxTurns,
	}
}

// Run alternates the agents, one attack per turn, and checks the missions
// after every turn. A match that hits the turn limit is quit without a winner.
func (e *Engine) Run() (string, metrics.GameMetric, error) {
	players := e.Session.Players()
	gameMetric := metrics.GameMetric{StartTime: time.Now()}

	log.Info().Msgf("player %d is starting", players[0].Number)

	turn := 0
	for turn < e.MaxTurns {
		turn++
		current := players[(turn-1)%len(players)]
		agent := e.Agents[(turn-1)%len(players)]

		attack, ok := agent.ChooseAttack(e.Session.Territories(), current.Color)
		if ok {
			outcome, err := e.Session.Attack(attack.From, attack.To)
			if err != nil {
				log.Warn().Err(err).Msgf("turn %d: player %d attack %d -> %d rejected", turn, current.Number, attack.From, attack.To)
			} else {
				log.Debug().Msgf("turn %d: player %d attacked %d -> %d, dice %d vs %d, conquered=%t",
					turn, current.Number, attack.From, attack.To, outcome.AttackerDie, outcome.DefenderDie, outcome.Conquered)
			}
		} else {
			log.Debug().Msgf("turn %d: player %d passes", turn, current.Number)
		}

		announcement, won, err := e.Session.CheckMissions()
		if err != nil {
			return "", e.complete(gameMetric, turn), err
		}
		if won {
			gameMetric.Winner = announcement.Winner.Color
			gameMetric.Mission = announcement.Winner.Mission.String()
			log.Info().Msgf("player %d (%s) wins after %d turns: %s", announcement.Winner.Number, announcement.Winner.Color, turn, gameMetric.Mission)
			return gameMetric.Winner, e.complete(gameMetric, turn), nil
		}
	}

	log.Info().Msgf("stopped after %d turns (no winner yet)", turn)
	if err := e.Session.Quit(); err != nil && !errors.Is(err, gamemaster.ErrGameOver) {
		return "", e.complete(gameMetric, turn), err
	}
	return "", e.complete(gameMetric, turn), nil
}

func (e *Engine) complete(gameMetric metrics.GameMetric, turns int) metrics.GameMetric {
	gameMetric.Turns = turns
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return gameMetric
}
