package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"war/game"
	"war/meta"
	"war/metrics"
	"war/mission"
)

var (
	ErrAllocation       = errors.New("cannot start session")
	ErrInvalidTerritory = errors.New("cannot register territory")
	ErrSetupClosed      = errors.New("cannot register territory: setup is over")
	ErrNotReady         = errors.New("session is still in setup")
	ErrGameOver         = errors.New("game is over - no commands allowed")
)

// State is the phase of a session.
type State int

const (
	SetupState State = iota
	AwaitingCommandState
	AttackingState
	CheckingState
	TerminatedState
)

func (s State) String() string {
	switch s {
	case SetupState:
		return "setup"
	case AwaitingCommandState:
		return "awaiting command"
	case AttackingState:
		return "attacking"
	case CheckingState:
		return "checking"
	case TerminatedState:
		return "terminated"
	default:
		return "unknown"
	}
}

// Player is one of the two sides. Its army color doubles as its identifier.
type Player struct {
	Number  int
	Color   string
	Mission mission.ID
}

// Announcement declares the player whose mission was fulfilled.
type Announcement struct {
	Winner Player
}

type Option func(s *Session)

func WithSource(source game.Source) Option {
	return func(s *Session) {
		if source != nil {
			s.source = source
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.source = game.NewSource(seed)
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithPlayers(color1, color2 string) Option {
	return func(s *Session) {
		s.players[0].Color = color1
		s.players[1].Color = color2
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Session orchestrates one two-player game. Every command holds the session
// lock until it completes, so commands never interleave.
type Session struct {
	mu       sync.Mutex
	registry *game.Registry
	rules    game.Rules
	source   game.Source
	players  [2]Player
	state    State
	winner   *Player
	metrics  metrics.Collector
	logger   zerolog.Logger
}

// NewSession allocates a registry for territoryCount territories and draws
// both players' missions.
func NewSession(territoryCount int, options ...Option) (*Session, error) {
	if territoryCount < 1 || territoryCount > meta.MAX_TERRITORIES {
		return nil, fmt.Errorf("%w: territory count %d outside [1, %d]", ErrAllocation, territoryCount, meta.MAX_TERRITORIES)
	}

	s := &Session{ // Default values
		registry: game.NewRegistry(territoryCount),
		rules:    game.NewStandardRules(),
		players: [2]Player{
			{Number: 1, Color: "azul"},
			{Number: 2, Color: "vermelho"},
		},
		state:   SetupState,
		metrics: metrics.NewDummyCollector(),
		logger:  log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	if err := validateColor(s.players[0].Color); err != nil {
		return nil, fmt.Errorf("%w: player 1: %v", ErrAllocation, err)
	}
	if err := validateColor(s.players[1].Color); err != nil {
		return nil, fmt.Errorf("%w: player 2: %v", ErrAllocation, err)
	}
	if s.players[0].Color == s.players[1].Color {
		return nil, fmt.Errorf("%w: both players use army %q", ErrAllocation, s.players[0].Color)
	}
	if s.source == nil {
		s.source = game.NewSource(uint64(time.Now().UnixNano()))
	}

	// Player 1 draws first
	for i := range s.players {
		s.players[i].Mission = mission.Assign(s.source)
	}

	s.logger.Info().Int("territories", territoryCount).Msg("session started")
	return s, nil
}

// RegisterTerritory adds the next territory and returns its 1-based position.
// The session leaves setup once every territory is registered.
func (s *Session) RegisterTerritory(name, color string, troops int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case TerminatedState:
		return 0, ErrGameOver
	case SetupState:
	default:
		return 0, ErrSetupClosed
	}

	if name == "" || utf8.RuneCountInString(name) > meta.MAX_NAME_LENGTH {
		return 0, fmt.Errorf("%w: name %q must have 1 to %d characters", ErrInvalidTerritory, name, meta.MAX_NAME_LENGTH)
	}
	if err := validateColor(color); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTerritory, err)
	}
	if troops < 0 {
		return 0, fmt.Errorf("%w: troops %d must not be negative", ErrInvalidTerritory, troops)
	}

	if err := s.registry.Add(game.Territory{Name: name, Color: color, Troops: troops}); err != nil {
		return 0, err
	}
	position := s.registry.Len()
	s.logger.Debug().Int("position", position).Str("name", name).Str("color", color).Int("troops", troops).Msg("territory registered")

	if s.registry.Full() {
		s.state = AwaitingCommandState
		s.logger.Info().Msg("setup complete")
	}
	return position, nil
}

// Attack resolves an attack between two 1-based territory positions.
// Invalid positions are rejected before any dice are rolled.
func (s *Session) Attack(attackerPosition, defenderPosition int) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return game.Outcome{}, err
	}

	s.state = AttackingState
	defer func() { s.state = AwaitingCommandState }()

	if attackerPosition == defenderPosition {
		return game.Outcome{}, fmt.Errorf("%w: territory %d cannot attack itself", game.ErrInvalidTarget, attackerPosition)
	}
	attacker, err := s.registry.At(attackerPosition)
	if err != nil {
		return game.Outcome{}, err
	}
	defender, err := s.registry.At(defenderPosition)
	if err != nil {
		return game.Outcome{}, err
	}

	attackerColor, defenderColor := attacker.Color, defender.Color
	outcome, err := game.ResolveAttack(s.rules, s.source, attacker, defender)
	if err != nil {
		s.logger.Debug().Err(err).Int("attacker", attackerPosition).Int("defender", defenderPosition).Msg("attack rejected")
		return game.Outcome{}, err
	}

	s.metrics.RecordBattle(attackerColor, defenderColor, outcome.AttackerDie, outcome.DefenderDie, outcome.Conquered)
	s.logger.Info().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Int("attacker_die", outcome.AttackerDie).
		Int("defender_die", outcome.DefenderDie).
		Bool("conquered", outcome.Conquered).
		Msg("battle resolved")

	return outcome, nil
}

// CheckMissions checks player 1 then player 2. The first fulfilled mission
// ends the session, so player 1 wins when both qualify.
func (s *Session) CheckMissions() (Announcement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return Announcement{}, false, err
	}

	s.state = CheckingState
	for _, p := range s.players {
		if mission.IsComplete(p.Mission, s.registry) {
			winner := p
			s.winner = &winner
			s.state = TerminatedState
			s.logger.Info().Int("player", p.Number).Str("color", p.Color).Str("mission", p.Mission.String()).Msg("mission fulfilled")
			return Announcement{Winner: winner}, true, nil
		}
	}
	s.state = AwaitingCommandState

	return Announcement{}, false, nil
}

// Quit ends the session without a winner.
func (s *Session) Quit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == TerminatedState {
		return ErrGameOver
	}
	s.state = TerminatedState
	s.logger.Info().Msg("session quit")
	return nil
}

// Territories returns a copy of the registry in registration order.
func (s *Session) Territories() []game.Territory {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Snapshot()
}

func (s *Session) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	return []Player{s.players[0], s.players[1]}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Winner returns the player whose mission ended the session, if any.
func (s *Session) Winner() (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.winner == nil {
		return Player{}, false
	}
	return *s.winner, true
}

func (s *Session) Stats(color string) metrics.ArmyMetric {
	return s.metrics.Army(color)
}

func (s *Session) Battles() []metrics.BattleMetric {
	return s.metrics.Battles()
}

func (s *Session) ready() error {
	switch s.state {
	case TerminatedState:
		return ErrGameOver
	case SetupState:
		return fmt.Errorf("%w: %d of %d territories registered", ErrNotReady, s.registry.Len(), s.registry.Capacity())
	}
	return nil
}

func validateColor(color string) error {
	if color == "" || utf8.RuneCountInString(color) > meta.MAX_COLOR_LENGTH {
		return fmt.Errorf("color %q must have 1 to %d characters", color, meta.MAX_COLOR_LENGTH)
	}
	return nil
}
