package match3

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// AutoplayOptions configures a headless run of one campaign level.
type AutoplayOptions struct {
	Level  int // 1-based campaign level; out of range means level 1
	Turns  int // Stop after this many turns; 0 plays until the level ends
	Seed   int64
	Logger *log.Logger // Optional
}

// AutoplayResult summarizes a headless run.
type AutoplayResult struct {
	Level      config.LevelConfig
	Turns      int
	Rounds     int // Cascade rounds over all turns
	Score      int
	Reshuffles int
	Cleared    bool // Target reached
	OutOfMoves bool
	Board      []string // Final board in ASCII form
}

// Autoplay plays a campaign level without a terminal, always taking the first
// legal move. Every turn and cascade round is logged.
func Autoplay(cfg config.Match3Config, opts AutoplayOptions) (AutoplayResult, error) {
	var res AutoplayResult

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	level, ok := cfg.Level(opts.Level - 1)
	if !ok {
		level, ok = cfg.Level(0)
		if !ok {
			return res, fmt.Errorf("autoplay: config has no levels")
		}
	}
	res.Level = level

	gen, err := engine.NewGenerator(ItemSet(cfg), rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return res, fmt.Errorf("autoplay: %w", err)
	}
	grid, err := engine.NewGrid(cfg.Board.Width, cfg.Board.Height, level.Kinds)
	if err != nil {
		return res, fmt.Errorf("autoplay: %w", err)
	}

	movesLeft := level.Moves
	eng := engine.NewEngine(grid, gen, engine.WithMoveCounter(engine.MoveCounterFunc(func(engine.TurnResult) {
		res.Turns++
		movesLeft--
	})))
	if err := eng.Populate(); err != nil {
		return res, fmt.Errorf("autoplay: %w", err)
	}

	logger.Info("level started", "level", level.Name, "kinds", level.Kinds, "moves", level.Moves, "target", level.Target)

	for opts.Turns <= 0 || res.Turns < opts.Turns {
		if res.Score >= level.Target {
			res.Cleared = true
			break
		}
		if movesLeft <= 0 {
			res.OutOfMoves = true
			break
		}

		moves := eng.Moves()
		if len(moves) == 0 {
			if res.Reshuffles >= maxReshuffles {
				break
			}
			logger.Warn("no legal moves, reshuffling")
			if err := eng.Populate(); err != nil {
				return res, fmt.Errorf("autoplay: %w", err)
			}
			res.Reshuffles++
			continue
		}

		turn, err := eng.Play(moves[0].A, moves[0].B)
		if err != nil {
			return res, fmt.Errorf("autoplay: turn %d: %w", res.Turns+1, err)
		}
		for _, r := range turn.Rounds {
			logger.Debug("round", "turn", res.Turns, "index", r.Index,
				"destroyed", len(r.Destroyed), "fallen", len(r.Fallen), "spawned", len(r.Spawned), "score", r.Score())
		}
		res.Rounds += len(turn.Rounds)
		res.Score += turn.Score
		logger.Info("turn", "n", res.Turns, "swap", fmt.Sprintf("%v-%v", turn.From, turn.To),
			"outcome", turn.Outcome, "rounds", len(turn.Rounds), "gained", turn.Score, "score", res.Score)
	}

	// A target reached on the last allowed turn still counts
	if !res.Cleared && res.Score >= level.Target {
		res.Cleared = true
		res.OutOfMoves = false
	}
	res.Board = eng.Board().Rows()
	return res, nil
}
