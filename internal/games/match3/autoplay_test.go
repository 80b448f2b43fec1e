package match3

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestAutoplayIsDeterministic(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	opts := AutoplayOptions{Level: 1, Turns: 5, Seed: 3, Logger: quietLogger()}

	a, err := Autoplay(cfg, opts)
	require.NoError(t, err)
	b, err := Autoplay(cfg, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.Turns, 5)
}

func TestAutoplayEndsLevel(t *testing.T) {
	cfg := config.DefaultMatch3Config()

	res, err := Autoplay(cfg, AutoplayOptions{Level: 1, Seed: 8, Logger: quietLogger()})
	require.NoError(t, err)

	assert.True(t, res.Cleared || res.OutOfMoves)
	assert.LessOrEqual(t, res.Turns, res.Level.Moves)
	assert.GreaterOrEqual(t, res.Rounds, res.Turns, "first legal move always matches")
	assert.Positive(t, res.Score)

	board := engine.MustParseGrid(ItemSet(cfg), res.Board...)
	assert.True(t, board.Full())
	assert.Empty(t, engine.FindAllMatches(board).Coords())
}

func TestAutoplayClearsEasyTarget(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Levels = []config.LevelConfig{{Name: "Easy", Kinds: 4, Moves: 10, Target: 1}}

	res, err := Autoplay(cfg, AutoplayOptions{Level: 7, Seed: 1, Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, "Easy", res.Level.Name, "out-of-range level falls back to the first")
	assert.True(t, res.Cleared)
	assert.False(t, res.OutOfMoves)
	assert.Equal(t, 1, res.Turns)
}

func TestAutoplayNoLevels(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Levels = nil

	_, err := Autoplay(cfg, AutoplayOptions{Logger: quietLogger()})
	assert.Error(t, err)
}
