package shell

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfectplay/tictactoe-engine/internal/apperror"
	"github.com/perfectplay/tictactoe-engine/internal/engine"
)

// newTestShell skips readline so execute can be driven directly.
func newTestShell() *Shell {
	return &Shell{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		engine:    engine.New(),
		randomize: false,
		user:      "x",
		bot:       "o",
	}
}

func TestShell_Execute(t *testing.T) {
	t.Run("Empty line does nothing", func(t *testing.T) {
		sh := newTestShell()

		out, err := sh.execute("")

		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("Help lists the commands", func(t *testing.T) {
		sh := newTestShell()

		out, err := sh.execute("help")

		require.NoError(t, err)
		require.Contains(t, out, "set <board>")
	})

	t.Run("Show prints the grid", func(t *testing.T) {
		sh := newTestShell()

		out, err := sh.execute("show")

		require.NoError(t, err)
		require.Contains(t, out, "  abc ")
	})

	t.Run("Exit quits", func(t *testing.T) {
		sh := newTestShell()

		_, err := sh.execute("exit")

		require.ErrorIs(t, err, errQuit)
	})

	t.Run("Unknown input is an illegal move", func(t *testing.T) {
		sh := newTestShell()

		_, err := sh.execute("d4")

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})
}

func TestShell_Set(t *testing.T) {
	t.Run("Valid board replaces the position", func(t *testing.T) {
		sh := newTestShell()

		out, err := sh.execute("set xo..x..o.")

		require.NoError(t, err)
		require.Contains(t, out, "1|xo.|")
	})

	t.Run("Invalid board is refused", func(t *testing.T) {
		sh := newTestShell()

		_, err := sh.execute("set bad")

		require.ErrorIs(t, err, apperror.ErrIllegalBoard)
	})
}

func TestShell_PlayTurn(t *testing.T) {
	t.Run("User move triggers the engine answer", func(t *testing.T) {
		sh := newTestShell()

		// When: the user takes the center
		out, err := sh.execute("b2")

		// Then: the engine has already answered
		require.NoError(t, err)
		require.Contains(t, out, "x")
		require.Equal(t, 1, strings.Count(sh.engine.String(), "o"))
	})

	t.Run("Occupied cell is refused", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("x........"))

		_, err := sh.execute("a1")

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Finished game refuses moves", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("xxx...oo."))

		_, err := sh.execute("c3")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestShell_Hint(t *testing.T) {
	t.Run("Empty board suggests the first cell", func(t *testing.T) {
		sh := newTestShell()

		out, err := sh.execute("hint")

		require.NoError(t, err)
		require.Equal(t, "try a1", out)
	})

	t.Run("Finished game has no hint", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("xxx...oo."))

		_, err := sh.execute("hint")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestShell_Result(t *testing.T) {
	t.Run("User win", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("xxx...oo."))

		assert.Contains(t, sh.result(), "You win")
	})

	t.Run("Engine win", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("ooo...xx."))

		assert.Contains(t, sh.result(), "I win")
	})

	t.Run("Draw", func(t *testing.T) {
		sh := newTestShell()
		require.True(t, sh.engine.Set("xoxxoxoxo"))

		assert.Contains(t, sh.result(), "draw")
	})
}
