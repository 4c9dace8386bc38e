package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  entity.Move
	}{
		{input: "1 2", want: entity.Move{Row: 1, Col: 2}},
		{input: "0,0", want: entity.Move{Row: 0, Col: 0}},
		{input: " 2, 1 ", want: entity.Move{Row: 2, Col: 1}},
		{input: "5 5", want: entity.Move{Row: 5, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			move, err := ParseMove(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, move)
		})
	}

	for _, input := range []string{"1", "1 2 3", "a b", "1 b", ""} {
		t.Run("Rejects "+input, func(t *testing.T) {
			_, err := ParseMove(input)
			assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		})
	}
}

func TestRender(t *testing.T) {
	board, err := entity.ParseBoard("XO./.X./..O")
	require.NoError(t, err)

	want := "  0 1 2\n" +
		"0 X O .\n" +
		"1 . X .\n" +
		"2 . . O\n"

	assert.Equal(t, want, Render(board))
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Skips blank lines", func(t *testing.T) {
		var out bytes.Buffer
		c := New(strings.NewReader("\n\n1 1\n"), &out)

		move, err := c.ReadMove(context.Background(), entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Contains(t, out.String(), "X to move")
	})

	t.Run("Error on closed input", func(t *testing.T) {
		c := New(strings.NewReader(""), &bytes.Buffer{})

		_, err := c.ReadMove(context.Background(), entity.PlayerO)

		require.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("Error on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := New(strings.NewReader("1 1\n"), &bytes.Buffer{})

		_, err := c.ReadMove(ctx, entity.PlayerX)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Cancel while waiting for input", func(t *testing.T) {
		// Given: a console on input that has nothing to read yet
		reader, writer := io.Pipe()
		defer writer.Close()
		c := New(reader, &bytes.Buffer{})
		ctx, cancel := context.WithCancel(context.Background())

		// When: the context is cancelled while ReadMove waits
		done := make(chan error, 1)
		go func() {
			_, err := c.ReadMove(ctx, entity.PlayerX)
			done <- err
		}()
		time.AfterFunc(20*time.Millisecond, cancel)

		// Then: ReadMove returns without any input
		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			require.FailNow(t, "ReadMove did not return after cancel")
		}

		// And: a line typed afterwards is read by the next call
		go func() { _, _ = writer.Write([]byte("2 2\n")) }()

		move, err := c.ReadMove(context.Background(), entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})
}

func TestConsole_ShowSolution(t *testing.T) {
	t.Run("Ongoing board", func(t *testing.T) {
		var out bytes.Buffer
		board, err := entity.ParseBoard("X../OO./..X")
		require.NoError(t, err)

		New(strings.NewReader(""), &out).ShowSolution(board, 0, entity.Move{Row: 1, Col: 2}, true)

		assert.Contains(t, out.String(), "turn: X\n")
		assert.Contains(t, out.String(), "value: +0\n")
		assert.Contains(t, out.String(), "best move: (1, 2)\n")
	})

	t.Run("Finished board", func(t *testing.T) {
		var out bytes.Buffer
		board, err := entity.ParseBoard("XXX/OO./...")
		require.NoError(t, err)

		New(strings.NewReader(""), &out).ShowSolution(board, 1, entity.Move{}, false)

		assert.Contains(t, out.String(), "outcome: X wins\n")
		assert.Contains(t, out.String(), "value: +1\n")
		assert.NotContains(t, out.String(), "best move")
	})
}
