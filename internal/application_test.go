package application

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

const diagonalWin = "(0, 0)\n(0, 1)\n(1, 1)\n(1, 0)\n(2, 2)\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a game without recording", func(t *testing.T) {
		// Given: redis recording disabled
		conf := &config.Config{LogLevel: "info"}
		out := &bytes.Buffer{}

		// When: a full game is played
		err := RunApp(discardLogger(), conf, strings.NewReader(diagonalWin), out)

		// Then: the game finishes normally
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X has won!\nThanks for playing!\n")
	})

	t.Run("Closed input is a normal quit", func(t *testing.T) {
		conf := &config.Config{LogLevel: "info"}

		err := RunApp(discardLogger(), conf, strings.NewReader("(1, 1)\n"), &bytes.Buffer{})

		require.NoError(t, err)
	})

	t.Run("Empty redis address", func(t *testing.T) {
		// Given: recording enabled without an address
		conf := &config.Config{Redis: config.Redis{Enabled: true}}

		// When: the app starts
		err := RunApp(discardLogger(), conf, strings.NewReader(diagonalWin), &bytes.Buffer{})

		// Then: ErrAddrNotFound should be returned
		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unreachable redis", func(t *testing.T) {
		// Given: recording enabled with nothing listening on the port
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := listener.Addr().String()
		require.NoError(t, listener.Close())

		host, port, err := net.SplitHostPort(addr)
		require.NoError(t, err)
		conf := &config.Config{Redis: config.Redis{Enabled: true, Host: host, Port: port}}

		// When: the app starts
		err = RunApp(discardLogger(), conf, strings.NewReader(diagonalWin), &bytes.Buffer{})

		// Then: the connection error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis storage")
	})
}

func TestRunApp_RecordsResult(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: recording enabled against the test redis
	host, port, err := net.SplitHostPort(st.Storage.Options().Addr)
	require.NoError(t, err)

	conf := &config.Config{
		LogLevel: "debug",
		Redis: config.Redis{
			Enabled:     true,
			Host:        host,
			Port:        port,
			ResultsKey:  "app-test",
			HistorySize: 10,
		},
	}

	// When: a full game is played
	err = RunApp(st.Logger, conf, strings.NewReader(diagonalWin), &bytes.Buffer{})
	require.NoError(t, err)

	// Then: the result can be read back
	results, err := repository.NewResultRepository(st.Storage, "app-test", 10).ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "X", results[0].Winner)
	assert.Equal(t, 5, results[0].MoveCount)
	assert.NotEmpty(t, results[0].ID)
}
