package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/require"
)

func TestRedisGameRepository(t *testing.T) {
	testGameRepository(t, func(t *testing.T) (context.Context, GameRepository) {
		ctx, st := suite.New(t)

		return ctx, NewRedisGameRepository(st.Storage)
	})
}

func TestParseCellField(t *testing.T) {
	row, col, err := parseCellField(cellField(12, 3))
	require.NoError(t, err)
	require.Equal(t, 12, row)
	require.Equal(t, 3, col)

	for _, field := range []string{"12", "a:3", "3:b", ""} {
		_, _, err = parseCellField(field)
		require.Error(t, err, field)
	}
}
