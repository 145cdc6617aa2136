package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/require"
)

func TestGormGameRepository(t *testing.T) {
	testGameRepository(t, func(t *testing.T) (context.Context, GameRepository) {
		ctx, st := suite.NewPostgres(t)

		repo, err := NewGormGameRepository(ctx, st.DB)
		require.NoError(t, err)

		return ctx, repo
	})
}
