package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/mock"
	locslog "github.com/fwojciec/locrecipe/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecipeService(t *testing.T) {
	t.Parallel()

	t.Run("logs created recipe", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, r *locrecipe.Recipe) error {
				r.ID = "abc"
				return nil
			},
		}

		svc := locslog.NewLoggingRecipeService(inner, logger)
		err := svc.CreateRecipe(context.Background(), &locrecipe.Recipe{SourceURL: "https://example.com/soup", Title: "Soup"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create recipe")
		assert.Contains(t, output, "url=https://example.com/soup")
		assert.Contains(t, output, "id=abc")
	})

	t.Run("logs delete errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecipeService{
			DeleteRecipeFn: func(_ context.Context, id string) error {
				return locrecipe.Errorf(locrecipe.ENOTFOUND, "recipe not found")
			},
		}

		err := locslog.NewLoggingRecipeService(inner, logger).DeleteRecipe(context.Background(), "missing")

		assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))
		assert.Contains(t, buf.String(), "id=missing")
	})

	t.Run("returns found recipes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		want := []*locrecipe.Recipe{{ID: "1"}, {ID: "2"}}
		inner := &mock.RecipeService{
			FindRecipesFn: func(_ context.Context, _ locrecipe.RecipeFilter) ([]*locrecipe.Recipe, error) {
				return want, nil
			},
			FindRecipeByIDFn: func(_ context.Context, id string) (*locrecipe.Recipe, error) {
				return want[0], nil
			},
		}

		svc := locslog.NewLoggingRecipeService(inner, logger)
		got, err := svc.FindRecipes(context.Background(), locrecipe.RecipeFilter{})
		require.NoError(t, err)
		assert.Equal(t, want, got)

		one, err := svc.FindRecipeByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, want[0], one)

		assert.Contains(t, buf.String(), "count=2")
	})
}
