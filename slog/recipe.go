package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locrecipe"
)

// Ensure LoggingRecipeService implements locrecipe.RecipeService.
var _ locrecipe.RecipeService = (*LoggingRecipeService)(nil)

// LoggingRecipeService wraps a RecipeService with debug logging.
type LoggingRecipeService struct {
	next   locrecipe.RecipeService
	logger *slog.Logger
}

// NewLoggingRecipeService creates a new LoggingRecipeService.
func NewLoggingRecipeService(next locrecipe.RecipeService, logger *slog.Logger) *LoggingRecipeService {
	return &LoggingRecipeService{next: next, logger: logger}
}

func (s *LoggingRecipeService) CreateRecipe(ctx context.Context, recipe *locrecipe.Recipe) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create recipe",
			"url", recipe.SourceURL,
			"id", recipe.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecipe(ctx, recipe)
}

func (s *LoggingRecipeService) FindRecipeByID(ctx context.Context, id string) (recipe *locrecipe.Recipe, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find recipe",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecipeByID(ctx, id)
}

func (s *LoggingRecipeService) FindRecipes(ctx context.Context, filter locrecipe.RecipeFilter) (recipes []*locrecipe.Recipe, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find recipes",
			"count", len(recipes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecipes(ctx, filter)
}

func (s *LoggingRecipeService) DeleteRecipe(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete recipe",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecipe(ctx, id)
}
