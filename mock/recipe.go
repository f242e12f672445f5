package mock

import (
	"context"

	"github.com/fwojciec/locrecipe"
)

var (
	_ locrecipe.RecipeService = (*RecipeService)(nil)
	_ locrecipe.RecipeStore   = (*RecipeStore)(nil)
)

// RecipeService is a mock implementation of locrecipe.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, recipe *locrecipe.Recipe) error
	FindRecipeByIDFn func(ctx context.Context, id string) (*locrecipe.Recipe, error)
	FindRecipesFn    func(ctx context.Context, filter locrecipe.RecipeFilter) ([]*locrecipe.Recipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *locrecipe.Recipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*locrecipe.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter locrecipe.RecipeFilter) ([]*locrecipe.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}

// RecipeStore is a mock implementation of locrecipe.RecipeStore.
type RecipeStore struct {
	SaveFn   func(ctx context.Context, recipe *locrecipe.Recipe) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecipeStore) Save(ctx context.Context, recipe *locrecipe.Recipe) error {
	return s.SaveFn(ctx, recipe)
}

func (s *RecipeStore) Commit() error {
	return s.CommitFn()
}

func (s *RecipeStore) Abort() error {
	return s.AbortFn()
}
