package locrecipe_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&locrecipe.Recipe{SourceURL: "https://example.com/soup", Title: "Soup"}).Validate())

	err := (&locrecipe.Recipe{Title: "Soup"}).Validate()
	assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))

	err = (&locrecipe.Recipe{SourceURL: "https://example.com/soup"}).Validate()
	assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))
}

func TestToRecipe(t *testing.T) {
	t.Parallel()

	t.Run("copies every field", func(t *testing.T) {
		t.Parallel()

		total, count := 40, 10
		s := &mock.Scraper{
			HostFn:             func() string { return "example.com" },
			TitleFn:            func() (string, error) { return "Tomato Soup", nil },
			TotalTimeFn:        func() (*int, error) { return &total, nil },
			IngredientsFn:      func() ([]string, error) { return []string{"4 tomatoes"}, nil },
			InstructionsListFn: func() ([]string, error) { return []string{"Chop.", "Simmer."}, nil },
			RatingsFn:          func() (float64, error) { return 4.5, nil },
			RatingsCountFn:     func() (*int, error) { return &count, nil },
			KeywordsFn:         func() ([]string, error) { return []string{"soup"}, nil },
		}

		got, err := locrecipe.ToRecipe(s, "https://example.com/soup")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/soup", got.SourceURL)
		assert.Equal(t, "example.com", got.Host)
		assert.Equal(t, "Tomato Soup", got.Title)
		assert.Equal(t, &total, got.TotalTime)
		assert.Equal(t, []string{"4 tomatoes"}, got.Ingredients)
		assert.Equal(t, []string{"Chop.", "Simmer."}, got.InstructionsList)
		require.NotNil(t, got.Ratings)
		assert.InDelta(t, 4.5, *got.Ratings, 1e-9)
		assert.Equal(t, &count, got.RatingsCount)
		assert.Equal(t, []string{"soup"}, got.Keywords)
	})

	t.Run("leaves absent fields empty", func(t *testing.T) {
		t.Parallel()

		s := &mock.Scraper{
			HostFn:  func() string { return "example.com" },
			TitleFn: func() (string, error) { return "Tomato Soup", nil },
			YieldsFn: func() (string, error) {
				return "", locrecipe.Errorf(locrecipe.ENOTPROVIDED, "yields not provided")
			},
		}

		got, err := locrecipe.ToRecipe(s, "https://example.com/soup")

		require.NoError(t, err)
		assert.Empty(t, got.Yields)
		assert.Empty(t, got.Author)
		assert.Nil(t, got.Ratings)
		assert.Nil(t, got.Ingredients)
	})

	t.Run("drops fields that cannot be interpreted", func(t *testing.T) {
		t.Parallel()

		prep := 15
		s := &mock.Scraper{
			TitleFn: func() (string, error) { return "Tomato Soup", nil },
			CookTimeFn: func() (*int, error) {
				return nil, locrecipe.Errorf(locrecipe.EINVALID, "unrecognized duration %q", "overnight")
			},
			PrepTimeFn: func() (*int, error) { return &prep, nil },
		}

		got, err := locrecipe.ToRecipe(s, "https://example.com/soup")

		require.NoError(t, err)
		assert.Equal(t, "Tomato Soup", got.Title)
		assert.Nil(t, got.CookTime)
		assert.Equal(t, &prep, got.PrepTime)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		t.Parallel()

		s := &mock.Scraper{
			TitleFn: func() (string, error) { return "Tomato Soup", nil },
			CookTimeFn: func() (*int, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := locrecipe.ToRecipe(s, "https://example.com/soup")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cook_time: boom")
	})
}
