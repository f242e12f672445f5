package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/locrecipe/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateRecipe measures inserts as performed by a batch scrape.
func BenchmarkCreateRecipe(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewRecipeService(db)
	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r := newRecipe(fmt.Sprintf("https://example.com/recipes/%d", i), fmt.Sprintf("Recipe %d", i))
		r.InstructionsList = []string{"Chop.", "Simmer."}
		r.Nutrients = map[string]string{"calories": "120 kcal"}
		if err := svc.CreateRecipe(ctx, r); err != nil {
			b.Fatal(err)
		}
	}
}
