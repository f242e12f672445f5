package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/locrecipe"
)

// Ensure FileStore implements locrecipe.RecipeStore at compile time.
var _ locrecipe.RecipeStore = (*FileStore)(nil)

// FileStore implements locrecipe.RecipeStore with atomic update semantics.
// Recipes are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes recipe to the temporary directory.
func (s *FileStore) Save(ctx context.Context, recipe *locrecipe.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := recipe.Validate(); err != nil {
		return err
	}

	relPath, err := RecipePath(recipe)
	if err != nil {
		return err
	}

	content, err := FormatRecipe(recipe)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the output directory with everything saved so far.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
