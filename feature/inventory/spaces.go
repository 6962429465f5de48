package inventory

import (
	"inventory-reconciler/feature/inventory/spaces"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LoadSpaces loads the space equivalence table. An empty path or a missing
// file yields an empty table, so no token will ever be taken for a space.
func LoadSpaces(fs afero.Fs, path, separator string, l *zap.Logger) (*spaces.Table, error) {
	if path == "" {
		l.Warn("No space equivalence file given; every token will be treated as an item")
		return spaces.New(), nil
	}

	table, err := spaces.Load(fs, path, separator)
	if spaces.IsMissing(err) {
		l.Warn("Space equivalence file not found; every token will be treated as an item", zap.String("path", path))
		return table, nil
	}
	if err != nil {
		return nil, err
	}

	l.Info("Space equivalences loaded", zap.String("path", path), zap.Int("spaces", table.Len()))
	return table, nil
}
