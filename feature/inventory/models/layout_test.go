package models_test

import (
	"testing"

	"inventory-reconciler/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestLayout_WithDefaults(t *testing.T) {
	t.Run("EscapedSeparator", func(t *testing.T) {
		l := models.Layout{Separator: `\t`}.WithDefaults()
		assert.Equal(t, "\t", l.Separator)
		assert.Equal(t, models.DefaultLayout(), l)
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, models.DefaultLayout(), models.Layout{}.WithDefaults())
	})

	t.Run("CustomPositions", func(t *testing.T) {
		l := models.Layout{Separator: ";", Date: 2, Number: 4, Space: 9, Label: 10}.WithDefaults()
		assert.Equal(t, ";", l.Separator)
		assert.Equal(t, 11, l.Columns)
		assert.Equal(t, 0, l.RawDate())
	})
}
