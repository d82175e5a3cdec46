package persistent

import (
	"testing"

	"vidtube/internal/entity"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapNotFound(t *testing.T) {
	assert.ErrorIs(t, mapNotFound(gorm.ErrRecordNotFound), entity.ErrNotFound)
	assert.ErrorIs(t, mapNotFound(assert.AnError), assert.AnError)
	assert.NoError(t, mapNotFound(nil))
}

func TestMapConflict(t *testing.T) {
	assert.ErrorIs(t, mapConflict(gorm.ErrDuplicatedKey), entity.ErrConflict)
	assert.ErrorIs(t, mapConflict(assert.AnError), assert.AnError)
	assert.NoError(t, mapConflict(nil))
}
