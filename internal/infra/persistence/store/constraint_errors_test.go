package store

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_owners_email" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("constraint failed: UNIQUE constraint failed: owners.email (2067)")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint (SQLSTATE 23502)`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: items.title")))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
