package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
)

var testMessages = ConstraintMessages{
	"positive_weight": "weight must be positive",
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Translate(nil, testMessages))
	})

	t.Run("record not found becomes NotFound", func(t *testing.T) {
		err := Translate(gorm.ErrRecordNotFound, testMessages)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("postgres check violation carries constraint name and message", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "positive_weight"}

		err := Translate(pgErr, testMessages)

		var cv *apperr.ConstraintViolation
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "positive_weight", cv.Constraint)
		assert.Equal(t, "weight must be positive", cv.Error())
	})

	t.Run("postgres unique violation becomes constraint violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uni_users_email"}

		err := Translate(pgErr, nil)

		var cv *apperr.ConstraintViolation
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "uni_users_email", cv.Constraint)
	})

	t.Run("unknown postgres error passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "57014"}
		assert.Equal(t, error(pgErr), Translate(pgErr, testMessages))
	})

	t.Run("gorm translated sentinels become constraint violations", func(t *testing.T) {
		for _, in := range []error{gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated, gorm.ErrCheckConstraintViolated} {
			var cv *apperr.ConstraintViolation
			assert.ErrorAs(t, Translate(in, testMessages), &cv)
		}
	})

	t.Run("sqlite check message yields constraint name", func(t *testing.T) {
		in := errors.New("constraint failed: CHECK constraint failed: positive_weight")

		err := Translate(in, testMessages)

		var cv *apperr.ConstraintViolation
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "positive_weight", cv.Constraint)
		assert.Equal(t, "weight must be positive", cv.Error())
	})

	t.Run("unrelated error passes through", func(t *testing.T) {
		in := errors.New("connection reset")
		assert.Equal(t, in, Translate(in, testMessages))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
