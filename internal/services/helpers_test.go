package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
)

var errDB = errors.New("db error")

func ptr[T any](v T) *T { return &v }

// passthroughTx runs the unit of work directly.
func passthroughTx(ctrl *gomock.Controller) *services.MockTransactor {
	tx := services.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func assertKind(t *testing.T, err, kind error, msg string) {
	t.Helper()
	assert.ErrorIs(t, err, kind)
	if msg != "" {
		assert.EqualError(t, err, msg)
	}
}

func userRow(id uuid.UUID, email, hash string) *models.User {
	now := time.Now().UTC()
	return &models.User{ID: id, CreatedAt: now, UpdatedAt: now, Email: email, PasswordHash: hash}
}
