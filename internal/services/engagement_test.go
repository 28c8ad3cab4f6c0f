package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/poetree/internal/models"
	"github.com/sbilibin2017/poetree/internal/repositories"
	"github.com/sbilibin2017/poetree/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engagementDeps struct {
	engagements *services.MockEngagementRepository
	poems       *services.MockPoemRepository
	comments    *services.MockCommentRepository
	publisher   *services.MockEventPublisher
	svc         *services.EngagementService
}

func newEngagementDeps(t *testing.T) *engagementDeps {
	ctrl := gomock.NewController(t)
	d := &engagementDeps{
		engagements: services.NewMockEngagementRepository(ctrl),
		poems:       services.NewMockPoemRepository(ctrl),
		comments:    services.NewMockCommentRepository(ctrl),
		publisher:   services.NewMockEventPublisher(ctrl),
	}
	d.svc = services.NewEngagementService(d.engagements, d.poems, d.comments, d.publisher, passthroughTx(ctrl))
	return d
}

func TestEngagementService_LikePoemIsIdempotent(t *testing.T) {
	d := newEngagementDeps(t)
	ctx := context.Background()
	me, poemID := uuid.New(), uuid.New()

	d.poems.EXPECT().Exists(gomock.Any(), poemID).Return(true, nil).Times(2)
	gomock.InOrder(
		d.engagements.EXPECT().LikePoem(gomock.Any(), me, poemID).Return(true, nil),
		d.engagements.EXPECT().LikePoem(gomock.Any(), me, poemID).Return(false, nil),
	)
	d.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, e models.EngagementEvent) {
			assert.Equal(t, models.EventPoemLiked, e.Type)
			assert.Equal(t, me.String(), e.UserID)
			assert.Equal(t, poemID.String(), e.TargetID)
			assert.NotEmpty(t, e.EventID)
		}).
		Times(1)

	created, err := d.svc.LikePoem(ctx, me, poemID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = d.svc.LikePoem(ctx, me, poemID)
	require.NoError(t, err)
	assert.False(t, created, "second like is a no-op")
}

func TestEngagementService_PoemActions(t *testing.T) {
	me, poemID := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		expect    func(e *services.MockEngagementRepositoryMockRecorder) *gomock.Call
		call      func(svc *services.EngagementService) (bool, error)
		eventType string
	}{
		{
			name: "bookmark",
			expect: func(e *services.MockEngagementRepositoryMockRecorder) *gomock.Call {
				return e.BookmarkPoem(gomock.Any(), me, poemID)
			},
			call: func(svc *services.EngagementService) (bool, error) {
				return svc.BookmarkPoem(context.Background(), me, poemID)
			},
			eventType: models.EventPoemBookmarked,
		},
		{
			name: "read",
			expect: func(e *services.MockEngagementRepositoryMockRecorder) *gomock.Call {
				return e.MarkPoemRead(gomock.Any(), me, poemID)
			},
			call: func(svc *services.EngagementService) (bool, error) {
				return svc.MarkPoemRead(context.Background(), me, poemID)
			},
			eventType: models.EventPoemRead,
		},
		{
			name: "unlike",
			expect: func(e *services.MockEngagementRepositoryMockRecorder) *gomock.Call {
				return e.UnlikePoem(gomock.Any(), me, poemID)
			},
			call: func(svc *services.EngagementService) (bool, error) {
				return svc.UnlikePoem(context.Background(), me, poemID)
			},
		},
		{
			name: "unbookmark",
			expect: func(e *services.MockEngagementRepositoryMockRecorder) *gomock.Call {
				return e.UnbookmarkPoem(gomock.Any(), me, poemID)
			},
			call: func(svc *services.EngagementService) (bool, error) {
				return svc.UnbookmarkPoem(context.Background(), me, poemID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newEngagementDeps(t)
			d.poems.EXPECT().Exists(gomock.Any(), poemID).Return(true, nil)
			tt.expect(d.engagements.EXPECT()).Return(true, nil)
			if tt.eventType != "" {
				d.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Do(func(ctx context.Context, e models.EngagementEvent) {
						assert.Equal(t, tt.eventType, e.Type)
					})
			}

			changed, err := tt.call(d.svc)
			require.NoError(t, err)
			assert.True(t, changed)
		})
	}
}

func TestEngagementService_MissingTargets(t *testing.T) {
	ctx := context.Background()
	me, id := uuid.New(), uuid.New()

	t.Run("poem", func(t *testing.T) {
		d := newEngagementDeps(t)
		d.poems.EXPECT().Exists(gomock.Any(), id).Return(false, nil)

		_, err := d.svc.LikePoem(ctx, me, id)
		assertKind(t, err, services.ErrNotFound, "poem not found")
	})

	t.Run("poem deleted between check and insert", func(t *testing.T) {
		d := newEngagementDeps(t)
		d.poems.EXPECT().Exists(gomock.Any(), id).Return(true, nil)
		d.engagements.EXPECT().BookmarkPoem(gomock.Any(), me, id).Return(false, repositories.ErrForeignKey)

		_, err := d.svc.BookmarkPoem(ctx, me, id)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("comment", func(t *testing.T) {
		d := newEngagementDeps(t)
		d.comments.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := d.svc.LikeComment(ctx, me, id)
		assertKind(t, err, services.ErrNotFound, "comment not found")
	})
}

func TestEngagementService_CommentLikes(t *testing.T) {
	d := newEngagementDeps(t)
	ctx := context.Background()
	me, id := uuid.New(), uuid.New()
	comment := &models.Comment{ID: id, CreatedAt: time.Now(), AuthorID: uuid.New(), PoemID: uuid.New()}

	d.comments.EXPECT().GetByID(gomock.Any(), id).Return(comment, nil).Times(2)
	d.engagements.EXPECT().LikeComment(gomock.Any(), me, id).Return(true, nil)
	d.engagements.EXPECT().UnlikeComment(gomock.Any(), me, id).Return(false, nil)
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	liked, err := d.svc.LikeComment(ctx, me, id)
	require.NoError(t, err)
	assert.True(t, liked)

	removed, err := d.svc.UnlikeComment(ctx, me, id)
	require.NoError(t, err)
	assert.False(t, removed)
}
