package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
)

func TestReactionRepositoryReplaceForPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.ReplaceForPost(ctx, 1, 9, &domain.Reaction{
		Kind: domain.ReactionWow, ReactedAt: now, ReactorID: 1, PostID: idPtr(9),
	}))
	require.NoError(t, repo.ReplaceForPost(ctx, 1, 9, &domain.Reaction{
		Kind: domain.ReactionSad, ReactedAt: now, ReactorID: 1, PostID: idPtr(9),
	}))

	rows, err := repo.FindByPostID(ctx, 9)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ReactionSad, rows[0].Kind)
	assert.Equal(t, uint(1), rows[0].ReactorID)

	// Another reactor's row on the same post is untouched
	require.NoError(t, repo.ReplaceForPost(ctx, 2, 9, &domain.Reaction{
		Kind: domain.ReactionLove, ReactedAt: now, ReactorID: 2, PostID: idPtr(9),
	}))
	require.NoError(t, repo.ReplaceForPost(ctx, 1, 9, &domain.Reaction{
		Kind: domain.ReactionHaha, ReactedAt: now, ReactorID: 1, PostID: idPtr(9),
	}))

	count, err := repo.CountByPostID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	others, err := repo.FindByReactorID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, domain.ReactionLove, others[0].Kind)
}

func TestReactionRepositoryFindByReactorAndComment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.FindByReactorAndComment(ctx, 1, 4)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Create(ctx, &domain.Reaction{
		Kind: domain.ReactionLit, ReactedAt: now, ReactorID: 1, CommentID: idPtr(4),
	}))

	found, err := repo.FindByReactorAndComment(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionLit, found.Kind)

	// Post reactions by the same user never shadow comment lookups
	require.NoError(t, repo.Create(ctx, &domain.Reaction{
		Kind: domain.ReactionWow, ReactedAt: now, ReactorID: 1, PostID: idPtr(4),
	}))
	found, err = repo.FindByReactorAndComment(ctx, 1, 4)
	require.NoError(t, err)
	require.NotNil(t, found.CommentID)
	assert.Equal(t, uint(4), *found.CommentID)
}

func TestReactionRepositoryScopedLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()
	now := time.Now()

	seed := []*domain.Reaction{
		{Kind: domain.ReactionWow, ReactedAt: now, ReactorID: 1, PostID: idPtr(9)},
		{Kind: domain.ReactionSad, ReactedAt: now, ReactorID: 2, PostID: idPtr(9)},
		{Kind: domain.ReactionLove, ReactedAt: now, ReactorID: 1, CommentID: idPtr(4)},
		{Kind: domain.ReactionHaha, ReactedAt: now, ReactorID: 1, PostID: idPtr(10)},
	}
	for _, r := range seed {
		require.NoError(t, repo.Create(ctx, r))
	}

	byPost, err := repo.FindByPostID(ctx, 9)
	require.NoError(t, err)
	require.Len(t, byPost, 2)
	assert.Equal(t, domain.ReactionWow, byPost[0].Kind)

	byComment, err := repo.FindByCommentID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, byComment, 1)

	byReactor, err := repo.FindByReactorID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byReactor, 3)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
