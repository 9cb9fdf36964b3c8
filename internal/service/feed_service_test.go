package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

func setupFeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Group{},
		&domain.Membership{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Reaction{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newDBFeedService(db *gorm.DB) FeedService {
	return NewFeedService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewReactionRepository(db),
		repository.NewUserRepository(db),
		repository.NewGroupRepository(db),
		repository.NewMembershipRepository(db),
		zap.NewNop(),
	)
}

func uintPtr(v uint) *uint {
	return &v
}

// seedFeedScenario builds a small community:
//
//	users: alice(1) bob(2) carol(3) dave(4)
//	group 1 "hikers": alice admin, bob, carol, dave members
//	posts in group 1: alice authors 1 and 2, bob authors 3
//	post 1: comment 10 by bob (reply 11 by alice), reactions WOW(bob) SAD(carol)
//	comment 10 has a LOVE from carol, reply 11 has a HAHA from bob
//	dave never posts anywhere
func seedFeedScenario(t *testing.T, db *gorm.DB) {
	t.Helper()
	when := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	users := []*domain.User{
		{ID: 1, Name: "alice"},
		{ID: 2, Name: "bob"},
		{ID: 3, Name: "carol"},
		{ID: 4, Name: "dave"},
	}
	for _, u := range users {
		require.NoError(t, db.Create(u).Error)
	}

	require.NoError(t, db.Create(&domain.Group{ID: 1, Name: "hikers"}).Error)
	memberships := []*domain.Membership{
		{GroupID: 1, MemberID: 1, IsAdmin: true},
		{GroupID: 1, MemberID: 2},
		{GroupID: 1, MemberID: 3},
		{GroupID: 1, MemberID: 4},
	}
	for _, m := range memberships {
		require.NoError(t, db.Create(m).Error)
	}

	posts := []*domain.Post{
		{ID: 1, Content: "summit photos", PostedAt: when, AuthorID: 1, GroupID: 1},
		{ID: 2, Content: "trail conditions", PostedAt: when.Add(time.Hour), AuthorID: 1, GroupID: 1},
		{ID: 3, Content: "lost a glove", PostedAt: when.Add(2 * time.Hour), AuthorID: 2, GroupID: 1},
	}
	for _, p := range posts {
		require.NoError(t, db.Create(p).Error)
	}

	require.NoError(t, db.Create(&domain.Comment{
		ID: 10, Content: "great shots", CommentedAt: when.Add(time.Minute),
		AuthorID: 2, PostID: uintPtr(1),
	}).Error)
	require.NoError(t, db.Create(&domain.Comment{
		ID: 11, Content: "thanks!", CommentedAt: when.Add(2 * time.Minute),
		AuthorID: 1, ParentID: uintPtr(10),
	}).Error)

	reactions := []*domain.Reaction{
		{Kind: domain.ReactionWow, ReactedAt: when, ReactorID: 2, PostID: uintPtr(1)},
		{Kind: domain.ReactionSad, ReactedAt: when, ReactorID: 3, PostID: uintPtr(1)},
		{Kind: domain.ReactionLove, ReactedAt: when, ReactorID: 3, CommentID: uintPtr(10)},
		{Kind: domain.ReactionHaha, ReactedAt: when, ReactorID: 2, CommentID: uintPtr(11)},
	}
	for _, r := range reactions {
		require.NoError(t, db.Create(r).Error)
	}
}

func TestGroupFeedFiltersByAuthorNotGroup(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	// Alice also posts in a second group she belongs to. The feed filters by
	// author only, so that post shows up in her group 1 feed too.
	require.NoError(t, db.Create(&domain.Group{ID: 2, Name: "bakers"}).Error)
	require.NoError(t, db.Create(&domain.Membership{GroupID: 2, MemberID: 1}).Error)
	require.NoError(t, db.Create(&domain.Post{
		ID: 4, Content: "sourdough", PostedAt: time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
		AuthorID: 1, GroupID: 2,
	}).Error)
	svc := newDBFeedService(db)

	views, err := svc.GroupFeed(context.Background(), 1, 1, 0, 0)

	require.NoError(t, err)
	require.Len(t, views, 3)
	// Newest first, group 2's post included
	assert.Equal(t, uint(4), views[0].PostID)
	assert.Equal(t, uint(2), views[1].PostID)
	assert.Equal(t, uint(1), views[2].PostID)
	for _, v := range views {
		assert.Equal(t, uint(1), v.PostedBy.UserID)
	}

	bobViews, err := svc.GroupFeed(context.Background(), 2, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, bobViews, 1)
	assert.Equal(t, uint(3), bobViews[0].PostID)
}

func TestGroupFeedNonMemberGetsEmptyFeed(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	require.NoError(t, db.Create(&domain.User{ID: 5, Name: "erin"}).Error)
	svc := newDBFeedService(db)

	views, err := svc.GroupFeed(context.Background(), 5, 1, 0, 0)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGroupFeedMissingUserOrGroup(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	svc := newDBFeedService(db)

	_, err := svc.GroupFeed(context.Background(), 99, 1, 0, 0)
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)

	_, err = svc.GroupFeed(context.Background(), 1, 99, 0, 0)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestGroupFeedWindow(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	svc := newDBFeedService(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		offset  int
		limit   int
		wantIDs []uint
	}{
		{"full feed", 0, 0, []uint{2, 1}},
		{"limit one", 0, 1, []uint{2}},
		{"offset one", 1, 0, []uint{1}},
		{"limit past the end is clamped", 1, 10, []uint{1}},
		{"offset past the end is empty", 5, 2, []uint{}},
		{"negative offset starts at zero", -3, 1, []uint{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.GroupFeed(ctx, 1, 1, tt.offset, tt.limit)
			require.NoError(t, err)
			ids := make([]uint, 0, len(views))
			for _, v := range views {
				ids = append(ids, v.PostID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPostViewNesting(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	svc := newDBFeedService(db)

	view, err := svc.PostView(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "alice", view.PostedBy.Name)
	assert.Equal(t, "2025-05-01 10:00:00", view.PostedAt)
	assert.Equal(t, "summit photos", view.PostContent)

	assert.Equal(t, 2, view.Reactions.Count)
	assert.Equal(t, []domain.ReactionKind{domain.ReactionWow, domain.ReactionSad}, view.Reactions.Type)

	require.Equal(t, 1, view.CommentsCount)
	comment := view.Comments[0]
	assert.Equal(t, uint(10), comment.CommentID)
	assert.Equal(t, "bob", comment.Commenter.Name)
	assert.Equal(t, 1, comment.Reactions.Count)
	assert.Equal(t, []domain.ReactionKind{domain.ReactionLove}, comment.Reactions.Type)

	require.Equal(t, 1, comment.RepliesCount)
	reply := comment.Replies[0]
	assert.Equal(t, uint(11), reply.CommentID)
	assert.Equal(t, "alice", reply.Commenter.Name)
	assert.Equal(t, []domain.ReactionKind{domain.ReactionHaha}, reply.Reactions.Type)
}

func TestPostViewMissingPost(t *testing.T) {
	db := setupFeedTestDB(t)
	svc := newDBFeedService(db)

	_, err := svc.PostView(context.Background(), 42)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestUserPostsAcrossGroups(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	// Alice also posts in a second group
	require.NoError(t, db.Create(&domain.Group{ID: 2, Name: "bakers"}).Error)
	require.NoError(t, db.Create(&domain.Post{
		ID: 4, Content: "sourdough", PostedAt: time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
		AuthorID: 1, GroupID: 2,
	}).Error)
	svc := newDBFeedService(db)

	views, err := svc.UserPosts(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, uint(4), views[0].PostID)
	assert.Equal(t, uint(2), views[1].PostID)
	assert.Equal(t, uint(1), views[2].PostID)
}

func TestPostsWithMoreCommentsThanReactions(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	// Post 2 gets a comment and no reactions; post 1 has 1 comment vs 2
	// reactions, post 3 has neither. Replies do not count as comments.
	require.NoError(t, db.Create(&domain.Comment{
		ID: 12, Content: "icy above the pass", CommentedAt: time.Now(),
		AuthorID: 3, PostID: uintPtr(2),
	}).Error)
	svc := newDBFeedService(db)

	ids, err := svc.PostsWithMoreCommentsThanReactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)
}

func TestPostsWithMorePositiveReactions(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	// Post 1 is tied one WOW against one SAD. Tip post 3 positive and leave
	// post 2 with nothing.
	require.NoError(t, db.Create(&domain.Reaction{
		Kind: domain.ReactionThumbsUp, ReactedAt: time.Now(), ReactorID: 1, PostID: uintPtr(3),
	}).Error)
	svc := newDBFeedService(db)

	posts, err := svc.PostsWithMorePositiveReactions(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 1)
	// Full rows come back, not bare IDs
	assert.Equal(t, uint(3), posts[0].PostID)
	assert.Equal(t, "lost a glove", posts[0].Content)
	assert.Equal(t, uint(2), posts[0].AuthorID)
	assert.Equal(t, uint(1), posts[0].GroupID)
}

func TestSilentGroupMembers(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	svc := newDBFeedService(db)

	silent, err := svc.SilentGroupMembers(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, silent, 2)
	// Carol only comments and reacts, dave does nothing. Both count as
	// silent because neither authored a post.
	assert.Equal(t, "carol", silent[0].Name)
	assert.Equal(t, "dave", silent[1].Name)
}

func TestSilentGroupMembersCountsPostsAnywhere(t *testing.T) {
	db := setupFeedTestDB(t)
	seedFeedScenario(t, db)
	// Dave posts in a different group, so he is no longer silent in group 1
	require.NoError(t, db.Create(&domain.Group{ID: 2, Name: "bakers"}).Error)
	require.NoError(t, db.Create(&domain.Membership{GroupID: 2, MemberID: 4}).Error)
	require.NoError(t, db.Create(&domain.Post{
		ID: 5, Content: "first bake", PostedAt: time.Now(), AuthorID: 4, GroupID: 2,
	}).Error)
	svc := newDBFeedService(db)

	silent, err := svc.SilentGroupMembers(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, silent, 1)
	assert.Equal(t, "carol", silent[0].Name)
}
