package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// FeedService assembles fully nested post views and the derived listings
// built on top of them.
type FeedService interface {
	GroupFeed(ctx context.Context, userID, groupID uint, offset, limit int) ([]*dto.PostView, error)
	PostView(ctx context.Context, postID uint) (*dto.PostView, error)
	UserPosts(ctx context.Context, userID uint) ([]*dto.PostView, error)
	PostsWithMoreCommentsThanReactions(ctx context.Context) ([]uint, error)
	PostsWithMorePositiveReactions(ctx context.Context) ([]*dto.PostRecord, error)
	SilentGroupMembers(ctx context.Context, groupID uint) ([]*dto.UserResponse, error)
}

// feedServiceImpl is the implementation of FeedService
type feedServiceImpl struct {
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	reactionRepo   repository.ReactionRepository
	userRepo       repository.UserRepository
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	logger         *zap.Logger
}

// NewFeedService creates a new instance of FeedService
func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	logger *zap.Logger,
) FeedService {
	return &feedServiceImpl{
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		reactionRepo:   reactionRepo,
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// GroupFeed returns the requester's own posts as nested views. The filter is
// by author only, not by group, so the requester's posts from other groups
// appear in the result; the group gates access, not content. A requester who
// is not a member gets an empty feed, not an error. The offset/limit window
// is applied after the views are assembled and clamped to the slice bounds.
func (s *feedServiceImpl) GroupFeed(ctx context.Context, userID, groupID uint, offset, limit int) ([]*dto.PostView, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	exists, err = s.groupRepo.Exists(ctx, groupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify group", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Group not found", "")
	}

	if _, err := s.membershipRepo.FindByGroupAndMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*dto.PostView{}, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	posts, err := s.postRepo.FindByAuthorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	users := newUserCache(s.userRepo)
	views := make([]*dto.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildPostView(ctx, post, users)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return windowViews(views, offset, limit), nil
}

// PostView assembles the fully nested view for a single post
func (s *feedServiceImpl) PostView(ctx context.Context, postID uint) (*dto.PostView, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	return s.buildPostView(ctx, post, newUserCache(s.userRepo))
}

// UserPosts assembles nested views for every post authored by the user,
// newest first.
func (s *feedServiceImpl) UserPosts(ctx context.Context, userID uint) ([]*dto.PostView, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	posts, err := s.postRepo.FindByAuthorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	users := newUserCache(s.userRepo)
	views := make([]*dto.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildPostView(ctx, post, users)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// PostsWithMoreCommentsThanReactions returns the IDs of posts whose
// top-level comment count strictly exceeds their reaction count.
func (s *feedServiceImpl) PostsWithMoreCommentsThanReactions(ctx context.Context) ([]uint, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	ids := make([]uint, 0)
	for _, post := range posts {
		comments, err := s.commentRepo.CountByPostID(ctx, post.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
		}
		reactions, err := s.reactionRepo.CountByPostID(ctx, post.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count reactions", err.Error())
		}
		if comments > reactions {
			ids = append(ids, post.ID)
		}
	}
	return ids, nil
}

// PostsWithMorePositiveReactions returns the post records where positive
// reactions strictly outnumber negative ones. Unlike the comment-count
// listing this one returns full rows, not bare IDs.
func (s *feedServiceImpl) PostsWithMorePositiveReactions(ctx context.Context) ([]*dto.PostRecord, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	matching := make([]*domain.Post, 0)
	for _, post := range posts {
		reactions, err := s.reactionRepo.FindByPostID(ctx, post.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reactions", err.Error())
		}

		var positive, negative int
		for _, reaction := range reactions {
			switch {
			case reaction.Kind.IsPositive():
				positive++
			case reaction.Kind.IsNegative():
				negative++
			}
		}
		if positive > negative {
			matching = append(matching, post)
		}
	}
	return toPostRecords(matching), nil
}

// SilentGroupMembers lists the members of a group who have never authored a
// post anywhere.
func (s *feedServiceImpl) SilentGroupMembers(ctx context.Context, groupID uint) ([]*dto.UserResponse, error) {
	exists, err := s.groupRepo.Exists(ctx, groupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify group", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Group not found", "")
	}

	memberships, err := s.membershipRepo.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	silentIDs := make([]uint, 0)
	for _, membership := range memberships {
		count, err := s.postRepo.CountByAuthorID(ctx, membership.MemberID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count posts", err.Error())
		}
		if count == 0 {
			silentIDs = append(silentIDs, membership.MemberID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, silentIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}
	byID := make(map[uint]*domain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	// Membership order, not whatever order the batch lookup returned
	silent := make([]*dto.UserResponse, 0, len(silentIDs))
	for _, id := range silentIDs {
		user, ok := byID[id]
		if !ok {
			continue
		}
		resp := toUserResponse(user)
		silent = append(silent, &resp)
	}
	return silent, nil
}

// buildPostView assembles one post with its comments, one level of replies,
// and reaction summaries at every level.
func (s *feedServiceImpl) buildPostView(ctx context.Context, post *domain.Post, users *userCache) (*dto.PostView, error) {
	author, err := users.get(ctx, post.AuthorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post author", err.Error())
	}

	postReactions, err := s.reactionRepo.FindByPostID(ctx, post.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post reactions", err.Error())
	}

	comments, err := s.commentRepo.FindByPostID(ctx, post.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	commentViews := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		commenter, err := users.get(ctx, comment.AuthorID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch commenter", err.Error())
		}

		commentReactions, err := s.reactionRepo.FindByCommentID(ctx, comment.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment reactions", err.Error())
		}

		replies, err := s.commentRepo.FindByParentID(ctx, comment.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch replies", err.Error())
		}

		replyViews := make([]dto.ReplyView, 0, len(replies))
		for _, reply := range replies {
			replier, err := users.get(ctx, reply.AuthorID)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch replier", err.Error())
			}

			replyReactions, err := s.reactionRepo.FindByCommentID(ctx, reply.ID)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reply reactions", err.Error())
			}

			replyViews = append(replyViews, dto.ReplyView{
				CommentID:      reply.ID,
				Commenter:      toUserResponse(replier),
				CommentedAt:    reply.CommentedAt.Format(viewTimeLayout),
				CommentContent: reply.Content,
				Reactions:      summarizeReactions(replyReactions),
			})
		}

		commentViews = append(commentViews, dto.CommentView{
			CommentID:      comment.ID,
			Commenter:      toUserResponse(commenter),
			CommentedAt:    comment.CommentedAt.Format(viewTimeLayout),
			CommentContent: comment.Content,
			Reactions:      summarizeReactions(commentReactions),
			RepliesCount:   len(replyViews),
			Replies:        replyViews,
		})
	}

	return &dto.PostView{
		PostID:        post.ID,
		PostedBy:      toUserResponse(author),
		PostedAt:      post.PostedAt.Format(viewTimeLayout),
		PostContent:   post.Content,
		Reactions:     summarizeReactions(postReactions),
		Comments:      commentViews,
		CommentsCount: len(commentViews),
	}, nil
}

// windowViews applies [offset:offset+limit] clamped to the slice bounds.
// A non-positive limit means no upper bound.
func windowViews(views []*dto.PostView, offset, limit int) []*dto.PostView {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(views) {
		return []*dto.PostView{}
	}
	end := len(views)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return views[offset:end]
}

// userCache memoizes user lookups within a single feed assembly
type userCache struct {
	repo  repository.UserRepository
	users map[uint]*domain.User
}

func newUserCache(repo repository.UserRepository) *userCache {
	return &userCache{repo: repo, users: make(map[uint]*domain.User)}
}

func (c *userCache) get(ctx context.Context, id uint) (*domain.User, error) {
	if user, ok := c.users[id]; ok {
		return user, nil
	}
	user, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.users[id] = user
	return user, nil
}
