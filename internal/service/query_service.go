package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// QueryService is the read-only facade over the raw tables. It returns row
// shapes rather than assembled views; FeedService owns the nested views.
type QueryService interface {
	AllUsers(ctx context.Context) ([]*dto.UserResponse, error)
	AllGroups(ctx context.Context) ([]*dto.GroupResponse, error)
	AllPosts(ctx context.Context) ([]*dto.PostRecord, error)
	AllComments(ctx context.Context) ([]*dto.CommentRecord, error)
	AllReactions(ctx context.Context) ([]*dto.ReactionRecord, error)
	PostsByUser(ctx context.Context, userID uint) ([]*dto.PostRecord, error)
	CommentsByPost(ctx context.Context, postID uint) ([]*dto.CommentRecord, error)
	ReactionsByPost(ctx context.Context, postID uint) ([]*dto.ReactionRecord, error)
}

// queryServiceImpl is the implementation of QueryService
type queryServiceImpl struct {
	userRepo     repository.UserRepository
	groupRepo    repository.GroupRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
}

// NewQueryService creates a new instance of QueryService
func NewQueryService(
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
) QueryService {
	return &queryServiceImpl{
		userRepo:     userRepo,
		groupRepo:    groupRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// AllUsers returns every user ordered by ID
func (s *queryServiceImpl) AllUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		resp := toUserResponse(user)
		responses[i] = &resp
	}
	return responses, nil
}

// AllGroups returns every group ordered by ID
func (s *queryServiceImpl) AllGroups(ctx context.Context) ([]*dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}

	responses := make([]*dto.GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = &dto.GroupResponse{
			GroupID: group.ID,
			Name:    group.Name,
		}
	}
	return responses, nil
}

// AllPosts returns every post row, newest first
func (s *queryServiceImpl) AllPosts(ctx context.Context) ([]*dto.PostRecord, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}
	return toPostRecords(posts), nil
}

// AllComments returns every comment row ordered by ID
func (s *queryServiceImpl) AllComments(ctx context.Context) ([]*dto.CommentRecord, error) {
	comments, err := s.commentRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	return toCommentRecords(comments), nil
}

// AllReactions returns every reaction row ordered by ID
func (s *queryServiceImpl) AllReactions(ctx context.Context) ([]*dto.ReactionRecord, error) {
	reactions, err := s.reactionRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reactions", err.Error())
	}
	return toReactionRecords(reactions), nil
}

// PostsByUser returns the raw post rows authored by a user, newest first
func (s *queryServiceImpl) PostsByUser(ctx context.Context, userID uint) ([]*dto.PostRecord, error) {
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
	return toPostRecords(posts), nil
}

// CommentsByPost returns the top-level comment rows of a post
func (s *queryServiceImpl) CommentsByPost(ctx context.Context, postID uint) ([]*dto.CommentRecord, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	return toCommentRecords(comments), nil
}

// ReactionsByPost returns the reaction rows on a post
func (s *queryServiceImpl) ReactionsByPost(ctx context.Context, postID uint) ([]*dto.ReactionRecord, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	reactions, err := s.reactionRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reactions", err.Error())
	}
	return toReactionRecords(reactions), nil
}

func toPostRecords(posts []*domain.Post) []*dto.PostRecord {
	records := make([]*dto.PostRecord, len(posts))
	for i, post := range posts {
		records[i] = &dto.PostRecord{
			PostID:   post.ID,
			Content:  post.Content,
			PostedAt: post.PostedAt.Format(viewTimeLayout),
			AuthorID: post.AuthorID,
			GroupID:  post.GroupID,
		}
	}
	return records
}

func toCommentRecords(comments []*domain.Comment) []*dto.CommentRecord {
	records := make([]*dto.CommentRecord, len(comments))
	for i, comment := range comments {
		records[i] = &dto.CommentRecord{
			CommentID:   comment.ID,
			Content:     comment.Content,
			CommentedAt: comment.CommentedAt.Format(viewTimeLayout),
			AuthorID:    comment.AuthorID,
			PostID:      comment.PostID,
			ParentID:    comment.ParentID,
		}
	}
	return records
}

func toReactionRecords(reactions []*domain.Reaction) []*dto.ReactionRecord {
	records := make([]*dto.ReactionRecord, len(reactions))
	for i, reaction := range reactions {
		records[i] = &dto.ReactionRecord{
			ReactionID: reaction.ID,
			Kind:       reaction.Kind,
			ReactedAt:  reaction.ReactedAt.Format(viewTimeLayout),
			ReactorID:  reaction.ReactorID,
			PostID:     reaction.PostID,
			CommentID:  reaction.CommentID,
		}
	}
	return records
}
