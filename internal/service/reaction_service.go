package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/metrics"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// ReactionService defines the interface for reaction business logic.
//
// Post reactions use replace semantics: reacting always rewrites the row and
// its timestamp, even for the same kind. Comment reactions use toggle
// semantics: the same kind un-reacts, a different kind updates in place.
type ReactionService interface {
	ReactToPost(ctx context.Context, postID uint, req *dto.ReactRequest) error
	ReactToComment(ctx context.Context, commentID uint, req *dto.ReactRequest) error
	ReactionTally(ctx context.Context, postID uint) (*dto.ReactionTallyResponse, error)
	TotalReactionCount(ctx context.Context) (*dto.TotalReactionCountResponse, error)
	Reactors(ctx context.Context, postID uint) ([]*dto.ReactorResponse, error)
	PostsReactedByUser(ctx context.Context, userID uint) ([]uint, error)
}

// reactionServiceImpl is the implementation of ReactionService
type reactionServiceImpl struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewReactionService creates a new instance of ReactionService
func NewReactionService(
	reactionRepo repository.ReactionRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// ReactToPost records a user's reaction to a post with replace semantics
func (s *reactionServiceImpl) ReactToPost(ctx context.Context, postID uint, req *dto.ReactRequest) error {
	if !req.Kind.IsValid() {
		return response.NewAppError(response.ErrCodeValidation, "Invalid reaction kind", string(req.Kind))
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	fresh := &domain.Reaction{
		Kind:      req.Kind,
		ReactedAt: s.now(),
		ReactorID: req.UserID,
		PostID:    &postID,
	}
	if err := s.reactionRepo.ReplaceForPost(ctx, req.UserID, postID, fresh); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to record reaction", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementReactionRecorded()
	}

	return nil
}

// ReactToComment records a user's reaction to a comment with toggle semantics
func (s *reactionServiceImpl) ReactToComment(ctx context.Context, commentID uint, req *dto.ReactRequest) error {
	if !req.Kind.IsValid() {
		return response.NewAppError(response.ErrCodeValidation, "Invalid reaction kind", string(req.Kind))
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	existing, err := s.reactionRepo.FindByReactorAndComment(ctx, req.UserID, commentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeInternal, "Failed to check existing reaction", err.Error())
		}

		// First reaction by this user on this comment
		fresh := &domain.Reaction{
			Kind:      req.Kind,
			ReactedAt: s.now(),
			ReactorID: req.UserID,
			CommentID: &commentID,
		}
		if err := s.reactionRepo.Create(ctx, fresh); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to record reaction", err.Error())
		}

		if s.metrics != nil {
			s.metrics.IncrementReactionRecorded()
		}
		return nil
	}

	if existing.Kind == req.Kind {
		// Same kind toggles the reaction off
		if err := s.reactionRepo.Delete(ctx, existing.ID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to remove reaction", err.Error())
		}
		return nil
	}

	existing.Kind = req.Kind
	existing.ReactedAt = s.now()
	if err := s.reactionRepo.Update(ctx, existing); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update reaction", err.Error())
	}

	return nil
}

// ReactionTally returns per-kind counts for a post. Every kind appears in
// the result, zero-valued when absent.
func (s *reactionServiceImpl) ReactionTally(ctx context.Context, postID uint) (*dto.ReactionTallyResponse, error) {
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

	counts := make(map[domain.ReactionKind]int64, len(domain.AllReactionKinds()))
	for _, kind := range domain.AllReactionKinds() {
		counts[kind] = 0
	}
	for _, reaction := range reactions {
		counts[reaction.Kind]++
	}

	return &dto.ReactionTallyResponse{PostID: postID, Counts: counts}, nil
}

// TotalReactionCount returns the unfiltered number of reaction rows
func (s *reactionServiceImpl) TotalReactionCount(ctx context.Context) (*dto.TotalReactionCountResponse, error) {
	count, err := s.reactionRepo.CountAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count reactions", err.Error())
	}
	return &dto.TotalReactionCountResponse{Count: count}, nil
}

// Reactors lists who reacted to a post and with what kind, in reaction order
func (s *reactionServiceImpl) Reactors(ctx context.Context, postID uint) ([]*dto.ReactorResponse, error) {
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

	reactors := make([]*dto.ReactorResponse, 0, len(reactions))
	for _, reaction := range reactions {
		user, err := s.userRepo.FindByID(ctx, reaction.ReactorID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reactor", err.Error())
		}
		reactors = append(reactors, &dto.ReactorResponse{
			UserID:     user.ID,
			Name:       user.Name,
			ProfilePic: user.ProfilePic,
			Reaction:   reaction.Kind,
		})
	}

	return reactors, nil
}

// PostsReactedByUser returns the distinct post IDs the user has reacted to
func (s *reactionServiceImpl) PostsReactedByUser(ctx context.Context, userID uint) ([]uint, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	reactions, err := s.reactionRepo.FindByReactorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reactions", err.Error())
	}

	postIDs := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, reaction := range reactions {
		if reaction.PostID == nil || seen[*reaction.PostID] {
			continue
		}
		seen[*reaction.PostID] = true
		postIDs = append(postIDs, *reaction.PostID)
	}

	return postIDs, nil
}
