package job

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/metrics"
	"social-feed-api/internal/repository"
)

// StatsJob refreshes the business and connection pool gauges from the database
type StatsJob struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	groupRepo    repository.GroupRepository
	postRepo     repository.PostRepository
	reactionRepo repository.ReactionRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	db *gorm.DB,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
	reactionRepo repository.ReactionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		db:           db,
		userRepo:     userRepo,
		groupRepo:    groupRepo,
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		metrics:      m,
		logger:       logger,
	}
}

// Run executes one refresh pass. A failed count leaves its gauge at the
// previous value; the other gauges still update.
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	j.logger.Debug("Refreshing business stats gauges")

	if count, err := j.userRepo.Count(ctx); err != nil {
		j.logger.Error("Failed to count users", zap.Error(err))
	} else {
		j.metrics.SetUsersTotal(count)
	}

	if count, err := j.groupRepo.Count(ctx); err != nil {
		j.logger.Error("Failed to count groups", zap.Error(err))
	} else {
		j.metrics.SetGroupsTotal(count)
	}

	if count, err := j.postRepo.Count(ctx); err != nil {
		j.logger.Error("Failed to count posts", zap.Error(err))
	} else {
		j.metrics.SetPostsTotal(count)
	}

	if count, err := j.reactionRepo.CountAll(ctx); err != nil {
		j.logger.Error("Failed to count reactions", zap.Error(err))
	} else {
		j.metrics.SetReactionsTotal(count)
	}

	if sqlDB, err := j.db.DB(); err != nil {
		j.logger.Error("Failed to read connection pool stats", zap.Error(err))
	} else {
		j.metrics.UpdateDBStats(sqlDB.Stats())
	}
}
