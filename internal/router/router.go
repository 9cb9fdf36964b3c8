package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/client"
	"social-feed-api/internal/handler"
	"social-feed-api/internal/metrics"
	"social-feed-api/internal/middleware"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/service"
)

// Config carries the dependencies the router wires together
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Storage     client.AvatarStorage
	BasePath    string
	CORSOrigins []string
	Env         string
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	groupRepo := repository.NewGroupRepository(cfg.DB)
	membershipRepo := repository.NewMembershipRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	reactionRepo := repository.NewReactionRepository(cfg.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.Storage, cfg.Logger)
	groupService := service.NewGroupService(groupRepo, membershipRepo, userRepo, cfg.Metrics, cfg.Logger)
	contentService := service.NewContentService(postRepo, commentRepo, reactionRepo, userRepo, groupRepo, cfg.Metrics, cfg.Logger)
	reactionService := service.NewReactionService(reactionRepo, postRepo, commentRepo, userRepo, cfg.Metrics, cfg.Logger)
	feedService := service.NewFeedService(postRepo, commentRepo, reactionRepo, userRepo, groupRepo, membershipRepo, cfg.Logger)
	queryService := service.NewQueryService(userRepo, groupRepo, postRepo, commentRepo, reactionRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	contentHandler := handler.NewContentHandler(contentService)
	reactionHandler := handler.NewReactionHandler(reactionService)
	feedHandler := handler.NewFeedHandler(feedService)
	queryHandler := handler.NewQueryHandler(queryService, feedService)

	// Health and metrics endpoints
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:userId", userHandler.GetUser)
			users.PUT("/:userId", userHandler.UpdateUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
			users.POST("/:userId/avatar/presigned-url", userHandler.PresignAvatarUpload)
			users.PUT("/:userId/avatar", userHandler.ConfirmAvatarUpload)
			users.GET("/:userId/feed", feedHandler.GetUserPosts)
			users.GET("/:userId/reacted-posts", reactionHandler.GetPostsReactedByUser)
		}

		groups := api.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:groupId/members", groupHandler.GetMembers)
			groups.POST("/:groupId/members", groupHandler.AddMember)
			groups.DELETE("/:groupId/members/:memberId", groupHandler.RemoveMember)
			groups.POST("/:groupId/admins", groupHandler.PromoteToAdmin)
			groups.GET("/:groupId/feed", feedHandler.GetGroupFeed)
			groups.GET("/:groupId/silent-members", feedHandler.GetSilentGroupMembers)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", contentHandler.CreatePost)
			posts.DELETE("/:postId", contentHandler.DeletePost)
			posts.POST("/:postId/comments", contentHandler.CreateComment)
			posts.POST("/:postId/reactions", reactionHandler.ReactToPost)
			posts.GET("/:postId/reactions/tally", reactionHandler.GetReactionTally)
			posts.GET("/:postId/reactors", reactionHandler.GetReactors)
			posts.GET("/:postId/view", feedHandler.GetPostView)
		}

		comments := api.Group("/comments")
		{
			comments.POST("/:commentId/replies", contentHandler.ReplyToComment)
			comments.GET("/:commentId/replies", contentHandler.GetReplies)
			comments.POST("/:commentId/reactions", reactionHandler.ReactToComment)
		}

		api.GET("/reactions/count", reactionHandler.GetTotalReactionCount)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/posts/more-comments-than-reactions", feedHandler.GetPostsWithMoreCommentsThanReactions)
			analytics.GET("/posts/more-positive-reactions", feedHandler.GetPostsWithMorePositiveReactions)
		}

		queries := api.Group("/queries")
		{
			queries.GET("/users", queryHandler.ListUsers)
			queries.GET("/users/:userId", userHandler.GetUser)
			queries.GET("/users/:userId/posts", queryHandler.ListPostsByUser)
			queries.GET("/users/:userId/posts-with-comments-and-reactions", queryHandler.ListUserPostsWithDetails)
			queries.GET("/groups", queryHandler.ListGroups)
			queries.GET("/posts", queryHandler.ListPosts)
			queries.GET("/posts/:postId/comments", queryHandler.ListCommentsByPost)
			queries.GET("/posts/:postId/reactions", queryHandler.ListReactionsByPost)
			queries.GET("/comments", queryHandler.ListComments)
			queries.GET("/reactions", queryHandler.ListReactions)
		}
	}

	return r
}
