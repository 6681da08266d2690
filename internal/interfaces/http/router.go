package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/domus-inc/domus/internal/application/auth/usecases"
	notificationusecases "github.com/domus-inc/domus/internal/application/notification/usecases"
	propertyusecases "github.com/domus-inc/domus/internal/application/property/usecases"
	ticketusecases "github.com/domus-inc/domus/internal/application/ticket/usecases"
	"github.com/domus-inc/domus/internal/domain/shared/events"
	vo "github.com/domus-inc/domus/internal/domain/ticket/valueobjects"
	"github.com/domus-inc/domus/internal/infrastructure/auth"
	"github.com/domus-inc/domus/internal/infrastructure/cache"
	"github.com/domus-inc/domus/internal/infrastructure/config"
	"github.com/domus-inc/domus/internal/infrastructure/email"
	"github.com/domus-inc/domus/internal/infrastructure/ratelimit"
	"github.com/domus-inc/domus/internal/infrastructure/repository"
	authhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/auth"
	notificationhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/notification"
	propertyhandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/property"
	tickethandlers "github.com/domus-inc/domus/internal/interfaces/http/handlers/ticket"
	"github.com/domus-inc/domus/internal/interfaces/http/middleware"
	"github.com/domus-inc/domus/internal/interfaces/http/routes"
	"github.com/domus-inc/domus/internal/shared/db"
	"github.com/domus-inc/domus/internal/shared/logger"
)

// Router wires the full HTTP surface: repositories, use cases, handlers,
// middleware and the in-process event dispatcher.
type Router struct {
	engine     *gin.Engine
	dispatcher *events.InMemoryEventDispatcher
	logger     logger.Interface
}

func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	atRiskWindow := vo.DefaultAtRiskWindow
	if cfg.SLA.AtRiskWindowHours > 0 {
		atRiskWindow = time.Duration(cfg.SLA.AtRiskWindowHours) * time.Hour
	}

	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	historyRepo := repository.NewHistoryRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	dispatcher := events.NewInMemoryEventDispatcher(64)

	var emailSender email.Sender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(cfg.Email)
	}

	subscriber := notificationusecases.NewTicketEventSubscriber(notificationRepo, profileRepo, emailSender, log)
	if err := subscriber.Register(dispatcher); err != nil {
		return nil, err
	}
	if err := dispatcher.Start(); err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	roleCache := cache.NewRedisRoleCache(redisClient, cache.DefaultRoleTTL)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, propertyRepo, dispatcher, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, historyRepo, propertyRepo, txManager, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, historyRepo, propertyRepo, txManager, dispatcher, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, historyRepo, profileRepo, txManager, dispatcher, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, propertyRepo, dispatcher, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, propertyRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, propertyRepo, profileRepo, atRiskWindow, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, propertyRepo, atRiskWindow, log)
	myTicketsUC := ticketusecases.NewMyTicketsUseCase(ticketRepo, atRiskWindow, log)
	overdueTicketsUC := ticketusecases.NewOverdueTicketsUseCase(ticketRepo, atRiskWindow, log)
	getHistoryUC := ticketusecases.NewGetHistoryUseCase(ticketRepo, historyRepo, log)

	listNotificationsUC := notificationusecases.NewListNotificationsUseCase(notificationRepo, log)
	unreadCountUC := notificationusecases.NewUnreadCountUseCase(notificationRepo, log)
	markAsReadUC := notificationusecases.NewMarkAsReadUseCase(notificationRepo, log)
	markAllAsReadUC := notificationusecases.NewMarkAllAsReadUseCase(notificationRepo, log)

	createPropertyUC := propertyusecases.NewCreatePropertyUseCase(propertyRepo, profileRepo, log)
	listPropertiesUC := propertyusecases.NewListPropertiesUseCase(propertyRepo, log)
	getPropertyUC := propertyusecases.NewGetPropertyUseCase(propertyRepo, log)

	loginUC := authusecases.NewLoginUseCase(profileRepo, hasher, jwtService, log)
	refreshUC := authusecases.NewRefreshTokenUseCase(profileRepo, jwtService, log)
	currentUserUC := authusecases.NewCurrentUserUseCase(profileRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, changeStatusUC, assignTicketUC,
		addCommentUC, listCommentsUC, getTicketUC, listTicketsUC,
		myTicketsUC, overdueTicketsUC, getHistoryUC,
	)
	notificationHandler := notificationhandlers.NewNotificationHandler(
		listNotificationsUC, unreadCountUC, markAsReadUC, markAllAsReadUC,
	)
	propertyHandler := propertyhandlers.NewPropertyHandler(createPropertyUC, listPropertiesUC, getPropertyUC)
	authHandler := authhandlers.NewAuthHandler(loginUC, refreshUC, currentUserUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, roleCache, profileRepo, log)

	var loginRateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginRateLimit = middleware.LoginRateLimit(limiter, cfg.RateLimit.LoginPerMinute, log)
	}

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		LoginRateLimit: loginRateLimit,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupPropertyRoutes(engine, &routes.PropertyRouteConfig{
		PropertyHandler: propertyHandler,
		AuthMiddleware:  authMiddleware,
	})

	return &Router{
		engine:     engine,
		dispatcher: dispatcher,
		logger:     log,
	}, nil
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Stop drains the event dispatcher. Call after the HTTP server has shut down
// so in-flight requests can still publish events.
func (r *Router) Stop() error {
	return r.dispatcher.Stop()
}
