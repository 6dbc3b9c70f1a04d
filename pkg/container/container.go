package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/config"
	infraCache "course-admin-backend/internal/infrastructure/cache"
	"course-admin-backend/internal/infrastructure/database"
	"course-admin-backend/internal/infrastructure/queue"
	"course-admin-backend/internal/shared"
	"course-admin-backend/pkg/cache"
	"course-admin-backend/pkg/jwt"

	addressRepo "course-admin-backend/internal/domains/address/repository"
	chapterHandler "course-admin-backend/internal/domains/chapter/handler"
	chapterRepo "course-admin-backend/internal/domains/chapter/repository"
	chapterService "course-admin-backend/internal/domains/chapter/service"
	courseHandler "course-admin-backend/internal/domains/course/handler"
	courseRepo "course-admin-backend/internal/domains/course/repository"
	courseService "course-admin-backend/internal/domains/course/service"
	lessonHandler "course-admin-backend/internal/domains/lesson/handler"
	lessonRepo "course-admin-backend/internal/domains/lesson/repository"
	lessonService "course-admin-backend/internal/domains/lesson/service"
	userHandler "course-admin-backend/internal/domains/user/handler"
	userRepo "course-admin-backend/internal/domains/user/repository"
	userService "course-admin-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application (API và worker dùng chung)
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	RedisOpt    asynq.RedisClientOpt
	QueueClient *queue.Client
	JWTManager  *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	CourseRepo  courseRepo.RepositoryInterface
	ChapterRepo chapterRepo.RepositoryInterface
	LessonRepo  lessonRepo.RepositoryInterface
	UserRepo    userRepo.UserRepository
	AddressRepo addressRepo.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	CourseService  courseService.ServiceInterface
	CascadeService courseService.CascadeServiceInterface
	ChapterService chapterService.ServiceInterface
	LessonService  lessonService.ServiceInterface
	UserService    userService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	CourseHandler  *courseHandler.Handler
	ChapterHandler *chapterHandler.Handler
	LessonHandler  *lessonHandler.Handler
	UserHandler    *userHandler.UserHandler
}

// NewContainer tạo toàn bộ dependency graph theo thứ tự:
// Infrastructure (DB, Cache, Queue) → Repositories → Services → Handlers
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if cfg.Database.AutoMigrate {
		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE + QUEUE
	// ========================================
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			// Redis failure không critical - cache miss liên tục, log warning và continue
			log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	c.RedisOpt = asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	c.QueueClient = queue.NewClient(c.RedisOpt)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTTL)*time.Hour)

	// ========================================
	// STEP 3-5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := time.Duration(c.Config.Redis.CacheTTL) * time.Minute

	c.CourseRepo = courseRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.ChapterRepo = chapterRepo.NewPostgresRepository(pool)
	c.LessonRepo = lessonRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AddressRepo = addressRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	limits := shared.PageLimits{
		DefaultSize: c.Config.Pagination.DefaultPageSize,
		MaxSize:     c.Config.Pagination.MaxPageSize,
	}

	c.CourseService = courseService.NewCourseService(c.CourseRepo, c.QueueClient, limits)
	c.CascadeService = courseService.NewCascadeService(c.DB.Pool, c.CourseRepo, c.ChapterRepo, c.LessonRepo)
	c.ChapterService = chapterService.NewChapterService(c.ChapterRepo, c.LessonRepo)
	c.LessonService = lessonService.NewLessonService(c.LessonRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.AddressRepo, limits)
}

func (c *Container) initHandlers() {
	c.CourseHandler = courseHandler.NewHandler(c.CourseService)
	c.ChapterHandler = chapterHandler.NewHandler(c.ChapterService)
	c.LessonHandler = lessonHandler.NewHandler(c.LessonService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close queue client")
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("✅ Container cleanup completed")
}
