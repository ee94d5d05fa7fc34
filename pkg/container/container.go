package container

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	infraCache "library-catalog/internal/infrastructure/cache"
	infraDB "library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/database"
	"library-catalog/pkg/jwt"

	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	genreHandler "library-catalog/internal/domains/genre/handler"
	genreRepo "library-catalog/internal/domains/genre/repository"
	genreService "library-catalog/internal/domains/genre/service"

	publisherHandler "library-catalog/internal/domains/publisher/handler"
	publisherRepo "library-catalog/internal/domains/publisher/repository"
	publisherService "library-catalog/internal/domains/publisher/service"

	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	reportHandler "library-catalog/internal/domains/report/handler"
	reportRepo "library-catalog/internal/domains/report/repository"
	reportService "library-catalog/internal/domains/report/service"

	staffHandler "library-catalog/internal/domains/staff/handler"
	staffService "library-catalog/internal/domains/staff/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Thứ tự khởi tạo: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *infraDB.PostgresDB // nil when assembled over an external pool
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	TxRunner   *database.TxRunner
	JWTManager *jwt.Manager
	Storage    *storage.MinIOStorage // nil unless SNAPSHOT_ENABLED
	Queue      *queue.Client         // nil unless SNAPSHOT_ENABLED

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo    authorRepo.RepositoryInterface
	GenreRepo     genreRepo.RepositoryInterface
	PublisherRepo publisherRepo.RepositoryInterface
	BookRepo      bookRepo.RepositoryInterface
	ReportRepo    reportRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService    authorService.ServiceInterface
	GenreService     genreService.ServiceInterface
	PublisherService publisherService.ServiceInterface
	BookService      bookService.ServiceInterface
	ReportService    reportService.ServiceInterface
	SnapshotService  reportService.SnapshotServiceInterface // nil unless snapshots are enabled
	AuthService      staffService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler    *authorHandler.AuthorHandler
	GenreHandler     *genreHandler.GenreHandler
	PublisherHandler *publisherHandler.PublisherHandler
	BookHandler      *bookHandler.BookHandler
	ReportHandler    *reportHandler.ReportHandler
	AuthHandler      *staffHandler.AuthHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer connects PostgreSQL (and Redis when REDIS_ADDR is set) and
// wires every domain on top of them.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("initializing DI container")

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db := infraDB.NewPostgresDB(cfg.Database.DBConfig())
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	// Redis là optional: REDIS_ADDR rỗng thì dùng NoopCache
	var (
		redisClient *infraCache.RedisClient
		appCache    cache.Cache = infraCache.NoopCache{}
	)
	if cfg.Redis.Addr != "" {
		redisClient = infraCache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Connect(ctx); err != nil {
			_ = db.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		appCache = infraCache.NewRedisCache(redisClient.Client, cfg.Redis.Prefix)
		log.Info().Msg("report cache enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set, report cache disabled")
	}

	// ========================================
	// STEP 3: SNAPSHOTS (MinIO + asynq)
	// ========================================
	var opts []Option
	var (
		objectStore *storage.MinIOStorage
		queueClient *queue.Client
	)
	if cfg.Snapshot.Enabled {
		var err error
		objectStore, err = storage.NewMinIOStorage(ctx, cfg.Storage)
		if err != nil {
			_ = db.Close()
			if redisClient != nil {
				_ = redisClient.Close()
			}
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
		queueClient = queue.NewClient(queue.RedisOpt(cfg.Redis), cfg.Snapshot)
		opts = append(opts, WithSnapshots(objectStore, queueClient))
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("report snapshots enabled")
	}

	c := Assemble(cfg, db.Pool, appCache, opts...)
	c.DB = db
	c.Redis = redisClient
	c.Storage = objectStore
	c.Queue = queueClient

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Option adjusts optional wiring in Assemble.
type Option func(*assembly)

type assembly struct {
	store    reportService.ObjectStore
	enqueuer reportService.Enqueuer
}

// WithSnapshots enables report snapshots over store. enqueuer may be nil in
// processes that only take snapshots.
func WithSnapshots(store reportService.ObjectStore, enqueuer reportService.Enqueuer) Option {
	return func(a *assembly) {
		a.store = store
		a.enqueuer = enqueuer
	}
}

// Assemble wires repositories, services and handlers over an existing pool
// and cache. It performs no I/O.
func Assemble(cfg *config.Config, pool database.Pool, c cache.Cache, opts ...Option) *Container {
	if c == nil {
		c = infraCache.NoopCache{}
	}

	var a assembly
	for _, opt := range opts {
		opt(&a)
	}

	ctr := &Container{
		Config:     cfg,
		Cache:      c,
		TxRunner:   database.NewTxRunner(pool, cfg.Database.TxMaxAttempts),
		JWTManager: jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
	}

	ctr.initRepositories(pool)
	ctr.initServices(a)
	ctr.initHandlers()
	return ctr
}

func (c *Container) initRepositories(pool database.Pool) {
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.TxRunner)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.TxRunner)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool, c.TxRunner)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.TxRunner)
	c.ReportRepo = reportRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices(a assembly) {
	// Publishers không xuất hiện trong reports nên không cần invalidate cache
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Cache)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.Cache)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)
	c.ReportService = reportService.NewReportService(c.ReportRepo, c.Cache, c.Config.Redis.ReportTTL)
	c.AuthService = staffService.NewAuthService(staffService.Credentials{
		Username:     c.Config.Auth.StaffUsername,
		PasswordHash: c.Config.Auth.StaffPasswordHash,
	}, c.JWTManager)

	if a.store != nil {
		c.SnapshotService = reportService.NewSnapshotService(c.ReportService, a.store, a.enqueuer, c.Config.Snapshot.Retention)
	}
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ReportHandler = reportHandler.NewReportHandler(c.ReportService, c.SnapshotService)
	c.AuthHandler = staffHandler.NewAuthHandler(c.AuthService)
}

// ========================================
// HELPER METHODS
// ========================================

// WriteGuard returns the middleware installed on every write route.
func (c *Container) WriteGuard() gin.HandlerFunc {
	if !c.Config.Auth.Enabled {
		return middleware.NoAuth()
	}
	return middleware.StaffAuth(c.JWTManager)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("cleaning up container resources")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close queue client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}
