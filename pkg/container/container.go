package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"songblog-backend/internal/config"
	infraCache "songblog-backend/internal/infrastructure/cache"
	"songblog-backend/internal/infrastructure/database"
	"songblog-backend/internal/infrastructure/metadata"
	"songblog-backend/internal/infrastructure/storage"
	"songblog-backend/pkg/cache"
	"songblog-backend/pkg/logger"

	"songblog-backend/internal/domains/user"
	userRepo "songblog-backend/internal/domains/user/repository"
	userService "songblog-backend/internal/domains/user/service"

	postHandler "songblog-backend/internal/domains/post/handler"
	postRepo "songblog-backend/internal/domains/post/repository"
	postService "songblog-backend/internal/domains/post/service"

	songHandler "songblog-backend/internal/domains/song/handler"
	songRepo "songblog-backend/internal/domains/song/repository"
	songService "songblog-backend/internal/domains/song/service"

	viewHandler "songblog-backend/internal/domains/view/handler"
	viewService "songblog-backend/internal/domains/view/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả process-wide singletons của application.
// Mọi thứ được tạo đúng một lần lúc startup và inject xuống handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	HTTPClient *http.Client // outbound: oEmbed, scrape, cover download

	Uploader *storage.MediaUploader
	Fetcher  *metadata.SpotifyFetcher

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo user.Repository
	PostRepo postRepo.RepositoryInterface
	SongRepo songRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService user.Service
	PostService postService.ServiceInterface
	SongService songService.ServiceInterface
	ViewService viewService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	PostHandler *postHandler.Handler
	SongHandler *songHandler.Handler
	ViewHandler *viewHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo toàn bộ dependency graph theo thứ tự:
// config -> database (+ migrations) -> cache -> storage -> outbound client ->
// repositories -> services -> handlers
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("Config loaded", map[string]interface{}{"env": cfg.App.Environment})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 4: INITIALIZE STORAGE + OUTBOUND CLIENT
	// ========================================
	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 5-7: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()

	if err := c.initServices(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	c.initHandlers()

	logger.Info("DI Container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initDatabase(ctx context.Context) error {
	db := database.NewPostgresDB(c.Config.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if c.Config.Database.Migrate {
		if err := database.Migrate(c.Config.Database.URL); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Migrations applied", nil)
	}

	logger.Info("Database connected", nil)
	return nil
}

// initCache - Redis failure không critical: log warning và continue,
// lỗi cache sau đó được repository coi như cache miss
func (c *Container) initCache(ctx context.Context) {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.Cache = redisCache
}

func (c *Container) initStorage(ctx context.Context) error {
	minioStorage, err := storage.NewMinIOStorage(ctx, c.Config.Storage.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.HTTPClient = &http.Client{Timeout: c.Config.HTTPClient.Timeout}

	c.Uploader = storage.NewMediaUploader(
		minioStorage,
		storage.NewImageProcessor(c.Config.Media.MaxBytes),
		c.HTTPClient,
		c.Config.Media.SongCoverKey,
	)
	c.Fetcher = metadata.NewSpotifyFetcher(
		c.HTTPClient,
		c.Config.HTTPClient.SpotifyOEmbed,
		c.Config.HTTPClient.ScrapeUserAgent,
	)

	logger.Info("Object storage ready", map[string]interface{}{
		"bucket":    c.Config.Storage.MinIO.Bucket,
		"cover_key": c.Config.Media.SongCoverKey,
	})
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewCachedRepository(
		userRepo.NewPostgresRepository(pool),
		c.Cache,
		c.Config.Redis.UserTTL,
	)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.SongRepo = songRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() error {
	credentials, err := userService.NewCredentialService(c.UserRepo, userService.DefaultCost)
	if err != nil {
		return err
	}
	c.UserService = credentials

	c.PostService = postService.NewPostService(c.PostRepo, c.UserService)
	c.SongService = songService.NewSongService(c.SongRepo, c.UserService, c.Uploader, c.Fetcher)
	c.ViewService = viewService.NewViewService(c.PostRepo, c.SongRepo, c.UserService)

	return nil
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewHandler(c.PostService)
	c.SongHandler = songHandler.NewHandler(c.SongService, c.Config.Media.MaxBytes)
	c.ViewHandler = viewHandler.NewHandler(c.ViewService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("Database connections closed", nil)
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}
