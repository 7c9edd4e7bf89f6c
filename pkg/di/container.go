package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"austino-shop/application/serviceimpl"
	"austino-shop/domain/ports"
	"austino-shop/domain/repositories"
	"austino-shop/domain/services"
	natspkg "austino-shop/infrastructure/nats"
	"austino-shop/infrastructure/notification"
	"austino-shop/infrastructure/postgres"
	redispkg "austino-shop/infrastructure/redis"
	"austino-shop/interfaces/api/handlers"
	"austino-shop/pkg/config"
	"austino-shop/pkg/logger"
	"austino-shop/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // cache subtree ของ category (optional)
	NATSClient     *natspkg.Client  // order events (optional)
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository     repositories.UserRepository
	CustomerRepository repositories.CustomerRepository
	CategoryRepository repositories.CategoryRepository
	ProductRepository  repositories.ProductRepository
	OrderRepository    repositories.OrderRepository

	// Ports
	SMSSender      ports.SMSSenderPort
	EmailSender    ports.EmailSenderPort
	EventPublisher ports.OrderEventPublisherPort

	// Services
	UserService         services.UserService
	CustomerService     services.CustomerService
	CategoryService     services.CategoryService
	ProductService      services.ProductService
	OrderService        services.OrderService
	NotificationService services.NotificationService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	// PostgreSQL
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	c.DB = db
	logger.Info("Database connected and migrated", "db", c.Config.Database.DBName)

	// Redis - optional: ต่อไม่ได้ระบบยังทำงาน แค่ไม่มี cache
	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		c.RedisClient = redisClient
	}

	// NATS - optional: ต่อไม่ได้ใช้ noop publisher
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS unavailable, order events disabled", "error", err)
		c.EventPublisher = natspkg.NewNoopPublisher()
	} else {
		c.NATSClient = natsClient
		c.EventPublisher = natspkg.NewOrderEventPublisher(natsClient)
	}

	// Notification senders - ไม่ config = ส่งแล้วได้ status "Skipped"
	c.SMSSender = notification.NewAfricasTalkingSMS(c.Config.SMS)
	c.EmailSender = notification.NewSMTPEmailSender(c.Config.SMTP)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CustomerRepository = postgres.NewCustomerRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.OrderRepository = postgres.NewOrderRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.CustomerService = serviceimpl.NewCustomerService(c.CustomerRepository, c.UserRepository)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.ProductRepository, c.RedisClient)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository, c.CategoryService)
	c.NotificationService = serviceimpl.NewNotificationService(c.SMSSender, c.EmailSender, c.UserRepository)
	c.OrderService = serviceimpl.NewOrderService(
		c.OrderRepository,
		c.ProductRepository,
		c.CustomerService,
		c.NotificationService,
		c.EventPublisher,
	)
}

// initScheduler ตั้ง job รายงานสินค้า stock ต่ำประจำวัน
func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	threshold := c.Config.Shop.LowStockThreshold
	err := c.EventScheduler.AddJob("low-stock-report", c.Config.Shop.LowStockCron, func() {
		ctx := logger.ContextWithRequestID(context.Background(), "low-stock-report")
		products, err := c.ProductRepository.ListLowStock(ctx, threshold)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to query low stock products", "error", err)
			return
		}
		status := c.NotificationService.SendLowStockReport(ctx, products)
		logger.InfoContext(ctx, "Low stock report dispatched", "products", len(products), "status", status)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule low stock report: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices รวม services สำหรับสร้าง handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		CustomerService: c.CustomerService,
		CategoryService: c.CategoryService,
		ProductService:  c.ProductService,
		OrderService:    c.OrderService,
		JWTSecret:       c.Config.JWT.Secret,
	}
}

func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}
	if c.NATSClient != nil {
		c.NATSClient.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		}
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
