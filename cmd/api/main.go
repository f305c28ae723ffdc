package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/avantpro-commerce/docs"
	"github.com/rafabene/avantpro-commerce/internal/handlers/dto"
	httphandlers "github.com/rafabene/avantpro-commerce/internal/handlers/http"
	"github.com/rafabene/avantpro-commerce/internal/handlers/mapper"
	"github.com/rafabene/avantpro-commerce/internal/handlers/middleware"
	"github.com/rafabene/avantpro-commerce/internal/infrastructure/config"
	"github.com/rafabene/avantpro-commerce/internal/infrastructure/i18n"
	"github.com/rafabene/avantpro-commerce/internal/infrastructure/logging"
	"github.com/rafabene/avantpro-commerce/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/avantpro-commerce/internal/services"
)

//	@title			AvantPro Commerce API
//	@version		1.0
//	@description	API de leitura do catálogo com erros localizados.
//	@BasePath		/api/v1
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewZapLogger(cfg.Logging.Level, cfg.Logging.Format)
	if syncer, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	logger.Info("starting avantpro commerce",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewServiceFS(i18n.Locales, "locales", cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar mapeamento de erros
	var factory dto.WrapperFactory = dto.DefaultWrapperFactory{}
	if cfg.Errors.Format == config.ErrorFormatProblem {
		factory = dto.ProblemWrapperFactory{BaseURL: cfg.Server.BaseURL}
	}

	mapperOpts := []mapper.Option{
		mapper.WithMessageKeyPrefix(cfg.Errors.MessageKeyPrefix),
		mapper.WithDefaultLocale(i18nService.DefaultTag()),
	}
	if cfg.Errors.AlwaysOK {
		mapperOpts = append(mapperOpts, mapper.WithStatusCodeResolver(mapper.AlwaysOK))
	}
	exceptionMapper := mapper.New(i18nService, logger, factory, mapperOpts...)

	// Inicializar repositories
	catalogRepo := postgres.NewCatalogRepository(db)

	// Inicializar services
	catalogService := services.NewCatalogService(catalogRepo, logger)

	// Inicializar handlers
	catalogHandler := httphandlers.NewCatalogHandler(catalogService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(exceptionMapper))

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware de erros
	router.Use(middleware.ErrorHandler(exceptionMapper))

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// API routes
	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/products", catalogHandler.SearchProducts)
			catalog.GET("/products/:id", catalogHandler.GetProduct)
			catalog.GET("/categories/:id", catalogHandler.GetCategory)
		}
	}
	router.NoRoute(httphandlers.NoRoute)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
			"errors_format", cfg.Errors.Format,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
