package routes

import (
	"context"
	"log"
	_ "orcamento_api/docs"
	"orcamento_api/internal/adapter/http/handlers"
	"orcamento_api/internal/adapter/persistence/memory"
	repository2 "orcamento_api/internal/adapter/persistence/repository"
	"orcamento_api/internal/config"
	"orcamento_api/internal/infrastructure/database"
	"orcamento_api/internal/infrastructure/payments"
	"orcamento_api/internal/usecase"
	"orcamento_api/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// apiHandlers groups everything the route table needs.
type apiHandlers struct {
	budget      *handlers.BudgetHandler
	dashboard   *handlers.DashboardHandler
	costFactors *handlers.CostFactorsHandler
	auth        *handlers.AuthHandler
	export      *handlers.ExportHandler
	payments    *handlers.BillingPaymentHandler
	authUseCase usecase.IAuthUseCase
}

// Run will start the server
func Run(cfg *config.Config) {
	router := newRouter(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, err := getHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	addAPIRoutes(router.Group(PathAPI), h)

	err = router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	setMiddlewares(router, cfg.Server.CORSAllowedOrigins)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (apiHandlers, error) {
	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	tables := cfg.DynamoDB.Tables

	if cfg.DynamoDB.AutoCreateTables {
		setupCtx, cancel := context.WithTimeout(ctx, 3*time.Minute)
		err := database.EnsureTables(setupCtx, ddb, tables)
		cancel()
		if err != nil {
			return apiHandlers{}, err
		}
	}

	seq := repository2.NewSequence(ddb, tables.Counters)
	costFactorsRepo := repository2.NewCostFactorsDynamoRepository(ddb, tables.CostFactors)
	budgetRequestRepo := repository2.NewBudgetRequestDynamoRepository(ddb, seq, tables.BudgetRequests)
	adminUserRepo := repository2.NewAdminUserDynamoRepository(ddb, seq, tables.AdminUsers)
	paymentRepo := repository2.NewBillingPaymentDynamoRepository(ddb, tables.Payments)

	var sessions interfaces.ISessionStore
	switch cfg.Auth.SessionStore {
	case config.SessionStoreDynamoDB:
		sessions = repository2.NewSessionDynamoStore(ddb, tables.Sessions)
	default:
		sessions = memory.NewSessionStore()
	}
	log.Printf("[auth][setup] session store=%s", cfg.Auth.SessionStore)

	costFactorsUseCase := usecase.NewCostFactorsUseCase(costFactorsRepo)
	budgetUseCase := usecase.NewBudgetUseCase(costFactorsUseCase, budgetRequestRepo)
	budgetRequestUseCase := usecase.NewBudgetRequestUseCase(budgetRequestRepo)
	authUseCase := usecase.NewAuthUseCase(adminUserRepo, sessions)
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, budgetRequestRepo, paymentGateway(cfg.Payments), usecase.PaymentOptions{
		MockMode:        cfg.Payments.Mock,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	if _, err := authUseCase.EnsureDefaultAdmin(ctx, cfg.Auth.DefaultAdminUsername, cfg.Auth.DefaultAdminPassword); err != nil {
		return apiHandlers{}, err
	}
	// Seeds the cost factors record; a failure here is retried on first use.
	if _, err := costFactorsUseCase.GetCurrent(ctx); err != nil {
		log.Printf("[cost-factors][setup] warm-up failed err=%v", err)
	}

	return apiHandlers{
		budget:      handlers.NewBudgetHandler(budgetUseCase),
		dashboard:   handlers.NewDashboardHandler(budgetRequestUseCase),
		costFactors: handlers.NewCostFactorsHandler(costFactorsUseCase),
		auth:        handlers.NewAuthHandler(authUseCase),
		export:      handlers.NewExportHandler(budgetUseCase),
		payments:    handlers.NewBillingPaymentHandler(paymentUseCase, cfg.Payments.Mock),
		authUseCase: authUseCase,
	}, nil
}

// paymentGateway returns nil in mock mode or when no access token is set.
func paymentGateway(cfg config.PaymentsConfig) interfaces.IPaymentGateway {
	if cfg.Mock {
		log.Printf("[payments][setup] mock mode enabled, gateway disabled")
		return nil
	}
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[payments][setup] Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return mpGateway
}

func addAPIRoutes(rg *gin.RouterGroup, h apiHandlers) {
	addPingRoutes(rg)
	addBudgetRoutes(rg, h.budget)
	addExportRoutes(rg, h.export)
	addAuthRoutes(rg, h.auth, h.authUseCase)
	addDashboardRoutes(rg, h.dashboard, h.authUseCase)
	addAdminRoutes(rg, h.costFactors, h.authUseCase)
	addPaymentRoutes(rg, h.payments)
}

func setMiddlewares(router *gin.Engine, origins []string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(origins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
