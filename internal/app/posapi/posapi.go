package posapi

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/common/events"
	"coffeeos/internal/common/httpx"
	"coffeeos/internal/common/logger"
	"coffeeos/internal/config"
	"coffeeos/internal/connections/rabbitmq"
	authhandlers "coffeeos/internal/microservices/auth/handlers"
	authmw "coffeeos/internal/microservices/auth/middleware"
	authrepo "coffeeos/internal/microservices/auth/repository"
	authservice "coffeeos/internal/microservices/auth/service"
	fchandlers "coffeeos/internal/microservices/forecast/handlers"
	"coffeeos/internal/microservices/forecast/oracle"
	fcrepo "coffeeos/internal/microservices/forecast/repository"
	fcservice "coffeeos/internal/microservices/forecast/service"
	poshandlers "coffeeos/internal/microservices/pos/handlers"
	posrepo "coffeeos/internal/microservices/pos/repository"
	posservice "coffeeos/internal/microservices/pos/service"
	rephandlers "coffeeos/internal/microservices/reports/handlers"
	reprepo "coffeeos/internal/microservices/reports/repository"
	repservice "coffeeos/internal/microservices/reports/service"
)

// Run wires every service behind one gin router and serves it until the
// context is cancelled.
func Run(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, rmq *rabbitmq.Client, lg *logger.Logger) error {
	pub := events.NewAMQPPublisher(rmq)

	pos := posservice.New(
		posrepo.NewOrderRepository(pool),
		posrepo.NewTableRepository(pool),
		posrepo.NewMenuRepository(pool),
		posrepo.NewDirectoryRepository(pool),
		pub,
		lg,
	)
	auth := authservice.NewAuthService(authrepo.NewUserRepository(pool), cfg.Auth)
	forecast := fcservice.NewForecastService(fcrepo.NewSalesRepository(pool), oracle.NewHTTPOracle(cfg.Forecast), lg)
	reports := repservice.NewReportService(reprepo.NewReportRepository(pool))

	router := buildRouter(cfg, pos, auth, forecast, reports)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	lg.Info("http_listening", map[string]any{"addr": addr})
	return httpx.New(addr, router).Run(ctx)
}

func buildRouter(
	cfg *config.Config,
	pos *posservice.Service,
	auth authservice.AuthServiceInterface,
	forecast fcservice.ForecastServiceInterface,
	reports repservice.ReportServiceInterface,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	origins := cfg.HTTP.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	orderH := poshandlers.NewOrderHandler(pos.Orders)
	tableH := poshandlers.NewTableHandler(pos.Tables)
	menuH := poshandlers.NewMenuHandler(pos.Menu)
	directoryH := poshandlers.NewDirectoryHandler(pos.Directory)
	authH := authhandlers.NewAuthHandler(auth)
	forecastH := fchandlers.NewForecastHandler(forecast)
	reportH := rephandlers.NewReportHandler(reports)

	v1 := router.Group("/api/v1")

	// Tenant/branch selection is public; everything past a branch requires
	// a resolvable branch context.
	v1.GET("/tenants", directoryH.ListTenants)
	v1.GET("/tenants/:tenantID/branches", directoryH.ListBranches)

	branch := v1.Group("/branches/:branchID", poshandlers.BranchContext(pos.Directory))
	branch.POST("/auth/login", authH.Login)

	secret := []byte(cfg.Auth.JWTSecret)
	secured := branch.Group("", authmw.RequireAuth(secret))

	secured.POST("/auth/register", authmw.RequireRole("admin"), authH.Register)

	secured.GET("/menu/categories", menuH.ListCategories)
	secured.POST("/menu/categories", authmw.RequireRole("admin"), menuH.CreateCategory)
	secured.GET("/menu/items", menuH.ListItems)
	secured.POST("/menu/items", authmw.RequireRole("admin"), menuH.CreateItem)
	secured.PATCH("/menu/items/:itemID/availability", authmw.RequireRole("admin", "cashier"), menuH.SetItemAvailability)

	secured.GET("/tables", tableH.ListTables)
	secured.POST("/tables", authmw.RequireRole("admin"), tableH.CreateTable)
	secured.GET("/tables/:tableID", tableH.GetTable)
	secured.POST("/tables/:tableID/clean", tableH.FinishCleaning)

	secured.POST("/orders", orderH.CreateOrder)
	secured.GET("/orders", orderH.ListOrders)
	secured.GET("/orders/:orderID", orderH.GetOrder)
	secured.GET("/orders/:orderID/log", orderH.GetStatusLog)
	secured.POST("/orders/:orderID/payment", authmw.RequireRole("admin", "cashier"), orderH.CompletePayment)
	secured.PATCH("/orders/:orderID/status", orderH.UpdateStatus)

	secured.GET("/reports/daily", authmw.RequireRole("admin", "cashier"), reportH.DailySummaries)
	secured.POST("/forecast", authmw.RequireRole("admin"), forecastH.Forecast)

	return router
}
