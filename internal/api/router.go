package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/api/handler"
	"github.com/ledgerkeep/ledgerkeep/internal/api/middleware"
	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/core/ports"
	"github.com/ledgerkeep/ledgerkeep/internal/core/service"
	"github.com/ledgerkeep/ledgerkeep/internal/core/token"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/config"
	mongodb "github.com/ledgerkeep/ledgerkeep/internal/infrastructure/db/mongo"
	redisdb "github.com/ledgerkeep/ledgerkeep/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered. The redis
// client may be nil; login throttling is then disabled and everything else
// keeps working.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, audit ports.AuditSink, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ledgerkeep"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	incomeRepo := mongodb.NewIncomeRepository(db)
	expenditureRepo := mongodb.NewExpenditureRepository(db)
	expenseTypeRepo := mongodb.NewExpenseTypeRepository(db)

	var attempts ports.LoginThrottle = service.UnlimitedAttempts{}
	if rdb != nil {
		attempts = redisdb.NewLoginThrottle(rdb)
	}

	// --- Services ---
	issuer, err := token.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL())
	if err != nil {
		return nil, err
	}
	sessions := service.NewSessionManager(sessionRepo)
	authService := service.NewAuthService(accountRepo, userRepo, sessions, issuer, nil, attempts, audit, log)
	accountService := service.NewAccountService(accountRepo, userRepo, audit, log)
	incomeService := service.NewIncomeService(incomeRepo, log)
	expenditureService := service.NewExpenditureService(expenditureRepo, expenseTypeRepo, log)
	expenseTypeService := service.NewExpenseTypeService(expenseTypeRepo, log)
	adminService := service.NewAdminService(accountRepo, userRepo, incomeRepo, expenditureRepo, expenseTypeRepo, audit, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, log)
	accountHandler := handler.NewAccountHandler(accountService)
	incomeHandler := handler.NewIncomeHandler(incomeService)
	expenditureHandler := handler.NewExpenditureHandler(expenditureService)
	expenseTypeHandler := handler.NewExpenseTypeHandler(expenseTypeService)
	adminHandler := handler.NewAdminHandler(adminService)

	authRequired := middleware.Auth(issuer)
	adminOnly := middleware.RequireRole(domain.RoleAccountAdmin)
	serviceToken := middleware.ServiceToken(cfg.ServiceToken)

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/refresh", authHandler.Refresh)
	e.GET("/api/logout", authHandler.Logout, authRequired)

	// --- Tenant user management (account_admin only) ---
	account := e.Group("/api/account", authRequired, adminOnly)
	account.GET("/admin/users/view", accountHandler.ListUsers)
	account.PUT("/admin/user/role", accountHandler.UpdateUserRole)
	account.POST("/create/user", accountHandler.CreateUser)
	account.DELETE("/remove/user", accountHandler.DeleteUser)

	// --- Bookkeeping (any authenticated role) ---
	income := e.Group("/api/income", authRequired)
	income.GET("/view", incomeHandler.List)
	income.POST("/add", incomeHandler.Add)
	income.PUT("/edit", incomeHandler.Edit)

	expenditure := e.Group("/api/expenditure", authRequired)
	expenditure.GET("/view", expenditureHandler.List)
	expenditure.POST("/add", expenditureHandler.Add)
	expenditure.PUT("/edit", expenditureHandler.Edit)

	expense := e.Group("/api/expense", authRequired)
	expense.GET("/view", expenseTypeHandler.List)
	expense.POST("/add", expenseTypeHandler.Add)
	expense.PUT("/edit", expenseTypeHandler.Edit)

	// --- Super-admin routes (shared service token) ---
	admin := e.Group("/api/admin", serviceToken)
	admin.POST("/account/create", adminHandler.CreateAccount)
	admin.DELETE("/account", adminHandler.DeactivateAccount)
	admin.DELETE("/account/purge", adminHandler.PurgeAccount)
	admin.DELETE("/account/user", adminHandler.DeleteUser)
	admin.PUT("/account/user", adminHandler.UpdateUserRole)
	admin.GET("/accounts", adminHandler.ListAccounts)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/income", adminHandler.ListIncomes)
	admin.GET("/expenditure", adminHandler.ListExpenditures)
	admin.GET("/expense", adminHandler.ListExpenseTypes)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
