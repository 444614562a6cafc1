package app

import (
	"net/http"

	"go-paie/internal/bonus"
	"go-paie/internal/config"
	"go-paie/internal/contract"
	"go-paie/internal/employee"
	"go-paie/internal/messaging/kafka"
	"go-paie/internal/middleware"
	"go-paie/internal/paycalc"
	"go-paie/internal/payrollparam"
	"go-paie/internal/payslip"
	"go-paie/internal/rbac"
	"go-paie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// newPayslipService wires the repositories, the cached reference data and
// the engine. The outbox is only attached when Kafka is configured, since
// nothing would publish its rows otherwise.
func newPayslipService(cfg config.Config, infra *Infra, logger *zap.Logger) payslip.Service {
	var outbox kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		outbox = kafka.NewOutboxRepository(infra.DB)
	}

	refs := payslip.ReferenceData{
		Employees: employee.NewRepository(infra.Gorm),
		Contracts: contract.NewRepository(infra.Gorm),
		Bonuses:   bonus.NewRepository(infra.Gorm),
		Params:    payrollparam.NewProvider(payrollparam.NewRepository(infra.Gorm), infra.Redis, cfg.RefDataCacheTTL, logger),
	}

	return payslip.NewService(
		infra.DB,
		payslip.NewRepository(infra.Gorm),
		refs,
		outbox,
		paycalc.NewEngine(cfg.EngineDefaults()),
		cfg.BatchWorkers,
		logger,
	)
}

func registerModules(router *gin.Engine, cfg config.Config, infra *Infra, logger *zap.Logger) error {
	// --- RBAC Core ---
	rbacService, err := rbac.NewService(nil, nil)
	if err != nil {
		return err
	}

	// --- Services ---
	payslipService := newPayslipService(cfg, infra, logger)

	// --- Handlers ---
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, infra.Redis)

	// --- Routes Registration ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api/v1")
	{
		payslip.RegisterRoutes(api, payslipHandler, rbacService, cfg.JWTSecret, infra.Redis)
	}

	return nil
}
