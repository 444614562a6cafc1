package app

import (
	"go-paie/internal/config"
	"go-paie/internal/payslip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every route on router.
// The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg config.Config) (*Infra, error) {
	logger := zap.L().Named("app.api")

	infra, err := connect(cfg, true)
	if err != nil {
		return nil, err
	}
	logger.Info("infrastructure ready", zap.Bool("redis", infra.Redis != nil), zap.Bool("outbox", cfg.KafkaBroker != ""))

	if err := registerModules(router, cfg, infra, zap.L()); err != nil {
		infra.Close()
		return nil, err
	}

	return infra, nil
}

// BuildPayslipService gives command line tools the same service the API uses.
func BuildPayslipService(cfg config.Config) (payslip.Service, *Infra, error) {
	infra, err := connect(cfg, true)
	if err != nil {
		return nil, nil, err
	}
	return newPayslipService(cfg, infra, zap.L()), infra, nil
}
