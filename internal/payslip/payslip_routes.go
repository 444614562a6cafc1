package payslip

import (
	"time"

	"go-paie/internal/middleware"
	"go-paie/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// three batch requests per user, one more every 20s
	batchLimit := middleware.RateLimitByUser(rate.Every(20*time.Second), 3)

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware(jwtSecret), middleware.ExtractUserID())
	{
		payslips.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead), handler.GetAll)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead), handler.GetByID)
		payslips.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead), handler.GetBreakdown)
		payslips.GET("/:id/pdf", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead), handler.DownloadPDF)

		payslips.POST("/generate", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionGenerate), handler.Generate)
		payslips.POST("/generate-by-email", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionGenerate), handler.GenerateByEmail)
		if redisClient != nil {
			payslips.POST(
				"/batch",
				batchLimit,
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionGenerate),
				handler.Batch,
			)
		} else {
			payslips.POST("/batch", batchLimit, middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionGenerate), handler.Batch)
		}
		payslips.POST("/batch/async", batchLimit, middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionGenerate), handler.BatchAsync)
		payslips.POST("/simulate", middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionSimulate), handler.Simulate)
	}
}
