package payslip_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-paie/internal/payslip"
	payslipMock "go-paie/internal/payslip/mock"
	"go-paie/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const routeSecret = "route-secret"

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-" + role,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(routeSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRegisterRoutes_Authorization(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payslipMock.NewMockService(ctrl)
	rbacService, err := rbac.NewService(nil, nil)
	require.NoError(t, err)

	router := gin.New()
	payslip.RegisterRoutes(router.Group("/api/v1"), payslip.NewHandler(svc), rbacService, routeSecret)

	employeeID := uuid.NewString()
	generateBody := `{"employee_id":"` + employeeID + `","month":0,"year":2025}`

	do := func(method, path, body, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("anonymous", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/payslips/generate", generateBody, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("viewer cannot generate", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/payslips/generate", generateBody, bearer(t, rbac.RoleHRViewer))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("payroll manager generates", func(t *testing.T) {
		svc.EXPECT().GeneratePayslip(gomock.Any(), employeeID, 0, 2025).Return(true, nil)
		w := do(http.MethodPost, "/api/v1/payslips/generate", generateBody, bearer(t, rbac.RolePayrollManager))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin inherits payroll manager", func(t *testing.T) {
		svc.EXPECT().GetAll(gomock.Any(), 1, 2025).Return([]payslip.PayslipResponse{}, nil)
		w := do(http.MethodGet, "/api/v1/payslips?month=1&year=2025", "", bearer(t, rbac.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("viewer can simulate", func(t *testing.T) {
		svc.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(payslip.SimulationResponse{}, nil)
		w := do(http.MethodPost, "/api/v1/payslips/simulate",
			`{"month":0,"year":2025,"wage":"50000","cnas_scheme":"GENERAL","fiscal_scheme":"IMPOSABLE"}`,
			bearer(t, rbac.RoleHRViewer))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
