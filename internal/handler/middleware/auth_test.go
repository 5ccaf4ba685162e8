//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"barbershop-booking/internal/domain/auth"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/tests/common/httptest"
	usecasemock "barbershop-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator

	tenantID uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.reset()
}

func (s *AuthMiddlewareTestSuite) SetupSubTest() {
	s.reset()
}

func (s *AuthMiddlewareTestSuite) reset() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.tenantID = uuid.New()

	mw := middleware.NewAuthMiddleware(s.validator)
	ok := func(c *gin.Context) {
		p, _ := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"role": p.Role().String()})
	}
	s.router.GET("/tenants/:tenantId/bookings", mw.RequireAuth(), mw.RequireTenantAccess(), ok)
	s.router.GET("/admin/tenants", mw.RequireAuth(), mw.RequireAdmin(), ok)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) principal(tenantID uuid.UUID, role auth.Role) auth.Principal {
	p, err := auth.NewPrincipal(tenantID, role)
	s.Require().NoError(err)
	return p
}

func (s *AuthMiddlewareTestSuite) TestTenantAccess() {
	url := func(id uuid.UUID) string { return "/tenants/" + id.String() + "/bookings" }

	s.Run("owner reaches own tenant", func() {
		s.validator.EXPECT().ValidateToken("owner-token").Return(s.principal(s.tenantID, auth.RoleOwner), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url(s.tenantID), nil, "owner-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("owner is refused another tenant", func() {
		s.validator.EXPECT().ValidateToken("owner-token").Return(s.principal(s.tenantID, auth.RoleOwner), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url(uuid.New()), nil, "owner-token")
		httptest.AssertAuthError(s.T(), rec, http.StatusForbidden)
	})

	s.Run("admin reaches any tenant", func() {
		s.validator.EXPECT().ValidateToken("admin-token").Return(s.principal(uuid.Nil, auth.RoleAdmin), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url(uuid.New()), nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url(s.tenantID), nil, "")
		httptest.AssertAuthError(s.T(), rec, http.StatusUnauthorized)
	})

	s.Run("invalid token", func() {
		s.validator.EXPECT().ValidateToken("expired").Return(auth.Principal{}, errors.New("token is expired"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url(s.tenantID), nil, "expired")
		httptest.AssertAuthError(s.T(), rec, http.StatusUnauthorized)
	})

	s.Run("malformed tenant id is forbidden", func() {
		s.validator.EXPECT().ValidateToken("owner-token").Return(s.principal(s.tenantID, auth.RoleOwner), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tenants/abc/bookings", nil, "owner-token")
		httptest.AssertAuthError(s.T(), rec, http.StatusForbidden)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("admin passes", func() {
		s.validator.EXPECT().ValidateToken("admin-token").Return(s.principal(uuid.Nil, auth.RoleAdmin), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/tenants", nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("owner is refused", func() {
		s.validator.EXPECT().ValidateToken("owner-token").Return(s.principal(s.tenantID, auth.RoleOwner), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/tenants", nil, "owner-token")
		httptest.AssertAuthError(s.T(), rec, http.StatusForbidden)
	})
}
