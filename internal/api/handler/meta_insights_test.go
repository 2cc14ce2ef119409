package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
	gomock "go.uber.org/mock/gomock"
)

// withClaims injeta as claims no contexto, como o middleware de
// autenticação faria em produção.
func withClaims(next http.Handler, claims *domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
}

func memberClaims() *domain.Claims {
	return &domain.Claims{UserID: 2, UserRoleID: domain.RoleMember}
}

func newInsightsServer(t *testing.T, claims *domain.Claims) (*mocks.MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	rt := router.New(router.WithRoutes(MetaInsights(service)...))

	return service, withClaims(rt, claims)
}

func TestListMetaAccounts(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().ListAccounts(1).Return([]domain.AdAccount{
		{AccountID: "111", Name: "Loja A", Currency: "BRL"},
	}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loja A")
}

func TestListMetaAccounts_RateLimited(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().ListAccounts(1).Return(nil, &metadomain.UpstreamError{
		Message: "User request limit reached",
		Code:    17,
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/accounts", nil))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "300", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "EXT_001")
}

func TestListMetaAccounts_UpstreamUnavailable(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().ListAccounts(1).Return(nil, &metadomain.UpstreamError{
		Message: "An unknown error occurred",
		Code:    1,
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/accounts", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXT_002")
}

func TestListMetaCampaigns_CredentialMissing(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().
		ListCampaigns(1, "111", nil, false).
		Return(nil, reporting.ErrCredentialMissing)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/accounts/111/campaigns", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXT_003")
}

func TestListMetaCampaigns_AccessDenied(t *testing.T) {
	service, srv := newInsightsServer(t, memberClaims())

	service.EXPECT().
		ListCampaigns(2, "111", nil, false).
		Return(nil, reporting.ErrAccountAccessDenied)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/accounts/111/campaigns", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXT_004")
}

func TestListMetaCampaigns_ParsesQuery(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	expected := &domain.TimeRange{
		Since: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}
	service.EXPECT().
		ListCampaigns(1, "111", expected, true).
		Return([]domain.Campaign{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet,
		"/v1/meta/accounts/111/campaigns?since=2026-08-01&until=2026-08-27&active_only=true",
		nil,
	))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListMetaCampaigns_InvalidRange(t *testing.T) {
	_, srv := newInsightsServer(t, adminClaims())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet,
		"/v1/meta/accounts/111/campaigns?since=2026-08-27&until=2026-08-01",
		nil,
	))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}

func TestListMetaAdSets(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().
		ListAdSets(1, "111", "c1", nil).
		Return([]domain.AdSet{{AdSetID: "as1", AdSetName: "Conjunto 1"}}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet,
		"/v1/meta/accounts/111/campaigns/c1/adsets",
		nil,
	))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Conjunto 1")
}

func TestListMetaAds(t *testing.T) {
	service, srv := newInsightsServer(t, adminClaims())

	service.EXPECT().
		ListAds(1, "as1", nil).
		Return([]domain.Ad{{AdID: "a1", AdName: "Anúncio 1"}}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/adsets/as1/ads", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anúncio 1")
}
