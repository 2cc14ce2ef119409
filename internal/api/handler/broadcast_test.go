package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-report-api/internal/worker"
	gomock "go.uber.org/mock/gomock"
)

func addressableUser(id int) *domain.User {
	chatID := int64(9001)
	return &domain.User{
		ID:             id,
		RoleID:         domain.RoleMember,
		Active:         true,
		TelegramChatID: &chatID,
	}
}

func newBroadcastServer(t *testing.T) (*reportmocks.MockService, *repomocks.MockUserRepository, *worker.Pool, http.Handler) {
	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockService(ctrl)
	userRepo := repomocks.NewMockUserRepository(ctrl)

	pool := worker.NewPool(1, 4)
	t.Cleanup(func() {
		_ = pool.Shutdown(time.Second)
	})

	rt := router.New(router.WithRoutes(Broadcast(reportService, userRepo, pool)...))

	return reportService, userRepo, pool, withClaims(rt, adminClaims())
}

func TestSendUserReport(t *testing.T) {
	reportService, userRepo, _, srv := newBroadcastServer(t)

	user := addressableUser(2)
	userRepo.EXPECT().GetUserByID(2).Return(user, nil)

	delivered := make(chan struct{})
	reportService.EXPECT().
		SendReportForUser(user, domain.PeriodWeek).
		DoAndReturn(func(*domain.User, domain.ReportPeriod) reporting.Outcome {
			defer close(delivered)
			return reporting.Outcome{Status: reporting.OutcomeSent}
		})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/broadcast/users/2/report?period=week", nil))

	// a resposta chega antes do job rodar
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("relatório não foi processado pelo worker pool")
	}
}

func TestSendUserReport_DefaultsToToday(t *testing.T) {
	reportService, userRepo, _, srv := newBroadcastServer(t)

	user := addressableUser(2)
	userRepo.EXPECT().GetUserByID(2).Return(user, nil)

	delivered := make(chan struct{})
	reportService.EXPECT().
		SendReportForUser(user, domain.PeriodToday).
		DoAndReturn(func(*domain.User, domain.ReportPeriod) reporting.Outcome {
			defer close(delivered)
			return reporting.Outcome{Status: reporting.OutcomeSent}
		})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/broadcast/users/2/report", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("relatório não foi processado pelo worker pool")
	}
}

func TestSendUserReport_RecipientNotLinked(t *testing.T) {
	_, userRepo, _, srv := newBroadcastServer(t)

	userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, Active: true}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/broadcast/users/2/report", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXT_005")
}

func TestSendUserReport_UserNotFound(t *testing.T) {
	_, userRepo, _, srv := newBroadcastServer(t)

	userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/broadcast/users/99/report", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendUserReport_PoolClosed(t *testing.T) {
	reportService, userRepo, pool, srv := newBroadcastServer(t)
	_ = reportService

	require.NoError(t, pool.Shutdown(time.Second))

	userRepo.EXPECT().GetUserByID(2).Return(addressableUser(2), nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/broadcast/users/2/report", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
