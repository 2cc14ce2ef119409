package insighting

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

// TokenStatus resume a situação do token de longa duração do administrador
// para o endpoint de status da conexão.
type TokenStatus struct {
	Connected   bool       `json:"connected"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

// Service expõe os dados da plataforma de anúncios para consulta interativa
// pela API. Usa o mesmo pipeline de busca dos relatórios, mas devolve os
// dados crus em vez de formatá-los.
type Service interface {
	ListAccounts(userID int) ([]domain.AdAccount, error)
	ListCampaigns(userID int, accountID string, timeRange *domain.TimeRange, activeOnly bool) ([]domain.Campaign, error)
	ListAdSets(userID int, accountID, campaignID string, timeRange *domain.TimeRange) ([]domain.AdSet, error)
	ListAds(userID int, adsetID string, timeRange *domain.TimeRange) ([]domain.Ad, error)
	ConnectToken(userID int, shortLivedToken string) error
	TokenStatus(userID int) (*TokenStatus, error)
	DisconnectToken(userID int) error
}

type service struct {
	userRepo     repository.UserRepository
	metaAuthRepo repository.MetaAuthRepository
	integrator   meta.Integrator
	reports      reporting.Service
	now          func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	metaAuthRepo repository.MetaAuthRepository,
	integrator meta.Integrator,
	reports reporting.Service,
) Service {
	return &service{
		userRepo:     userRepo,
		metaAuthRepo: metaAuthRepo,
		integrator:   integrator,
		reports:      reports,
		now:          time.Now,
	}
}

// resolveAccess carrega o usuário e resolve o token de acesso dele. Quando
// accountID não é vazio, valida que um membro só consulta a própria conta.
func (s *service) resolveAccess(userID int, accountID string) (*domain.User, string, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if accountID != "" && !user.IsAdmin() {
		if user.AdAccountID == nil || *user.AdAccountID != accountID {
			return nil, "", reporting.ErrAccountAccessDenied
		}
	}

	token, err := s.reports.ResolveToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// resolveRange aplica o intervalo padrão (mês corrente) quando a requisição
// não trouxe since/until.
func (s *service) resolveRange(timeRange *domain.TimeRange) domain.TimeRange {
	if timeRange != nil {
		return *timeRange
	}
	return domain.PeriodMonth.Resolve(s.now())
}

// ListAccounts devolve as contas visíveis pelo token resolvido. Um membro
// enxerga apenas a conta vinculada a ele.
func (s *service) ListAccounts(userID int) ([]domain.AdAccount, error) {
	user, token, err := s.resolveAccess(userID, "")
	if err != nil {
		return nil, err
	}

	accounts, err := s.integrator.GetAdAccounts(token)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		return accounts, nil
	}

	if user.AdAccountID == nil {
		return []domain.AdAccount{}, nil
	}

	linked := make([]domain.AdAccount, 0, 1)
	for _, account := range accounts {
		if account.AccountID == *user.AdAccountID {
			linked = append(linked, account)
		}
	}

	return linked, nil
}

func (s *service) ListCampaigns(userID int, accountID string, timeRange *domain.TimeRange, activeOnly bool) ([]domain.Campaign, error) {
	_, token, err := s.resolveAccess(userID, accountID)
	if err != nil {
		return nil, err
	}

	return s.integrator.GetCampaigns(accountID, token, s.resolveRange(timeRange), activeOnly)
}

func (s *service) ListAdSets(userID int, accountID, campaignID string, timeRange *domain.TimeRange) ([]domain.AdSet, error) {
	_, token, err := s.resolveAccess(userID, accountID)
	if err != nil {
		return nil, err
	}

	return s.integrator.GetAdSets(accountID, campaignID, token, s.resolveRange(timeRange))
}

// ListAds não recebe o ID da conta: o escopo do conjunto de anúncios já é
// limitado pelo token resolvido do usuário.
func (s *service) ListAds(userID int, adsetID string, timeRange *domain.TimeRange) ([]domain.Ad, error) {
	_, token, err := s.resolveAccess(userID, "")
	if err != nil {
		return nil, err
	}

	return s.integrator.GetAds(adsetID, token, s.resolveRange(timeRange))
}

// ConnectToken troca o token de curta duração por um de longa duração e o
// persiste para o administrador. É o único caminho de escrita do token.
func (s *service) ConnectToken(userID int, shortLivedToken string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsAdmin() {
		return reporting.ErrAccountAccessDenied
	}

	response, err := s.integrator.ExchangeToken(shortLivedToken)
	if err != nil {
		return err
	}

	if err := s.metaAuthRepo.UpsertToken(user.ID, response.AccessToken); err != nil {
		return err
	}

	logrus.WithField("user_id", user.ID).Info("insights: long-lived token connected")

	return nil
}

func (s *service) TokenStatus(userID int) (*TokenStatus, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ownerID := user.ID
	if !user.IsAdmin() {
		if user.CreatedByID == nil {
			return &TokenStatus{Connected: false}, nil
		}
		ownerID = *user.CreatedByID
	}

	auth, err := s.metaAuthRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	if auth == nil || !auth.HasToken() {
		return &TokenStatus{Connected: false}, nil
	}

	return &TokenStatus{Connected: true, ConnectedAt: &auth.UpdatedAt}, nil
}

func (s *service) DisconnectToken(userID int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsAdmin() {
		return reporting.ErrAccountAccessDenied
	}

	return s.metaAuthRepo.DeleteByOwner(user.ID)
}
