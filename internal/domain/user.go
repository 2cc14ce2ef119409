package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de usuário. Membros são criados por um administrador e herdam o
// token do Meta desse administrador (cadeia de um nível, nunca mais profunda).
const (
	RoleAdmin  = 1
	RoleMember = 2
)

type User struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	Lastname             string     `json:"lastname"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	Active               bool       `json:"active"`
	RoleID               int        `json:"role_id"`
	AdAccountID          *string    `json:"ad_account_id"`
	CreatedByID          *int       `json:"created_by_id"`
	TelegramChatID       *int64     `json:"telegram_chat_id"`
	TelegramUsername     *string    `json:"telegram_username"`
	TelegramToken        *string    `json:"-"`
	TelegramDailyEnabled bool       `json:"telegram_daily_enabled"`
	Locale               *string    `json:"locale"`
	Deleted              bool       `json:"deleted"`
	DeletedAt            *time.Time `json:"deleted_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}

// HasTelegram indica se o usuário possui um chat do Telegram vinculado
func (u *User) HasTelegram() bool {
	return u.TelegramChatID != nil && *u.TelegramChatID != 0
}

type UpdateUserRequest struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Email       *string `json:"email"`
	Active      *bool   `json:"active"`
	RoleID      *int    `json:"role_id"`
	AdAccountID *string `json:"ad_account_id"`
	Locale      *string `json:"locale"`
	Deleted     *bool   `json:"deleted"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserAccountID *string
	jwt.RegisteredClaims
}

// MetaAuth guarda o token de longa duração do Meta de um administrador.
// É gravado apenas pelo fluxo de troca de token; a geração de relatórios
// só o lê.
type MetaAuth struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"owner_id"`
	LongToken *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *MetaAuth) HasToken() bool {
	return a != nil && a.LongToken != nil && *a.LongToken != ""
}
