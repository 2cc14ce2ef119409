package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "name", "lastname", "email", "password_hash", "active", "role_id",
	"ad_account_id", "created_by_id", "telegram_chat_id", "telegram_username",
	"telegram_token", "telegram_daily_enabled", "locale", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	GetUserByTelegramToken(token string) (*domain.User, error)
	GetUserByTelegramChatID(chatID int64) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	ListBroadcastTargets(dailyOnly bool) ([]*domain.User, error)
	SetTelegramRegistration(userID int, chatID int64, username, locale string) error
	ClearTelegramRegistration(userID int) error
	SetTelegramDailyEnabled(userID int, enabled bool) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "ad_account_id", "created_by_id", "telegram_token", "locale").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.AdAccountID, user.CreatedByID, user.TelegramToken, user.Locale).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.Lastname != "" {
		queryBuilder = queryBuilder.Set("lastname", user.Lastname)
	}

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.RoleID != 0 {
		queryBuilder = queryBuilder.Set("role_id", user.RoleID)
	}

	if user.AdAccountID != nil && *user.AdAccountID != "" {
		queryBuilder = queryBuilder.Set("ad_account_id", user.AdAccountID)
	}

	if user.Locale != nil && *user.Locale != "" {
		queryBuilder = queryBuilder.Set("locale", user.Locale)
	}

	if user.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", user.DeletedAt)
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"deleted": false, "id": userID})
}

func (r *userRepository) GetUserByTelegramToken(token string) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"deleted": false, "telegram_token": token})
}

func (r *userRepository) GetUserByTelegramChatID(chatID int64) (*domain.User, error) {
	return r.getUserWhere(squirrel.Eq{"deleted": false, "telegram_chat_id": chatID})
}

func (r *userRepository) getUserWhere(where squirrel.Eq) (*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRow(usersSQL, usersArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listUsers(queryBuilder)
}

// ListBroadcastTargets devolve os usuários aptos a receber relatório pelo
// Telegram. Com dailyOnly, só entram os que optaram pelo envio diário.
func (r *userRepository) ListBroadcastTargets(dailyOnly bool) ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "active": true}).
		Where("telegram_chat_id IS NOT NULL").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if dailyOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"telegram_daily_enabled": true})
	}

	return r.listUsers(queryBuilder)
}

func (r *userRepository) listUsers(queryBuilder squirrel.SelectBuilder) ([]*domain.User, error) {
	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) SetTelegramRegistration(userID int, chatID int64, username, locale string) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("telegram_chat_id", chatID).
		Set("telegram_username", username).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if locale != "" {
		queryBuilder = queryBuilder.Set("locale", locale)
	}

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

func (r *userRepository) ClearTelegramRegistration(userID int) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("telegram_chat_id", nil).
		Set("telegram_username", nil).
		Set("telegram_daily_enabled", false).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

func (r *userRepository) SetTelegramDailyEnabled(userID int, enabled bool) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("telegram_daily_enabled", enabled).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.AdAccountID,
		&user.CreatedByID,
		&user.TelegramChatID,
		&user.TelegramUsername,
		&user.TelegramToken,
		&user.TelegramDailyEnabled,
		&user.Locale,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
