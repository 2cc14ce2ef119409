package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const metaAuthTable = "meta_auth"

// MetaAuthRepository guarda o token de longa duração da Graph API por
// usuário. Só admins possuem registro próprio; membros herdam o token de
// quem os criou.
type MetaAuthRepository interface {
	GetByOwner(ownerID int) (*domain.MetaAuth, error)
	UpsertToken(ownerID int, longToken string) error
	DeleteByOwner(ownerID int) error
}

type metaAuthRepository struct {
	conn *postgres.Connection
}

func NewMetaAuthRepository(conn *postgres.Connection) MetaAuthRepository {
	return &metaAuthRepository{
		conn: conn,
	}
}

func (r *metaAuthRepository) GetByOwner(ownerID int) (*domain.MetaAuth, error) {
	queryBuilder := squirrel.
		Select("id", "owner_id", "long_token", "created_at", "updated_at").
		From(metaAuthTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar)

	authSQL, authArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var auth domain.MetaAuth
	err = r.conn.QueryRow(authSQL, authArgs...).Scan(
		&auth.ID,
		&auth.OwnerID,
		&auth.LongToken,
		&auth.CreatedAt,
		&auth.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &auth, nil
}

func (r *metaAuthRepository) UpsertToken(ownerID int, longToken string) error {
	queryBuilder := squirrel.
		Insert(metaAuthTable).
		Columns("owner_id", "long_token").
		Values(ownerID, longToken).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET long_token = EXCLUDED.long_token, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar)

	authSQL, authArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(authSQL, authArgs...)
	return err
}

func (r *metaAuthRepository) DeleteByOwner(ownerID int) error {
	queryBuilder := squirrel.
		Delete(metaAuthTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar)

	authSQL, authArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(authSQL, authArgs...)
	return err
}
