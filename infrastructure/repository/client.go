package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
)

const clientsTable = "clients"

// ClientRepository reads client profiles. Every query is scoped by advisor ID;
// a client owned by another advisor is indistinguishable from an absent one.
type ClientRepository interface {
	GetClient(ctx context.Context, advisorID, clientID string) (*domain.ClientProfile, error)
	ListClientsByIDs(ctx context.Context, advisorID string, clientIDs []string) ([]domain.ClientProfile, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetClient(ctx context.Context, advisorID, clientID string) (*domain.ClientProfile, error) {
	clientSQL, args, err := squirrel.
		Select("id, name, segment, COALESCE(notes, ''), COALESCE(email, ''), COALESCE(phone, '')").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID, "advisor_id": advisorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	row := r.conn.QueryRowContext(ctx, clientSQL, args...)

	profile := &domain.ClientProfile{}
	if err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Segment,
		&profile.Notes,
		&profile.Email,
		&profile.Phone,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

func (r *clientRepository) ListClientsByIDs(ctx context.Context, advisorID string, clientIDs []string) ([]domain.ClientProfile, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}

	clientsSQL, args, err := squirrel.
		Select("id, name, segment, COALESCE(notes, ''), COALESCE(email, ''), COALESCE(phone, '')").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientIDs, "advisor_id": advisorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, clientsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.ClientProfile, 0)

	for rows.Next() {
		profile := domain.ClientProfile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Segment,
			&profile.Notes,
			&profile.Email,
			&profile.Phone,
		); err != nil {
			return nil, err
		}

		clients = append(clients, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
