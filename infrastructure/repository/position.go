package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
)

const positionsTable = "product_positions"

// PositionRepository reads normalized holdings from the backing store.
type PositionRepository interface {
	ListByType(ctx context.Context, advisorID string, productType domain.ProductType) ([]domain.ProductSnapshot, error)
	ListAlternative(ctx context.Context, advisorID string) ([]domain.ProductSnapshot, error)
}

type positionRepository struct {
	conn *postgres.Connection
}

func NewPositionRepository(conn *postgres.Connection) PositionRepository {
	return &positionRepository{
		conn: conn,
	}
}

func (r *positionRepository) ListByType(ctx context.Context, advisorID string, productType domain.ProductType) ([]domain.ProductSnapshot, error) {
	positionsSQL, args, err := squirrel.
		Select("client_id, product_code, product_name, type, amount_invested, current_value, metadata").
		From(positionsTable).
		Where(squirrel.Eq{"type": productType, "advisor_id": advisorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	return r.queryPositions(ctx, positionsSQL, args)
}

// ListAlternative selects AIF holdings, identified by their product code.
func (r *positionRepository) ListAlternative(ctx context.Context, advisorID string) ([]domain.ProductSnapshot, error) {
	positionsSQL, args, err := squirrel.
		Select("client_id, product_code, product_name, type, amount_invested, current_value, metadata").
		From(positionsTable).
		Where(squirrel.Eq{"advisor_id": advisorID}).
		Where(squirrel.Like{"product_code": "%AIF%"}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	return r.queryPositions(ctx, positionsSQL, args)
}

func (r *positionRepository) queryPositions(ctx context.Context, positionsSQL string, args []interface{}) ([]domain.ProductSnapshot, error) {
	rows, err := r.conn.QueryContext(ctx, positionsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	positions := make([]domain.ProductSnapshot, 0)

	for rows.Next() {
		snapshot, err := deserializePosition(rows)
		if err != nil {
			return nil, err
		}

		positions = append(positions, *snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

func deserializePosition(rows *sql.Rows) (*domain.ProductSnapshot, error) {
	snapshot := &domain.ProductSnapshot{}
	var metadata []byte

	if err := rows.Scan(
		&snapshot.ClientID,
		&snapshot.ProductCode,
		&snapshot.ProductName,
		&snapshot.Type,
		&snapshot.AmountInvested,
		&snapshot.CurrentValue,
		&metadata,
	); err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &snapshot.Metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode position metadata")
		}
	}

	return snapshot, nil
}
