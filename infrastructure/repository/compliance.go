package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
)

const complianceTable = "compliance_flags"

// ComplianceRepository reads regulatory follow-up flags.
type ComplianceRepository interface {
	ListFlags(ctx context.Context, advisorID string) ([]domain.ComplianceFlag, error)
}

type complianceRepository struct {
	conn *postgres.Connection
}

func NewComplianceRepository(conn *postgres.Connection) ComplianceRepository {
	return &complianceRepository{
		conn: conn,
	}
}

func (r *complianceRepository) ListFlags(ctx context.Context, advisorID string) ([]domain.ComplianceFlag, error) {
	flagsSQL, args, err := squirrel.
		Select("id, title, description, severity, status").
		From(complianceTable).
		Where(squirrel.Eq{"advisor_id": advisorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, flagsSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	flags := make([]domain.ComplianceFlag, 0)

	for rows.Next() {
		flag := domain.ComplianceFlag{}
		if err := rows.Scan(
			&flag.ID,
			&flag.Title,
			&flag.Description,
			&flag.Severity,
			&flag.Status,
		); err != nil {
			return nil, err
		}

		flags = append(flags, flag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return flags, nil
}
