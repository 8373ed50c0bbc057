package repository

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/utils"
)

const transactionsTable = "transactions"

// TransactionRepository appends executed transactions. Rows are never
// updated or deleted.
type TransactionRepository interface {
	Append(ctx context.Context, transaction domain.Transaction) (string, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) Append(ctx context.Context, transaction domain.Transaction) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate transaction id")
	}

	metadata, err := json.Marshal(transaction.Metadata)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode transaction metadata")
	}

	insertSQL, args, err := squirrel.
		Insert(transactionsTable).
		Columns(
			"id", "client_id", "advisor_id", "product_code", "transaction_type",
			"amount", "status", "external_transaction_id", "metadata", "created_at",
		).
		Values(
			id, transaction.ClientID, transaction.AdvisorID, transaction.ProductCode,
			transaction.TransactionType, transaction.Amount, transaction.Status,
			transaction.ExternalTransactionID, metadata, transaction.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", errors.Wrapf(err, "database error (code: %s)", pqErr.Code)
		}
		return "", errors.Wrap(err, "failed to insert transaction")
	}

	return id, nil
}
