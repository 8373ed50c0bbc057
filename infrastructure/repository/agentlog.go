package repository

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/utils"
)

const agentLogsTable = "agent_logs"

// AgentLogRepository appends insight-generator invocation logs.
type AgentLogRepository interface {
	Append(ctx context.Context, entry domain.AgentLogEntry) error
}

type agentLogRepository struct {
	conn *postgres.Connection
}

func NewAgentLogRepository(conn *postgres.Connection) AgentLogRepository {
	return &agentLogRepository{
		conn: conn,
	}
}

func (r *agentLogRepository) Append(ctx context.Context, entry domain.AgentLogEntry) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "failed to generate agent log id")
	}

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode agent log payload")
	}

	insertSQL, args, err := squirrel.
		Insert(agentLogsTable).
		Columns("id", "scope", "prompt", "payload", "error", "advisor_id", "tenant_id", "created_at").
		Values(id, entry.Scope, entry.Prompt, payload, entry.Error, entry.AdvisorID, entry.TenantID, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		return errors.Wrap(err, "failed to insert agent log")
	}

	return nil
}
