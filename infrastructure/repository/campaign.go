package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/finxpert/advisor-api/infrastructure/database/postgres"
	"github.com/finxpert/advisor-api/internal/domain"
	"github.com/finxpert/advisor-api/pkg/utils"
)

const (
	templatesTable = "campaign_templates"
	sendsTable     = "campaign_sends"
)

// CampaignRepository resolves templates and appends delivery logs.
type CampaignRepository interface {
	ListTemplates(ctx context.Context, advisorID string) ([]domain.CampaignTemplate, error)
	GetTemplate(ctx context.Context, advisorID, templateID string) (*domain.CampaignTemplate, error)
	AppendSendLog(ctx context.Context, sendLog domain.CampaignSendLog) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListTemplates(ctx context.Context, advisorID string) ([]domain.CampaignTemplate, error) {
	templatesSQL, args, err := squirrel.
		Select("id, channel, title, body, cta").
		From(templatesTable).
		Where(squirrel.Eq{"advisor_id": advisorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, templatesSQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	templates := make([]domain.CampaignTemplate, 0)

	for rows.Next() {
		template := domain.CampaignTemplate{}
		if err := rows.Scan(
			&template.ID,
			&template.Channel,
			&template.Title,
			&template.Body,
			&template.CTA,
		); err != nil {
			return nil, err
		}

		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *campaignRepository) GetTemplate(ctx context.Context, advisorID, templateID string) (*domain.CampaignTemplate, error) {
	templateSQL, args, err := squirrel.
		Select("id, channel, title, body, cta").
		From(templatesTable).
		Where(squirrel.Eq{"id": templateID, "advisor_id": advisorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	template := &domain.CampaignTemplate{}
	if err := r.conn.QueryRowContext(ctx, templateSQL, args...).Scan(
		&template.ID,
		&template.Channel,
		&template.Title,
		&template.Body,
		&template.CTA,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return template, nil
}

// AppendSendLog records one delivery attempt. The log is append-only and is
// written regardless of delivery outcome.
func (r *campaignRepository) AppendSendLog(ctx context.Context, sendLog domain.CampaignSendLog) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "failed to generate send log id")
	}

	insertSQL, args, err := squirrel.
		Insert(sendsTable).
		Columns("id", "template_id", "client_id", "channel", "advisor_id", "status", "error", "sent_at").
		Values(id, sendLog.TemplateID, sendLog.ClientID, sendLog.Channel, sendLog.AdvisorID, sendLog.Status, sendLog.Error, sendLog.SentAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(err, "database error (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "failed to insert send log")
	}

	return nil
}
