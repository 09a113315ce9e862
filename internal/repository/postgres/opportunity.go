package postgres

import (
	"context"
	"fmt"
	"time"

	"pulse-network-organizer/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	opportunityColumns     = `id, contact_id, title, type, description, location, scheduled_at, status, created_by, created_at`
	insertOpportunityQuery = `
INSERT INTO opportunities(id, contact_id, title, type, description, location, scheduled_at, status, created_by)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING ` + opportunityColumns
	selectOpportunityQuery = `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id=$1`
	listOpportunitiesQuery = `SELECT ` + opportunityColumns + ` FROM opportunities
WHERE ($1 = '' OR contact_id::text = $1)
  AND ($2 = '' OR status = $2)
  AND ($3::timestamptz IS NULL OR scheduled_at >= $3)
  AND ($4::timestamptz IS NULL OR scheduled_at <= $4)
ORDER BY scheduled_at, id`
	nearOpportunitiesQuery = `SELECT ` + opportunityColumns + ` FROM opportunities
WHERE ($1::uuid IS NOT NULL AND contact_id = $1::uuid)
   OR scheduled_at BETWEEN $2::timestamptz - $3::interval AND $2::timestamptz + $3::interval
ORDER BY scheduled_at, id`
	lockOpportunityQuery      = `SELECT status FROM opportunities WHERE id=$1 FOR UPDATE`
	setOpportunityStatusQuery = `UPDATE opportunities SET status=$2 WHERE id=$1 RETURNING ` + opportunityColumns
)

// CreateOpportunity inserts an opportunity.
func (p *Postgres) CreateOpportunity(ctx context.Context, o entities.Opportunity) (*entities.Opportunity, error) {
	row := p.db.QueryRow(ctx, insertOpportunityQuery,
		o.ID, o.ContactID, o.Title, o.Type, o.Description, o.Location, o.ScheduledAt, string(o.Status), o.CreatedBy)
	res, err := scanOpportunity(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: opportunity references unknown contact or team member", entities.ErrContactNotFound)
		}
		return nil, fmt.Errorf("insert opportunity: %w", err)
	}
	p.log.Infow("opportunity created", "opportunity_id", res.ID)
	return res, nil
}

// GetOpportunity fetches an opportunity by id.
func (p *Postgres) GetOpportunity(ctx context.Context, id string) (*entities.Opportunity, error) {
	res, err := scanOpportunity(p.db.QueryRow(ctx, selectOpportunityQuery, id))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return res, nil
}

// ListOpportunities returns opportunities matching filter ordered by schedule.
func (p *Postgres) ListOpportunities(ctx context.Context, filter entities.OpportunityFilter) ([]entities.Opportunity, error) {
	status := ""
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	return p.queryOpportunities(ctx, "list opportunities", listOpportunitiesQuery, filter.ContactID, status, filter.From, filter.To)
}

// ListOpportunitiesNear returns opportunities of the same contact or scheduled within window of at.
func (p *Postgres) ListOpportunitiesNear(ctx context.Context, contactID *string, at time.Time, window time.Duration) ([]entities.Opportunity, error) {
	return p.queryOpportunities(ctx, "list nearby opportunities", nearOpportunitiesQuery, contactID, at, window)
}

// SetOpportunityStatus moves an opportunity from one status to another.
func (p *Postgres) SetOpportunityStatus(ctx context.Context, id string, from, to entities.OpportunityStatus) (*entities.Opportunity, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	if err := tx.QueryRow(ctx, lockOpportunityQuery, id).Scan(&current); err != nil {
		if isNotFound(err) {
			return nil, entities.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("lock opportunity: %w", err)
	}
	if entities.OpportunityStatus(current) != from {
		return nil, fmt.Errorf("%w: opportunity is %s", entities.ErrInvalidTransition, current)
	}

	res, err := scanOpportunity(tx.QueryRow(ctx, setOpportunityStatusQuery, id, string(to)))
	if err != nil {
		return nil, fmt.Errorf("set opportunity status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	p.log.Infow("opportunity status updated", "opportunity_id", id, "status", to)
	return res, nil
}

func (p *Postgres) queryOpportunities(ctx context.Context, op, query string, args ...any) ([]entities.Opportunity, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]entities.Opportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		res = append(res, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return res, nil
}

func scanOpportunity(row pgx.Row) (*entities.Opportunity, error) {
	var (
		o      entities.Opportunity
		status string
	)
	err := row.Scan(&o.ID, &o.ContactID, &o.Title, &o.Type, &o.Description, &o.Location, &o.ScheduledAt, &status, &o.CreatedBy, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = entities.OpportunityStatus(status)
	return &o, nil
}
