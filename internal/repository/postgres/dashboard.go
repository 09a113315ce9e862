package postgres

import (
	"context"
	"fmt"
	"time"
)

const (
	countContactsQuery      = `SELECT COUNT(*) FROM contacts`
	countOverdueQuery       = `SELECT COUNT(*) FROM contacts WHERE ` + overduePredicate
	countOpenOppsQuery      = `SELECT COUNT(*) FROM opportunities WHERE status='open'`
	countGoalsByStatusQuery = `SELECT COUNT(*) FILTER (WHERE achieved), COUNT(*) FILTER (WHERE NOT achieved) FROM contact_goals`
)

// CountContacts returns the number of contacts.
func (p *Postgres) CountContacts(ctx context.Context) (int64, error) {
	return p.count(ctx, "count contacts", countContactsQuery)
}

// CountOverdueContacts returns the number of contacts due for follow-up at now.
func (p *Postgres) CountOverdueContacts(ctx context.Context, now time.Time) (int64, error) {
	return p.count(ctx, "count overdue contacts", countOverdueQuery, now)
}

// CountOpenOpportunities returns the number of open opportunities.
func (p *Postgres) CountOpenOpportunities(ctx context.Context) (int64, error) {
	return p.count(ctx, "count open opportunities", countOpenOppsQuery)
}

// CountGoals returns achieved and open goal counts.
func (p *Postgres) CountGoals(ctx context.Context) (achieved, open int64, err error) {
	if err := p.db.QueryRow(ctx, countGoalsByStatusQuery).Scan(&achieved, &open); err != nil {
		return 0, 0, fmt.Errorf("count goals: %w", err)
	}
	return achieved, open, nil
}

func (p *Postgres) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := p.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
