package postgres

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	goalColumns      = `id, contact_id, title, description, category, target_date, achieved, created_at`
	insertGoalQuery  = `INSERT INTO contact_goals(id, contact_id, title, description, category, target_date) VALUES ($1,$2,$3,$4,$5,$6) RETURNING ` + goalColumns
	listGoalsQuery   = `SELECT ` + goalColumns + ` FROM contact_goals WHERE contact_id=$1 ORDER BY achieved, target_date NULLS LAST, created_at`
	setAchievedQuery = `UPDATE contact_goals SET achieved=$2 WHERE id=$1 RETURNING ` + goalColumns
	deleteGoalQuery  = `DELETE FROM contact_goals WHERE id=$1`
)

// CreateGoal inserts a goal for an existing contact.
func (p *Postgres) CreateGoal(ctx context.Context, g entities.Goal) (*entities.Goal, error) {
	res, err := scanGoal(p.db.QueryRow(ctx, insertGoalQuery, g.ID, g.ContactID, g.Title, g.Description, g.Category, g.TargetDate))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	p.log.Infow("goal created", "goal_id", res.ID, "contact_id", res.ContactID)
	return res, nil
}

// ListGoals returns goals of a contact, open ones first.
func (p *Postgres) ListGoals(ctx context.Context, contactID string) ([]entities.Goal, error) {
	rows, err := p.db.Query(ctx, listGoalsQuery, contactID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		res = append(res, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return res, nil
}

// SetGoalAchieved flips the achieved flag.
func (p *Postgres) SetGoalAchieved(ctx context.Context, id string, achieved bool) (*entities.Goal, error) {
	res, err := scanGoal(p.db.QueryRow(ctx, setAchievedQuery, id, achieved))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrGoalNotFound
		}
		return nil, fmt.Errorf("set goal achieved: %w", err)
	}
	return res, nil
}

// DeleteGoal removes a goal.
func (p *Postgres) DeleteGoal(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteGoalQuery, id)
	if err != nil {
		if isNotFound(err) {
			return entities.ErrGoalNotFound
		}
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*entities.Goal, error) {
	var g entities.Goal
	if err := row.Scan(&g.ID, &g.ContactID, &g.Title, &g.Description, &g.Category, &g.TargetDate, &g.Achieved, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
