package postgres

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	referralColumns     = `id, giver_id, receiver_id, description, status, value, created_at, updated_at, completed_at`
	insertReferralQuery = `INSERT INTO referrals(id, giver_id, receiver_id, description, status, value)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING ` + referralColumns
	selectReferralQuery          = `SELECT ` + referralColumns + ` FROM referrals WHERE id=$1`
	selectReferralForUpdateQuery = `SELECT status FROM referrals WHERE id=$1 FOR UPDATE`
	updateReferralStatusQuery    = `
UPDATE referrals
SET status=$2, updated_at=NOW(), completed_at = CASE WHEN $2 = 'completed' THEN NOW() ELSE completed_at END
WHERE id=$1
RETURNING ` + referralColumns
	listReferralsQuery = `SELECT ` + referralColumns + ` FROM referrals
WHERE ($1 = '' OR giver_id::text = $1 OR receiver_id::text = $1)
  AND ($2 = '' OR status = $2)
ORDER BY created_at DESC`
	referralStatusCountsQuery = `SELECT status, COUNT(*) FROM referrals GROUP BY status`
	topGiversQuery            = `
SELECT c.id, c.name,
       COUNT(*) FILTER (WHERE r.giver_id = c.id)                           AS given,
       COUNT(*) FILTER (WHERE r.receiver_id = c.id)                        AS received,
       COUNT(*) FILTER (WHERE r.giver_id = c.id AND r.status = 'completed') AS completed
FROM contacts c
JOIN referrals r ON r.giver_id = c.id OR r.receiver_id = c.id
GROUP BY c.id, c.name
HAVING COUNT(*) FILTER (WHERE r.giver_id = c.id) > 0
ORDER BY given DESC, completed DESC, c.name
LIMIT $1`
)

// CreateReferral inserts a referral between two contacts.
func (p *Postgres) CreateReferral(ctx context.Context, r entities.Referral) (*entities.Referral, error) {
	res, err := scanReferral(p.db.QueryRow(ctx, insertReferralQuery, r.ID, r.GiverID, r.ReceiverID, r.Description, string(r.Status), r.Value))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("insert referral: %w", err)
	}
	p.log.Infow("referral created", "referral_id", res.ID, "giver_id", res.GiverID, "receiver_id", res.ReceiverID)
	return res, nil
}

// GetReferral fetches a referral by id.
func (p *Postgres) GetReferral(ctx context.Context, id string) (*entities.Referral, error) {
	res, err := scanReferral(p.db.QueryRow(ctx, selectReferralQuery, id))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrReferralNotFound
		}
		return nil, fmt.Errorf("get referral: %w", err)
	}
	return res, nil
}

// UpdateReferralStatus moves a referral from one status to another, failing if it changed concurrently.
func (p *Postgres) UpdateReferralStatus(ctx context.Context, id string, from, to entities.ReferralStatus) (*entities.Referral, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	if err := tx.QueryRow(ctx, selectReferralForUpdateQuery, id).Scan(&current); err != nil {
		if isNotFound(err) {
			return nil, entities.ErrReferralNotFound
		}
		return nil, fmt.Errorf("lock referral: %w", err)
	}
	if entities.ReferralStatus(current) != from {
		return nil, fmt.Errorf("%w: referral is %s", entities.ErrInvalidTransition, current)
	}

	res, err := scanReferral(tx.QueryRow(ctx, updateReferralStatusQuery, id, string(to)))
	if err != nil {
		return nil, fmt.Errorf("update referral status: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("referral status updated", "referral_id", id, "from", from, "to", to)
	return res, nil
}

// ListReferrals returns referrals matching filter, newest first.
func (p *Postgres) ListReferrals(ctx context.Context, filter entities.ReferralFilter) ([]entities.Referral, error) {
	status := ""
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	rows, err := p.db.Query(ctx, listReferralsQuery, filter.ContactID, status)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Referral, 0)
	for rows.Next() {
		r, err := scanReferral(rows)
		if err != nil {
			return nil, fmt.Errorf("scan referral: %w", err)
		}
		res = append(res, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate referrals: %w", err)
	}
	return res, nil
}

// ReferralStats returns counts by status and the top givers.
func (p *Postgres) ReferralStats(ctx context.Context, limit int) (entities.ReferralStats, error) {
	byStatus, err := p.CountReferralsByStatus(ctx)
	if err != nil {
		return entities.ReferralStats{}, err
	}

	rows, err := p.db.Query(ctx, topGiversQuery, limit)
	if err != nil {
		return entities.ReferralStats{}, fmt.Errorf("top givers: %w", err)
	}
	defer rows.Close()

	givers := make([]entities.GiversGain, 0)
	for rows.Next() {
		var g entities.GiversGain
		if err := rows.Scan(&g.ContactID, &g.Name, &g.Given, &g.Received, &g.Completed); err != nil {
			return entities.ReferralStats{}, fmt.Errorf("scan top giver: %w", err)
		}
		g.Balance = g.Given - g.Received
		givers = append(givers, g)
	}
	if err := rows.Err(); err != nil {
		return entities.ReferralStats{}, fmt.Errorf("iterate top givers: %w", err)
	}

	return entities.ReferralStats{ByStatus: byStatus, TopGivers: givers}, nil
}

// CountReferralsByStatus groups referral counts by status.
func (p *Postgres) CountReferralsByStatus(ctx context.Context) (map[entities.ReferralStatus]int64, error) {
	rows, err := p.db.Query(ctx, referralStatusCountsQuery)
	if err != nil {
		return nil, fmt.Errorf("count referrals: %w", err)
	}
	defer rows.Close()

	res := map[entities.ReferralStatus]int64{}
	for rows.Next() {
		var (
			status string
			cnt    int64
		)
		if err := rows.Scan(&status, &cnt); err != nil {
			return nil, fmt.Errorf("scan referral count: %w", err)
		}
		res[entities.ReferralStatus(status)] = cnt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate referral counts: %w", err)
	}
	return res, nil
}

func scanReferral(row pgx.Row) (*entities.Referral, error) {
	var (
		r      entities.Referral
		status string
	)
	if err := row.Scan(&r.ID, &r.GiverID, &r.ReceiverID, &r.Description, &status, &r.Value, &r.CreatedAt, &r.UpdatedAt, &r.CompletedAt); err != nil {
		return nil, err
	}
	r.Status = entities.ReferralStatus(status)
	return &r, nil
}
