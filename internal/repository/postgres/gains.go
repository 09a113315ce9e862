package postgres

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	gainsColumns     = `id, contact_id, team_member_id, meeting_date, goals, accomplishments, interests, networks, skills, notes, created_at`
	insertGainsQuery = `
INSERT INTO gains_meetings(id, contact_id, team_member_id, meeting_date, goals, accomplishments, interests, networks, skills, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING ` + gainsColumns
	listGainsQuery = `SELECT ` + gainsColumns + ` FROM gains_meetings WHERE contact_id=$1 ORDER BY meeting_date DESC, created_at DESC`
)

// CreateGainsMeeting stores a GAINS meeting and logs it as an interaction in one transaction.
func (p *Postgres) CreateGainsMeeting(ctx context.Context, m entities.GainsMeeting) (*entities.GainsMeeting, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, insertGainsQuery,
		m.ID, m.ContactID, m.TeamMemberID, m.MeetingDate, m.Goals, m.Accomplishments, m.Interests, m.Networks, m.Skills, m.Notes)
	res, err := scanGains(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: meeting references unknown contact or team member", entities.ErrContactNotFound)
		}
		return nil, fmt.Errorf("insert gains meeting: %w", err)
	}

	if _, err := tx.Exec(ctx, insertInteractionQuery, uuid.NewString(), m.ContactID, m.TeamMemberID, "gains_meeting", "", m.MeetingDate); err != nil {
		return nil, fmt.Errorf("insert gains interaction: %w", err)
	}
	if _, err := tx.Exec(ctx, touchContactQuery, m.ContactID, m.MeetingDate); err != nil {
		return nil, fmt.Errorf("touch contact: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	p.log.Infow("gains meeting recorded", "gains_meeting_id", res.ID, "contact_id", res.ContactID)
	return res, nil
}

// ListGainsMeetings returns meetings of a contact, newest first.
func (p *Postgres) ListGainsMeetings(ctx context.Context, contactID string) ([]entities.GainsMeeting, error) {
	rows, err := p.db.Query(ctx, listGainsQuery, contactID)
	if err != nil {
		return nil, fmt.Errorf("list gains meetings: %w", err)
	}
	defer rows.Close()

	res := make([]entities.GainsMeeting, 0)
	for rows.Next() {
		m, err := scanGains(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gains meeting: %w", err)
		}
		res = append(res, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gains meetings: %w", err)
	}
	return res, nil
}

func scanGains(row pgx.Row) (*entities.GainsMeeting, error) {
	var m entities.GainsMeeting
	err := row.Scan(&m.ID, &m.ContactID, &m.TeamMemberID, &m.MeetingDate, &m.Goals, &m.Accomplishments,
		&m.Interests, &m.Networks, &m.Skills, &m.Notes, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
