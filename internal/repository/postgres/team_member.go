package postgres

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	teamMemberColumns      = `id, name, email, role, is_active, created_at`
	insertTeamMemberQuery  = `INSERT INTO team_members(id, name, email, role, is_active) VALUES ($1,$2,$3,$4,$5) RETURNING ` + teamMemberColumns
	listTeamMembersQuery   = `SELECT ` + teamMemberColumns + ` FROM team_members WHERE ($1 = false OR is_active) ORDER BY name`
	setTeamMemberActiveSQL = `UPDATE team_members SET is_active=$2 WHERE id=$1 RETURNING ` + teamMemberColumns
)

// CreateTeamMember inserts a team member.
func (p *Postgres) CreateTeamMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	row := p.db.QueryRow(ctx, insertTeamMemberQuery, m.ID, m.Name, m.Email, m.Role, m.IsActive)
	res, err := scanTeamMember(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	p.log.Infow("team member created", "team_member_id", res.ID)
	return res, nil
}

// ListTeamMembers returns team members ordered by name.
func (p *Postgres) ListTeamMembers(ctx context.Context, onlyActive bool) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, listTeamMembersQuery, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}

// SetTeamMemberActive updates the is_active flag.
func (p *Postgres) SetTeamMemberActive(ctx context.Context, id string, isActive bool) (*entities.TeamMember, error) {
	res, err := scanTeamMember(p.db.QueryRow(ctx, setTeamMemberActiveSQL, id, isActive))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrTeamMemberNotFound
		}
		p.log.Errorw("failed to set team member active", "error", err, "team_member_id", id)
		return nil, fmt.Errorf("set team member active: %w", err)
	}
	p.log.Infow("team member active flag updated", "team_member_id", id, "is_active", isActive)
	return res, nil
}

func scanTeamMember(row pgx.Row) (*entities.TeamMember, error) {
	var m entities.TeamMember
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.IsActive, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
