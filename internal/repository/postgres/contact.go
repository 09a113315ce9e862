package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-network-organizer/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	contactColumns = `id, name, email, phone, company, position, location, affiliation, referral_source,
tags, linkedin_connections, notes, assigned_to, contact_frequency_days, last_contacted_at, created_at, updated_at`

	insertContactQuery = `
INSERT INTO contacts(id, name, email, phone, company, position, location, affiliation, referral_source,
    tags, linkedin_connections, notes, assigned_to, contact_frequency_days)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING ` + contactColumns
	updateContactQuery = `
UPDATE contacts SET name=$2, email=$3, phone=$4, company=$5, position=$6, location=$7, affiliation=$8,
    referral_source=$9, tags=$10, linkedin_connections=$11, notes=$12, assigned_to=$13,
    contact_frequency_days=$14, updated_at=NOW()
WHERE id=$1
RETURNING ` + contactColumns
	selectContactQuery      = `SELECT ` + contactColumns + ` FROM contacts WHERE id=$1`
	deleteContactQuery      = `DELETE FROM contacts WHERE id=$1`
	selectAllContactsQuery  = `SELECT ` + contactColumns + ` FROM contacts ORDER BY id`
	selectAssignedQuery     = `SELECT ` + contactColumns + ` FROM contacts WHERE assigned_to=$1 ORDER BY name, id`
	overduePredicate        = `(last_contacted_at IS NULL OR last_contacted_at < $1::timestamptz - make_interval(days => contact_frequency_days))`
	selectOverdueQuery      = `SELECT ` + contactColumns + ` FROM contacts WHERE ` + overduePredicate + ` ORDER BY last_contacted_at NULLS FIRST, name`
	insertInteractionQuery  = `INSERT INTO interactions(id, contact_id, team_member_id, channel, note, occurred_at) VALUES ($1,$2,$3,$4,$5,$6)`
	touchContactQuery       = `UPDATE contacts SET last_contacted_at = GREATEST(COALESCE(last_contacted_at, $2), $2), updated_at=NOW() WHERE id=$1`
	selectInteractionsQuery = `SELECT id, contact_id, team_member_id, channel, note, occurred_at
FROM interactions WHERE contact_id=$1 ORDER BY occurred_at DESC LIMIT $2`
)

// CreateContact inserts a contact.
func (p *Postgres) CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	row := p.db.QueryRow(ctx, insertContactQuery, contactArgs(c)...)
	res, err := scanContact(row)
	if err != nil {
		return nil, p.contactWriteError("insert contact", err)
	}
	p.log.Infow("contact created", "contact_id", res.ID)
	return res, nil
}

// GetContact fetches a contact by id.
func (p *Postgres) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	res, err := scanContact(p.db.QueryRow(ctx, selectContactQuery, id))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return res, nil
}

// UpdateContact replaces the editable fields of a contact.
func (p *Postgres) UpdateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	res, err := scanContact(p.db.QueryRow(ctx, updateContactQuery, contactArgs(c)...))
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrContactNotFound
		}
		return nil, p.contactWriteError("update contact", err)
	}
	p.log.Infow("contact updated", "contact_id", res.ID)
	return res, nil
}

// DeleteContact removes a contact and, by cascade, its goals, interactions and referrals.
func (p *Postgres) DeleteContact(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteContactQuery, id)
	if err != nil {
		if isNotFound(err) {
			return entities.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrContactNotFound
	}
	p.log.Infow("contact deleted", "contact_id", id)
	return nil
}

// ListContacts returns contacts matching filter ordered by name.
func (p *Postgres) ListContacts(ctx context.Context, filter entities.ContactFilter) ([]entities.Contact, error) {
	query, args := buildContactListQuery(filter)
	return p.queryContacts(ctx, "list contacts", query, args...)
}

// ListAllContacts returns every contact ordered by id.
func (p *Postgres) ListAllContacts(ctx context.Context) ([]entities.Contact, error) {
	return p.queryContacts(ctx, "list all contacts", selectAllContactsQuery)
}

// ListContactsAssignedTo returns contacts owned by a team member.
func (p *Postgres) ListContactsAssignedTo(ctx context.Context, teamMemberID string) ([]entities.Contact, error) {
	return p.queryContacts(ctx, "list assigned contacts", selectAssignedQuery, teamMemberID)
}

// ListOverdueContacts returns contacts whose follow-up is due at now.
func (p *Postgres) ListOverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error) {
	return p.queryContacts(ctx, "list overdue contacts", selectOverdueQuery, now)
}

// RecordInteraction stores an interaction and bumps the contact's last contact time.
func (p *Postgres) RecordInteraction(ctx context.Context, in entities.Interaction) (*entities.Interaction, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, touchContactQuery, in.ContactID, in.OccurredAt)
	if err != nil {
		if isNotFound(err) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("touch contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrContactNotFound
	}

	if _, err := tx.Exec(ctx, insertInteractionQuery, in.ID, in.ContactID, in.TeamMemberID, in.Channel, in.Note, in.OccurredAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, entities.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("insert interaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("interaction recorded", "contact_id", in.ContactID, "channel", in.Channel)
	return &in, nil
}

// ListInteractions returns the latest interactions of a contact.
func (p *Postgres) ListInteractions(ctx context.Context, contactID string, limit int) ([]entities.Interaction, error) {
	rows, err := p.db.Query(ctx, selectInteractionsQuery, contactID, limit)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Interaction, 0)
	for rows.Next() {
		var in entities.Interaction
		if err := rows.Scan(&in.ID, &in.ContactID, &in.TeamMemberID, &in.Channel, &in.Note, &in.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		res = append(res, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return res, nil
}

func (p *Postgres) queryContacts(ctx context.Context, op, query string, args ...any) ([]entities.Contact, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]entities.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			p.log.Errorw("failed to scan contact", "error", err, "op", op)
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		res = append(res, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return res, nil
}

func (p *Postgres) contactWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return entities.ErrContactExists
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: assigned team member", entities.ErrTeamMemberNotFound)
	case pgCode(err) == codeInvalidText:
		return fmt.Errorf("%w: malformed id", entities.ErrInvalidArgument)
	default:
		p.log.Errorw("contact write failed", "error", err, "op", op)
		return fmt.Errorf("%s: %w", op, err)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildContactListQuery(f entities.ContactFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		add(`(name ILIKE $%[1]d ESCAPE '\' OR company ILIKE $%[1]d ESCAPE '\' OR email ILIKE $%[1]d ESCAPE '\')`,
			"%"+likeEscaper.Replace(s)+"%")
	}
	if f.Tag != "" {
		add("$%d = ANY(tags)", f.Tag)
	}
	if f.Affiliation != "" {
		add("affiliation = $%d", f.Affiliation)
	}
	if f.AssignedTo != "" {
		add("assigned_to = $%d", f.AssignedTo)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(contactColumns)
	b.WriteString(" FROM contacts")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY name, id")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}

func contactArgs(c entities.Contact) []any {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	conns := c.LinkedInConnections
	if conns == nil {
		conns = []string{}
	}
	return []any{
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.Position, c.Location, c.Affiliation, c.ReferralSource,
		tags, conns, c.Notes, c.AssignedTo, c.ContactFrequencyDays,
	}
}

func scanContact(row pgx.Row) (*entities.Contact, error) {
	var c entities.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Position, &c.Location, &c.Affiliation, &c.ReferralSource,
		&c.Tags, &c.LinkedInConnections, &c.Notes, &c.AssignedTo, &c.ContactFrequencyDays, &c.LastContactedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
