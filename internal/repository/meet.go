package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const meetColumns = `id, organizer_id, organization_id, name, description, location,
	latitude, longitude, start_time, start_tbc, end_time, end_tbc,
	opening_date, closing_date, capacity, waitlist_size, status,
	auto_placement, auto_promote_waitlist, allow_guests, max_guests,
	currency, cost_cents, deposit_cents,
	indemnity_required, indemnity_text, indemnity_minors,
	approved_response, rejected_response, waitlisted_response,
	share_code, image_ref, created_at, updated_at`

const definitionColumns = `id, meet_id, field_key, label, field_type, required, options, position`

type MeetRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMeetRepo(db *dbpg.DB) *MeetRepository {
	return &MeetRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MeetRepository) Create(ctx context.Context, m *domain.Meet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO meets (` + meetColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			          $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			          $25, $26, $27, $28, $29, $30, $31, $32, $33, $34)`
	_, err = tx.ExecContext(ctx, query,
		m.ID, m.OrganizerID, m.OrganizationID, m.Name, m.Description, m.Location,
		m.Latitude, m.Longitude, m.StartTime, m.StartTBC, m.EndTime, m.EndTBC,
		m.OpeningDate, m.ClosingDate, m.Capacity, m.WaitlistSize, m.Status,
		m.AutoPlacement, m.AutoPromoteWaitlist, m.AllowGuests, m.MaxGuests,
		m.Currency, m.CostCents, m.DepositCents,
		m.IndemnityRequired, m.IndemnityText, m.IndemnityMinors,
		m.ApprovedResponse, m.RejectedResponse, m.WaitlistedResponse,
		m.ShareCode, m.ImageRef, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meet: %w", err)
	}

	if err = insertDefinitions(ctx, tx, m.MetaDefinitions); err != nil {
		return err
	}

	return tx.Commit()
}

// Update writes the editable fields and replaces the meta definitions.
// Status and share code are left alone.
func (r *MeetRepository) Update(ctx context.Context, m *domain.Meet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE meets
			  SET organization_id = $2, name = $3, description = $4, location = $5,
			      latitude = $6, longitude = $7, start_time = $8, start_tbc = $9,
			      end_time = $10, end_tbc = $11, opening_date = $12, closing_date = $13,
			      capacity = $14, waitlist_size = $15,
			      auto_placement = $16, auto_promote_waitlist = $17,
			      allow_guests = $18, max_guests = $19,
			      currency = $20, cost_cents = $21, deposit_cents = $22,
			      indemnity_required = $23, indemnity_text = $24, indemnity_minors = $25,
			      approved_response = $26, rejected_response = $27, waitlisted_response = $28,
			      image_ref = $29, updated_at = $30
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query,
		m.ID, m.OrganizationID, m.Name, m.Description, m.Location,
		m.Latitude, m.Longitude, m.StartTime, m.StartTBC,
		m.EndTime, m.EndTBC, m.OpeningDate, m.ClosingDate,
		m.Capacity, m.WaitlistSize,
		m.AutoPlacement, m.AutoPromoteWaitlist,
		m.AllowGuests, m.MaxGuests,
		m.Currency, m.CostCents, m.DepositCents,
		m.IndemnityRequired, m.IndemnityText, m.IndemnityMinors,
		m.ApprovedResponse, m.RejectedResponse, m.WaitlistedResponse,
		m.ImageRef, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update meet: %w", err)
	}
	if err = expectOne(res, domain.ErrMeetNotFound); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM meet_meta_definitions WHERE meet_id = $1`, m.ID); err != nil {
		return fmt.Errorf("delete meta definitions: %w", err)
	}
	if err = insertDefinitions(ctx, tx, m.MetaDefinitions); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MeetRepository) UpdateStatus(ctx context.Context, id string, status domain.MeetStatus) error {
	query := `UPDATE meets SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update meet status: %w", err)
	}
	return expectOne(res, domain.ErrMeetNotFound)
}

func (r *MeetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM meets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meet: %w", err)
	}
	return expectOne(res, domain.ErrMeetNotFound)
}

func (r *MeetRepository) GetByID(ctx context.Context, id string) (*domain.Meet, error) {
	return r.getOne(ctx, `SELECT `+meetColumns+` FROM meets WHERE id = $1`, id)
}

func (r *MeetRepository) GetByShareCode(ctx context.Context, code string) (*domain.Meet, error) {
	return r.getOne(ctx, `SELECT `+meetColumns+` FROM meets WHERE share_code = $1`, code)
}

func (r *MeetRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Meet, error) {
	query := `SELECT ` + meetColumns + `
			  FROM meets
			  WHERE organizer_id = $1
			  ORDER BY start_time NULLS LAST, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list meets by organizer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Meet
	for rows.Next() {
		m, err := scanMeet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meet: %w", err)
		}
		res = append(res, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachDefinitions(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *MeetRepository) getOne(ctx context.Context, query string, arg any) (*domain.Meet, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get meet: %w", err)
	}

	m, err := scanMeet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMeetNotFound
		}
		return nil, fmt.Errorf("scan meet: %w", err)
	}

	if err = r.attachDefinitions(ctx, []*domain.Meet{m}); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *MeetRepository) attachDefinitions(ctx context.Context, meets []*domain.Meet) error {
	if len(meets) == 0 {
		return nil
	}

	ids := make([]string, len(meets))
	for i, m := range meets {
		ids[i] = m.ID
	}

	query := `SELECT ` + definitionColumns + `
			  FROM meet_meta_definitions
			  WHERE meet_id = ANY($1)
			  ORDER BY position`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list meta definitions: %w", err)
	}
	defer rows.Close()

	return collectDefinitions(rows, meets)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeet(row rowScanner) (*domain.Meet, error) {
	var m domain.Meet
	err := row.Scan(
		&m.ID, &m.OrganizerID, &m.OrganizationID, &m.Name, &m.Description, &m.Location,
		&m.Latitude, &m.Longitude, &m.StartTime, &m.StartTBC, &m.EndTime, &m.EndTBC,
		&m.OpeningDate, &m.ClosingDate, &m.Capacity, &m.WaitlistSize, &m.Status,
		&m.AutoPlacement, &m.AutoPromoteWaitlist, &m.AllowGuests, &m.MaxGuests,
		&m.Currency, &m.CostCents, &m.DepositCents,
		&m.IndemnityRequired, &m.IndemnityText, &m.IndemnityMinors,
		&m.ApprovedResponse, &m.RejectedResponse, &m.WaitlistedResponse,
		&m.ShareCode, &m.ImageRef, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// collectDefinitions reads meta definition rows onto their meets.
func collectDefinitions(rows *sql.Rows, meets []*domain.Meet) error {
	byID := make(map[string]*domain.Meet, len(meets))
	for _, m := range meets {
		m.MetaDefinitions = []domain.MetaDefinition{}
		byID[m.ID] = m
	}

	for rows.Next() {
		var d domain.MetaDefinition
		if err := rows.Scan(
			&d.ID, &d.MeetID, &d.FieldKey, &d.Label,
			&d.FieldType, &d.Required, pq.Array(&d.Options), &d.Position,
		); err != nil {
			return fmt.Errorf("scan meta definition: %w", err)
		}
		if m, ok := byID[d.MeetID]; ok {
			m.MetaDefinitions = append(m.MetaDefinitions, d)
		}
	}

	return rows.Err()
}

func insertDefinitions(ctx context.Context, tx *sql.Tx, defs []domain.MetaDefinition) error {
	query := `INSERT INTO meet_meta_definitions (` + definitionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, d := range defs {
		options := d.Options
		if options == nil {
			options = []string{}
		}
		if _, err := tx.ExecContext(ctx, query,
			d.ID, d.MeetID, d.FieldKey, d.Label,
			d.FieldType, d.Required, pq.Array(options), d.Position,
		); err != nil {
			return fmt.Errorf("insert meta definition %s: %w", d.FieldKey, err)
		}
	}
	return nil
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
