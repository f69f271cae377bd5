package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const attendeeColumns = `id, meet_id, user_id, name, email, phone, phone_normalized,
	guests, indemnity_accepted, indemnity_minors, status, created_at, updated_at`

const uniqueViolation = "23505"

type queryFunc func(ctx context.Context, query string, args ...any) (*sql.Rows, error)

type AttendeeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendeeRepo(db *dbpg.DB) *AttendeeRepository {
	return &AttendeeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendeeRepository) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryWithRetry(ctx, r.strategy, query, args...)
}

func (r *AttendeeRepository) FindByEmail(ctx context.Context, meetID, email string) ([]*domain.MeetAttendee, error) {
	return findByEmail(ctx, r.query, meetID, email)
}

func (r *AttendeeRepository) FindByPhone(ctx context.Context, meetID, phoneNormalized string) ([]*domain.MeetAttendee, error) {
	return findByPhone(ctx, r.query, meetID, phoneNormalized)
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id string) (*domain.MeetAttendee, error) {
	return getAttendee(ctx, r.query, id)
}

func (r *AttendeeRepository) ListByMeet(ctx context.Context, meetID string) ([]*domain.MeetAttendee, error) {
	query := `SELECT ` + attendeeColumns + `
			  FROM meet_attendees
			  WHERE meet_id = $1
			  ORDER BY created_at`

	res, err := listAttendees(ctx, r.query, query, meetID)
	if err != nil {
		return nil, fmt.Errorf("list attendees by meet: %w", err)
	}
	if err = attachAnswers(ctx, r.query, res); err != nil {
		return nil, err
	}

	return res, nil
}

// InTx runs fn in one transaction, committed only when fn returns nil.
func (r *AttendeeRepository) InTx(ctx context.Context, fn func(tx ports.ApplicationTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&applicationTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// applicationTx is the transactional side of the attendee store.
type applicationTx struct {
	tx *sql.Tx
}

func (t *applicationTx) FindByEmail(ctx context.Context, meetID, email string) ([]*domain.MeetAttendee, error) {
	return findByEmail(ctx, t.tx.QueryContext, meetID, email)
}

func (t *applicationTx) FindByPhone(ctx context.Context, meetID, phoneNormalized string) ([]*domain.MeetAttendee, error) {
	return findByPhone(ctx, t.tx.QueryContext, meetID, phoneNormalized)
}

// LockMeet reads the meet with a row lock held until the transaction ends.
func (t *applicationTx) LockMeet(ctx context.Context, meetID string) (*domain.Meet, error) {
	query := `SELECT ` + meetColumns + ` FROM meets WHERE id = $1 FOR UPDATE`

	m, err := scanMeet(t.tx.QueryRowContext(ctx, query, meetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMeetNotFound
		}
		return nil, fmt.Errorf("lock meet: %w", err)
	}

	defQuery := `SELECT ` + definitionColumns + `
				 FROM meet_meta_definitions
				 WHERE meet_id = $1
				 ORDER BY position`
	rows, err := t.tx.QueryContext(ctx, defQuery, meetID)
	if err != nil {
		return nil, fmt.Errorf("list meta definitions: %w", err)
	}
	defer rows.Close()

	if err = collectDefinitions(rows, []*domain.Meet{m}); err != nil {
		return nil, err
	}

	return m, nil
}

func (t *applicationTx) GetAttendee(ctx context.Context, id string) (*domain.MeetAttendee, error) {
	return getAttendee(ctx, t.tx.QueryContext, id)
}

func (t *applicationTx) CountByStatus(ctx context.Context, meetID string, statuses []domain.AttendeeStatus) (int, error) {
	query := `SELECT COUNT(*) FROM meet_attendees
			  WHERE meet_id = $1 AND status = ANY($2)`

	var n int
	if err := t.tx.QueryRowContext(ctx, query, meetID, pq.Array(statuses)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return n, nil
}

func (t *applicationTx) OldestWaitlisted(ctx context.Context, meetID string) (*domain.MeetAttendee, error) {
	query := `SELECT ` + attendeeColumns + `
			  FROM meet_attendees
			  WHERE meet_id = $1 AND status = $2
			  ORDER BY created_at, id
			  LIMIT 1`

	a, err := scanAttendee(t.tx.QueryRowContext(ctx, query, meetID, domain.AttendeeStatusWaitlisted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan attendee: %w", err)
	}
	return a, nil
}

func (t *applicationTx) Insert(ctx context.Context, a *domain.MeetAttendee) error {
	query := `INSERT INTO meet_attendees (` + attendeeColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := t.tx.ExecContext(ctx, query,
		a.ID, a.MeetID, a.UserID, a.Name, a.Email, a.Phone, a.PhoneNormalized,
		a.Guests, a.IndemnityAccepted, a.IndemnityMinors, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert attendee: %w", err)
	}
	return nil
}

func (t *applicationTx) Update(ctx context.Context, a *domain.MeetAttendee) error {
	query := `UPDATE meet_attendees
			  SET name = $2, email = $3, phone = $4, phone_normalized = $5,
			      guests = $6, indemnity_accepted = $7, indemnity_minors = $8, updated_at = $9
			  WHERE id = $1`
	res, err := t.tx.ExecContext(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.PhoneNormalized,
		a.Guests, a.IndemnityAccepted, a.IndemnityMinors, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("update attendee: %w", err)
	}
	return expectOne(res, domain.ErrAttendeeNotFound)
}

func (t *applicationTx) SetStatus(ctx context.Context, id string, status domain.AttendeeStatus) error {
	query := `UPDATE meet_attendees SET status = $2, updated_at = now() WHERE id = $1`
	res, err := t.tx.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("set attendee status: %w", err)
	}
	return expectOne(res, domain.ErrAttendeeNotFound)
}

func (t *applicationTx) Delete(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM meet_attendees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendee: %w", err)
	}
	return expectOne(res, domain.ErrAttendeeNotFound)
}

// SaveAnswers upserts one row per key; keys not given are untouched.
func (t *applicationTx) SaveAnswers(ctx context.Context, attendeeID string, answers map[string]string) error {
	query := `INSERT INTO meet_attendee_answers (attendee_id, field_key, value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (attendee_id, field_key) DO UPDATE SET value = EXCLUDED.value`

	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := t.tx.ExecContext(ctx, query, attendeeID, k, answers[k]); err != nil {
			return fmt.Errorf("save answer %s: %w", k, err)
		}
	}
	return nil
}

// shared by the repository and the transaction

// findByEmail returns the meet's attendees with this email, newest first.
// Answers are not loaded.
func findByEmail(ctx context.Context, q queryFunc, meetID, email string) ([]*domain.MeetAttendee, error) {
	query := `SELECT ` + attendeeColumns + `
			  FROM meet_attendees
			  WHERE meet_id = $1 AND email <> '' AND lower(email) = lower($2)
			  ORDER BY created_at DESC`

	res, err := listAttendees(ctx, q, query, meetID, email)
	if err != nil {
		return nil, fmt.Errorf("find attendees by email: %w", err)
	}
	return res, nil
}

func findByPhone(ctx context.Context, q queryFunc, meetID, phoneNormalized string) ([]*domain.MeetAttendee, error) {
	query := `SELECT ` + attendeeColumns + `
			  FROM meet_attendees
			  WHERE meet_id = $1 AND phone_normalized <> '' AND phone_normalized = $2
			  ORDER BY created_at DESC`

	res, err := listAttendees(ctx, q, query, meetID, phoneNormalized)
	if err != nil {
		return nil, fmt.Errorf("find attendees by phone: %w", err)
	}
	return res, nil
}

func getAttendee(ctx context.Context, q queryFunc, id string) (*domain.MeetAttendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM meet_attendees WHERE id = $1`

	res, err := listAttendees(ctx, q, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if len(res) == 0 {
		return nil, domain.ErrAttendeeNotFound
	}
	if err = attachAnswers(ctx, q, res); err != nil {
		return nil, err
	}

	return res[0], nil
}

func listAttendees(ctx context.Context, q queryFunc, query string, args ...any) ([]*domain.MeetAttendee, error) {
	rows, err := q(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.MeetAttendee
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func attachAnswers(ctx context.Context, q queryFunc, attendees []*domain.MeetAttendee) error {
	if len(attendees) == 0 {
		return nil
	}

	byID := make(map[string]*domain.MeetAttendee, len(attendees))
	ids := make([]string, len(attendees))
	for i, a := range attendees {
		a.Answers = map[string]string{}
		byID[a.ID] = a
		ids[i] = a.ID
	}

	query := `SELECT attendee_id, field_key, value
			  FROM meet_attendee_answers
			  WHERE attendee_id = ANY($1)`
	rows, err := q(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var attendeeID, key, value string
		if err = rows.Scan(&attendeeID, &key, &value); err != nil {
			return fmt.Errorf("scan answer: %w", err)
		}
		if a, ok := byID[attendeeID]; ok {
			a.Answers[key] = value
		}
	}

	return rows.Err()
}

func scanAttendee(row rowScanner) (*domain.MeetAttendee, error) {
	var a domain.MeetAttendee
	err := row.Scan(
		&a.ID, &a.MeetID, &a.UserID, &a.Name, &a.Email, &a.Phone, &a.PhoneNormalized,
		&a.Guests, &a.IndemnityAccepted, &a.IndemnityMinors, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
