package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const messageColumns = `id, meet_id, attendee_id, from_address, to_address,
	subject, content, pertinent_body, is_read, created_at`

type MessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMessageRepo(db *dbpg.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.IncomingMessage) error {
	query := `INSERT INTO incoming_messages (` + messageColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		msg.ID, msg.MeetID, msg.AttendeeID, msg.FromAddress, msg.ToAddress,
		msg.Subject, msg.Content, msg.PertinentBody, msg.IsRead, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.IncomingMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM incoming_messages WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	msg, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return msg, nil
}

func (r *MessageRepository) ListByMeet(ctx context.Context, meetID string) ([]*domain.IncomingMessage, error) {
	query := `SELECT ` + messageColumns + `
			  FROM incoming_messages
			  WHERE meet_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, meetID)
	if err != nil {
		return nil, fmt.Errorf("list messages by meet: %w", err)
	}
	defer rows.Close()

	var res []*domain.IncomingMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, msg)
	}

	return res, rows.Err()
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE incoming_messages SET is_read = true WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return expectOne(res, domain.ErrMessageNotFound)
}

func scanMessage(row rowScanner) (*domain.IncomingMessage, error) {
	var m domain.IncomingMessage
	err := row.Scan(
		&m.ID, &m.MeetID, &m.AttendeeID, &m.FromAddress, &m.ToAddress,
		&m.Subject, &m.Content, &m.PertinentBody, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
