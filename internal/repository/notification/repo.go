package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification into the database and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, title, message, type, category, link, channels, meta,
		    sent_dashboard, sent_email, sent_whatsapp, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
    `

	meta, err := encodeMeta(n.Meta)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.db.QueryRowContext(
		ctx, query,
		n.UserID, n.Title, n.Message, n.Type, n.Category, n.Link,
		pq.Array(channelStrings(n.Channels)), meta,
		n.SentStatus.Dashboard, n.SentStatus.Email, n.SentStatus.WhatsApp,
		n.CreatedAt, n.ExpiresAt,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// UpdateSentStatus stores the per-channel delivery flags of a notification.
func (r *Repository) UpdateSentStatus(ctx context.Context, id uuid.UUID, status model.SentStatus) error {
	query := `
		UPDATE notifications
		SET sent_dashboard = $1, sent_email = $2, sent_whatsapp = $3
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, status.Dashboard, status.Email, status.WhatsApp, id)
	if err != nil {
		return fmt.Errorf("failed to update sent status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetSentStatusByID retrieves the delivery flags of a notification by its ID.
func (r *Repository) GetSentStatusByID(ctx context.Context, id uuid.UUID) (model.SentStatus, error) {
	query := `
		SELECT sent_dashboard, sent_email, sent_whatsapp
		FROM notifications
		WHERE id = $1;
    `

	var s model.SentStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.Dashboard, &s.Email, &s.WhatsApp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SentStatus{}, ErrNotificationNotFound
		}

		return model.SentStatus{}, fmt.Errorf("failed to get sent status: %w", err)
	}

	return s, nil
}

// ListByUser returns the live notifications of a user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, category, link, channels, meta, is_read,
		       sent_dashboard, sent_email, sent_whatsapp, created_at, expires_at
		FROM notifications
		WHERE user_id = $1 AND expires_at > now() AND (NOT $2 OR is_read = false)
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		var (
			n        model.Notification
			link     sql.NullString
			channels []string
			meta     []byte
		)

		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Category, &link,
			pq.Array(&channels), &meta, &n.IsRead,
			&n.SentStatus.Dashboard, &n.SentStatus.Email, &n.SentStatus.WhatsApp,
			&n.CreatedAt, &n.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.Link = link.String
		for _, c := range channels {
			n.Channels = append(n.Channels, model.Channel(c))
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &n.Meta); err != nil {
				return nil, fmt.Errorf("failed to decode meta: %w", err)
			}
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkAsRead flags a notification of userID as read.
func (r *Repository) MarkAsRead(ctx context.Context, id uuid.UUID, userID string) error {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND user_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification by its ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// DeleteExpired removes every notification whose expiry is before now and
// returns how many were removed.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE expires_at <= $1;
    `

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired notifications: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

func encodeMeta(meta map[string]any) ([]byte, error) {
	if meta == nil {
		return []byte("{}"), nil
	}

	b, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meta: %w", err)
	}

	return b, nil
}

func channelStrings(channels []model.Channel) []string {
	out := make([]string, len(channels))
	for i, c := range channels {
		out[i] = string(c)
	}
	return out
}
