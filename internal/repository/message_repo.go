package repository

import (
	"database/sql"
	"fmt"

	"congocar/internal/db"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(database *sql.DB) *MessageRepository {
	return &MessageRepository{DB: database}
}

func (r *MessageRepository) CreateMessage(msg *db.UserMessage) error {
	query := `
	INSERT INTO messages (id, name, email, message, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at`
	return r.DB.QueryRow(query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	).Scan(&msg.CreatedAt)
}

func (r *MessageRepository) ListMessages() ([]db.UserMessage, error) {
	query := `
	SELECT id, name, email, message, created_at
	FROM messages
	ORDER BY created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []db.UserMessage
	for rows.Next() {
		var m db.UserMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating message rows: %w", err)
	}
	return messages, nil
}
