package service

import (
	"time"

	"congocar/internal/db"
	"congocar/internal/entities"

	"github.com/google/uuid"
)

// MessageStore is the persistence surface for contact-form messages.
type MessageStore interface {
	CreateMessage(msg *db.UserMessage) error
	ListMessages() ([]db.UserMessage, error)
}

type MessageService struct {
	Repo MessageStore
}

func NewMessageService(repo MessageStore) *MessageService {
	return &MessageService{Repo: repo}
}

func (s *MessageService) CreateMessage(req *entities.ContactRequest) (*db.UserMessage, error) {
	msg := &db.UserMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) ListMessages() ([]db.UserMessage, error) {
	return s.Repo.ListMessages()
}
