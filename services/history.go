package services

import (
	"context"
	"errors"
	"strings"

	"devmeup/models"
)

// RecordStore is the gateway the service reads and writes through
type RecordStore interface {
	ListByCreator(ctx context.Context, identifier string) ([]models.AIOutput, error)
	Insert(ctx context.Context, identifier, query, response string) (models.AIOutput, error)
}

// HistoryService validates identifiers, fetches stored outputs and
// normalizes them for the frontend
type HistoryService struct {
	store RecordStore
}

func NewHistoryService(store RecordStore) (*HistoryService, error) {
	if store == nil {
		return nil, errors.New("services: record store must not be nil")
	}
	return &HistoryService{store: store}, nil
}

// GetHistoryByEmail returns the creator's history, most recent first. The
// identifier is expected to be an email address.
func (s *HistoryService) GetHistoryByEmail(ctx context.Context, email string) ([]models.HistoryEntry, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, newError(ErrorInvalidInput, "email is required", nil)
	}
	if !strings.Contains(email, "@") {
		return nil, newError(ErrorInvalidInput, "identifier is not a valid email", nil)
	}
	return s.fetch(ctx, email)
}

// GetHistory returns the history for an opaque creator identifier
func (s *HistoryService) GetHistory(ctx context.Context, identifier string) ([]models.HistoryEntry, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, newError(ErrorInvalidInput, "identifier is required", nil)
	}
	return s.fetch(ctx, identifier)
}

// CreateEntry stores one manually submitted query/response pair and returns
// it in normalized form
func (s *HistoryService) CreateEntry(ctx context.Context, identifier, query, response string) (models.HistoryEntry, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.HistoryEntry{}, newError(ErrorInvalidInput, "identifier is required", nil)
	}
	row, err := s.store.Insert(ctx, identifier, query, response)
	if err != nil {
		return models.HistoryEntry{}, newError(ErrorStoreUnavailable, "failed to save history entry", err)
	}
	return NormalizeRecord(row), nil
}

func (s *HistoryService) fetch(ctx context.Context, identifier string) ([]models.HistoryEntry, error) {
	rows, err := s.store.ListByCreator(ctx, identifier)
	if err != nil {
		return nil, newError(ErrorStoreUnavailable, "failed to fetch history", err)
	}
	entries := make([]models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, NormalizeRecord(row))
	}
	return entries, nil
}
