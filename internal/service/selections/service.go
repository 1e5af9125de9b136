package selections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/ChaletBookingService/internal/domain"
	"github.com/m04kA/ChaletBookingService/internal/infra/storage/session"
	"github.com/m04kA/ChaletBookingService/internal/selection"
)

// record форма хранения сессии
type record struct {
	ID        string             `json:"id"`
	Chalet    domain.Chalet      `json:"chalet"`
	State     selection.Snapshot `json:"state"`
	CreatedAt time.Time          `json:"createdAt"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// Service хранит сессии выбора дат и черновики бронирования в session store
type Service struct {
	store        Store
	ttl          time.Duration
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис; ttl применяется и к сессиям, и к черновикам
func NewService(store Store, ttl time.Duration, logger Logger) *Service {
	return &Service{
		store:        store,
		ttl:          ttl,
		newID:        uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithIDGenerator подменяет генератор id (для тестов)
func (s *Service) WithIDGenerator(gen IDGenerator) *Service {
	s.newID = gen
	return s
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create начинает новую попытку бронирования: фаза всегда SelectingStart
func (s *Service) Create(ctx context.Context, chalet *domain.Chalet) (*domain.SelectionSession, selection.State, time.Time, error) {
	now := s.timeProvider.Now()
	sess := &domain.SelectionSession{
		ID:        s.newID(),
		Chalet:    *chalet,
		CreatedAt: now,
	}
	state := selection.New()

	expiresAt, err := s.Save(ctx, sess, state)
	if err != nil {
		return nil, selection.State{}, time.Time{}, err
	}

	s.logger.Info("Create: selection=%s started for chalet=%d", sess.ID, chalet.ID)
	return sess, state, expiresAt, nil
}

// Load восстанавливает сессию и состояние выбора
func (s *Service) Load(ctx context.Context, selectionID string) (*domain.SelectionSession, selection.State, time.Time, error) {
	var rec record
	err := session.GetJSON(ctx, s.store, domain.SessionKey(selectionID), &rec)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return nil, selection.State{}, time.Time{}, ErrSelectionNotFound
		case errors.Is(err, session.ErrDecode):
			s.logger.Error("Load: selection=%s cannot be decoded: %v", selectionID, err)
			return nil, selection.State{}, time.Time{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
		default:
			s.logger.Error("Load: store error for selection=%s: %v", selectionID, err)
			return nil, selection.State{}, time.Time{}, fmt.Errorf("%w: Load - %v", ErrInternal, err)
		}
	}

	state, err := selection.Restore(rec.State)
	if err != nil {
		s.logger.Error("Load: selection=%s has invalid state: %v", selectionID, err)
		return nil, selection.State{}, time.Time{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}

	return &domain.SelectionSession{ID: rec.ID, Chalet: rec.Chalet, CreatedAt: rec.CreatedAt}, state, rec.ExpiresAt, nil
}

// Save сохраняет состояние и продлевает TTL сессии
// Черновик, собранный по прошлому состоянию, удаляется: после смены дат его нужно подтвердить заново
func (s *Service) Save(ctx context.Context, sess *domain.SelectionSession, state selection.State) (time.Time, error) {
	expiresAt := s.timeProvider.Now().Add(s.ttl)
	rec := record{
		ID:        sess.ID,
		Chalet:    sess.Chalet,
		State:     state.Snapshot(),
		CreatedAt: sess.CreatedAt,
		ExpiresAt: expiresAt,
	}

	if err := session.PutJSON(ctx, s.store, domain.SessionKey(sess.ID), rec, s.ttl); err != nil {
		s.logger.Error("Save: failed to store selection=%s: %v", sess.ID, err)
		return time.Time{}, fmt.Errorf("%w: Save - %v", ErrInternal, err)
	}

	if err := s.store.Delete(ctx, domain.DraftKey(sess.ID)); err != nil {
		s.logger.Error("Save: failed to drop stale draft for selection=%s: %v", sess.ID, err)
		return time.Time{}, fmt.Errorf("%w: Save - stale draft: %v", ErrInternal, err)
	}
	return expiresAt, nil
}

// Delete удаляет сессию выбора
func (s *Service) Delete(ctx context.Context, selectionID string) error {
	if err := s.store.Delete(ctx, domain.SessionKey(selectionID)); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrInternal, err)
	}
	return nil
}

// SaveDraft сохраняет черновик под ключом booking-draft:<selectionID>
func (s *Service) SaveDraft(ctx context.Context, draft *domain.BookingDraft) (string, time.Time, error) {
	key := domain.DraftKey(draft.SelectionID)
	if err := session.PutJSON(ctx, s.store, key, draft, s.ttl); err != nil {
		s.logger.Error("SaveDraft: failed to store draft for selection=%s: %v", draft.SelectionID, err)
		return "", time.Time{}, fmt.Errorf("%w: SaveDraft - %v", ErrInternal, err)
	}
	return key, s.timeProvider.Now().Add(s.ttl), nil
}

// TakeDraft читает и удаляет черновик; второй вызов вернёт ErrDraftNotFound
func (s *Service) TakeDraft(ctx context.Context, selectionID string) (*domain.BookingDraft, error) {
	var draft domain.BookingDraft
	err := session.TakeJSON(ctx, s.store, domain.DraftKey(selectionID), &draft)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("TakeDraft: store error for selection=%s: %v", selectionID, err)
		return nil, fmt.Errorf("%w: TakeDraft - %v", ErrInternal, err)
	}
	return &draft, nil
}
