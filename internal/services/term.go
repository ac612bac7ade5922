package services

//go:generate mockgen -source=term.go -destination=mock_term.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrTermNotFound      = errors.New("term not found")
	ErrTermAlreadyExists = errors.New("term with this keyword already exists")
)

// TermReader defines read-only operations for terms.
type TermReader interface {
	List(ctx context.Context) ([]models.Term, error)
	GetByKeyword(ctx context.Context, keyword string) (*models.Term, error)
}

// TermWriter defines write operations for terms.
type TermWriter interface {
	Save(ctx context.Context, keyword, description string) (*models.Term, error)
	Update(ctx context.Context, keyword string, req models.TermUpdateRequest) (*models.Term, error)
	Delete(ctx context.Context, keyword string) (*models.Term, error)
}

// TermCache caches terms by keyword.
type TermCache interface {
	Get(ctx context.Context, keyword string) (*models.Term, error)
	Set(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, keywords ...string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the transaction carried by ctx commits.
type CommitHook func(ctx context.Context, fn func())

// TermService handles glossary term operations.
// The cache, the Kafka writer and the commit hook are optional.
type TermService struct {
	reader      TermReader
	writer      TermWriter
	cache       TermCache
	kafkaWriter KafkaWriter
	onCommit    CommitHook
}

// NewTermService creates a new TermService.
func NewTermService(
	reader TermReader,
	writer TermWriter,
	cache TermCache,
	kafkaWriter KafkaWriter,
	onCommit CommitHook,
) *TermService {
	if onCommit == nil {
		onCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &TermService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		onCommit:    onCommit,
	}
}

// List returns all terms.
func (s *TermService) List(ctx context.Context) ([]models.Term, error) {
	terms, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list terms", "error", err)
		return nil, err
	}
	if terms == nil {
		terms = []models.Term{}
	}
	return terms, nil
}

// Get returns the term with the given keyword, consulting the cache first.
func (s *TermService) Get(ctx context.Context, keyword string) (*models.Term, error) {
	if s.cache != nil {
		term, err := s.cache.Get(ctx, keyword)
		if err == nil {
			return term, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("term cache read failed", "keyword", keyword, "error", err)
		}
	}

	term, err := s.reader.GetByKeyword(ctx, keyword)
	if err != nil {
		return nil, s.mapError("failed to get term", keyword, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, term); err != nil {
			logger.Log.Warnw("term cache write failed", "keyword", keyword, "error", err)
		}
	}

	return term, nil
}

// Create validates the payload and inserts a new term.
func (s *TermService) Create(ctx context.Context, req models.TermCreateRequest) (*models.Term, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, err := s.reader.GetByKeyword(ctx, req.Keyword)
	switch {
	case err == nil:
		logger.Log.Errorw("term already exists", "keyword", req.Keyword)
		return nil, ErrTermAlreadyExists
	case !errors.Is(err, repositories.ErrTermNotFound):
		logger.Log.Errorw("failed to check term exists", "keyword", req.Keyword, "error", err)
		return nil, err
	}

	term, err := s.writer.Save(ctx, req.Keyword, req.Description)
	if err != nil {
		return nil, s.mapError("failed to save term", req.Keyword, err)
	}

	s.afterCommit(ctx, models.TermCreated, "", term)
	return term, nil
}

// Update applies the supplied fields to the term with the given keyword.
func (s *TermService) Update(ctx context.Context, keyword string, req models.TermUpdateRequest) (*models.Term, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.reader.GetByKeyword(ctx, keyword); err != nil {
		return nil, s.mapError("failed to get term", keyword, err)
	}

	renamed := req.Keyword != nil && *req.Keyword != keyword
	if renamed {
		_, err := s.reader.GetByKeyword(ctx, *req.Keyword)
		switch {
		case err == nil:
			logger.Log.Errorw("term already exists", "keyword", *req.Keyword)
			return nil, ErrTermAlreadyExists
		case !errors.Is(err, repositories.ErrTermNotFound):
			logger.Log.Errorw("failed to check term exists", "keyword", *req.Keyword, "error", err)
			return nil, err
		}
	}

	evicted := []string{keyword}
	if renamed {
		evicted = append(evicted, *req.Keyword)
	}
	if err := s.evict(ctx, evicted...); err != nil {
		return nil, err
	}

	term, err := s.writer.Update(ctx, keyword, req)
	if err != nil {
		return nil, s.mapError("failed to update term", keyword, err)
	}

	previous := ""
	if renamed {
		previous = keyword
	}
	s.afterCommit(ctx, models.TermUpdated, previous, term)
	return term, nil
}

// Delete removes the term with the given keyword.
func (s *TermService) Delete(ctx context.Context, keyword string) error {
	if err := s.evict(ctx, keyword); err != nil {
		return err
	}

	term, err := s.writer.Delete(ctx, keyword)
	if err != nil {
		return s.mapError("failed to delete term", keyword, err)
	}

	s.afterCommit(ctx, models.TermDeleted, "", term)
	return nil
}

// mapError translates repository errors into service errors and logs the rest.
func (s *TermService) mapError(msg, keyword string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTermNotFound):
		return ErrTermNotFound
	case errors.Is(err, repositories.ErrDuplicateKeyword):
		logger.Log.Errorw("term already exists", "keyword", keyword)
		return ErrTermAlreadyExists
	default:
		logger.Log.Errorw(msg, "keyword", keyword, "error", err)
		return err
	}
}

// afterCommit invalidates cached entries and publishes the change once the
// surrounding transaction has committed.
func (s *TermService) afterCommit(ctx context.Context, operation, previousKeyword string, term *models.Term) {
	event := models.TermEvent{
		EventID:         uuid.NewString(),
		Operation:       operation,
		Keyword:         term.Keyword,
		PreviousKeyword: previousKeyword,
		Term:            term,
		Timestamp:       time.Now().Unix(),
	}

	s.onCommit(ctx, func() {
		ctx := context.WithoutCancel(ctx)
		s.invalidate(ctx, event)
		s.publishEvent(ctx, event)
	})
}

// evict drops cached entries ahead of a write. A failure aborts the write.
func (s *TermService) evict(ctx context.Context, keys ...string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Log.Errorw("failed to evict cached term", "keys", keys, "error", err)
		return err
	}
	return nil
}

// invalidate drops entries a concurrent Get may have refilled before the commit.
func (s *TermService) invalidate(ctx context.Context, event models.TermEvent) {
	if s.cache == nil || event.Operation == models.TermCreated {
		return
	}

	keys := []string{event.Keyword}
	if event.PreviousKeyword != "" {
		keys = append(keys, event.PreviousKeyword)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Log.Warnw("term cache invalidation failed", "keys", keys, "error", err)
	}
}

// publishEvent publishes a term event to Kafka.
func (s *TermService) publishEvent(ctx context.Context, event models.TermEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal term event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Keyword),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish term event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Term event published to Kafka", "event_id", event.EventID, "operation", event.Operation, "keyword", event.Keyword)
	}
}
