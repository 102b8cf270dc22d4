package services

import (
	"context"
	"strings"
	"time"

	"growe/internal/common"
	"growe/internal/repositories"

	"github.com/google/uuid"
)

// Record is a domain document the RecordService can default, validate and stamp
type Record interface {
	repositories.Document
	SetCreatedAt(t time.Time)
	ApplyDefaults()
}

// RecordService implements list/create/update for one entity type
type RecordService[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, doc T) (T, error)
	Update(ctx context.Context, id string, doc T) error
}

type recordService[T Record] struct {
	repo      repositories.DocumentRepository[T]
	validator *common.Validator
	now       func() time.Time
}

func NewRecordService[T Record](repo repositories.DocumentRepository[T], validator *common.Validator) RecordService[T] {
	return &recordService[T]{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

func (s *recordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Create validates doc, assigns a new id and creation time and persists it
func (s *recordService[T]) Create(ctx context.Context, doc T) (T, error) {
	doc.ApplyDefaults()
	if err := s.validator.Validate(doc); err != nil {
		var zero T
		return zero, err
	}

	doc.SetID(uuid.NewString())
	doc.SetCreatedAt(s.now())

	if err := s.repo.Insert(ctx, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Update fully replaces the stored document with id. The id itself is never changed.
func (s *recordService[T]) Update(ctx context.Context, id string, doc T) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return common.ErrNotFound
	}

	doc.ApplyDefaults()
	if err := s.validator.Validate(doc); err != nil {
		return err
	}

	doc.SetID(id)
	return s.repo.Replace(ctx, id, doc)
}
