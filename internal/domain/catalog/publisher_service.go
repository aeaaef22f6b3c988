package catalog

import (
	"context"

	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// PublisherService 出版社领域服务
type PublisherService interface {
	FindAll(ctx context.Context) ([]*Publisher, error)
	FindByID(ctx context.Context, id uint) (*Publisher, error)
	Save(ctx context.Context, publisher *Publisher) error
	DeleteByID(ctx context.Context, id uint) error
}

type publisherService struct {
	repo PublisherRepository
}

// NewPublisherService 创建出版社领域服务
func NewPublisherService(repo PublisherRepository) PublisherService {
	return &publisherService{repo: repo}
}

func (s *publisherService) FindAll(ctx context.Context) (publishers []*Publisher, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.PublisherService/FindAll")
	defer func() { tracing.EndSpan(span, err) }()

	publishers, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if publishers == nil {
		publishers = []*Publisher{}
	}
	return publishers, nil
}

func (s *publisherService) FindByID(ctx context.Context, id uint) (publisher *Publisher, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.PublisherService/FindByID")
	defer func() { tracing.EndSpan(span, err) }()

	publisher, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPublisherNotFound(id)
	}
	return publisher, nil
}

func (s *publisherService) Save(ctx context.Context, publisher *Publisher) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.PublisherService/Save")
	defer func() {
		metrics.RecordCatalogMutation("publisher", "save", err)
		tracing.EndSpan(span, err)
	}()

	return s.repo.Save(ctx, publisher)
}

func (s *publisherService) DeleteByID(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.PublisherService/DeleteByID")
	defer func() {
		metrics.RecordCatalogMutation("publisher", "delete", err)
		tracing.EndSpan(span, err)
	}()

	return s.repo.DeleteByID(ctx, id)
}
