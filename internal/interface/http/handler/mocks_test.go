package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xiebiao/library/internal/domain/catalog"
)

type mockAuthorService struct {
	mock.Mock
}

func (m *mockAuthorService) FindAll(ctx context.Context) ([]*catalog.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Author), args.Error(1)
}

func (m *mockAuthorService) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Author), args.Error(1)
}

func (m *mockAuthorService) Save(ctx context.Context, author *catalog.Author) error {
	return m.Called(ctx, author).Error(0)
}

func (m *mockAuthorService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAuthorService) AddBook(ctx context.Context, author *catalog.Author, book *catalog.Book) (catalog.AttachResult, error) {
	args := m.Called(ctx, author, book)
	return args.Get(0).(catalog.AttachResult), args.Error(1)
}

func (m *mockAuthorService) GetAuthor(ctx context.Context, id uint) (*catalog.Author, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*catalog.Author), args.Bool(1), args.Error(2)
}

type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) FindAll(ctx context.Context) ([]*catalog.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Book), args.Error(1)
}

func (m *mockBookService) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Book), args.Error(1)
}

func (m *mockBookService) Save(ctx context.Context, book *catalog.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookService) FindBookByName(ctx context.Context, keyword string) ([]*catalog.Book, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Book), args.Error(1)
}

type mockPublisherService struct {
	mock.Mock
}

func (m *mockPublisherService) FindAll(ctx context.Context) ([]*catalog.Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Publisher), args.Error(1)
}

func (m *mockPublisherService) FindByID(ctx context.Context, id uint) (*catalog.Publisher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Publisher), args.Error(1)
}

func (m *mockPublisherService) Save(ctx context.Context, publisher *catalog.Publisher) error {
	return m.Called(ctx, publisher).Error(0)
}

func (m *mockPublisherService) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
