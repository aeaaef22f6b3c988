package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockAuthorRepo struct {
	mock.Mock
}

func (m *mockAuthorRepo) FindAll(ctx context.Context) ([]*Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Author), args.Error(1)
}

func (m *mockAuthorRepo) FindByID(ctx context.Context, id uint) (*Author, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*Author), args.Bool(1), args.Error(2)
}

func (m *mockAuthorRepo) Save(ctx context.Context, author *Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *mockAuthorRepo) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) FindAll(ctx context.Context) ([]*Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Book), args.Error(1)
}

func (m *mockBookRepo) FindByID(ctx context.Context, id uint) (*Book, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*Book), args.Bool(1), args.Error(2)
}

func (m *mockBookRepo) FindByName(ctx context.Context, keyword string) ([]*Book, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Book), args.Error(1)
}

func (m *mockBookRepo) Save(ctx context.Context, book *Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *mockBookRepo) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPublisherRepo struct {
	mock.Mock
}

func (m *mockPublisherRepo) FindAll(ctx context.Context) ([]*Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Publisher), args.Error(1)
}

func (m *mockPublisherRepo) FindByID(ctx context.Context, id uint) (*Publisher, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*Publisher), args.Bool(1), args.Error(2)
}

func (m *mockPublisherRepo) Save(ctx context.Context, publisher *Publisher) error {
	args := m.Called(ctx, publisher)
	return args.Error(0)
}

func (m *mockPublisherRepo) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeTxManager 直接执行fn,记录事务次数;commitErr模拟提交失败
type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}
