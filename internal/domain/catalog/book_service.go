package catalog

import (
	"context"

	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// BookService 图书领域服务
type BookService interface {
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 按ID查询图书,不存在时返回not-found的AppError
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Save 新增或更新图书
	// 关联了作者且AuthorName为空时,用作者姓名补全AuthorName
	Save(ctx context.Context, book *Book) error

	DeleteByID(ctx context.Context, id uint) error

	// FindBookByName 按关键字搜索(书名、ISBN、作者名,不区分大小写)
	// 关键字为空时返回全部图书
	FindBookByName(ctx context.Context, keyword string) ([]*Book, error)
}

type bookService struct {
	bookRepo   BookRepository
	authorRepo AuthorRepository
}

// NewBookService 创建图书领域服务
// authorRepo仅用于补全冗余的作者名
func NewBookService(bookRepo BookRepository, authorRepo AuthorRepository) BookService {
	return &bookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) FindAll(ctx context.Context) (books []*Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.BookService/FindAll")
	defer func() { tracing.EndSpan(span, err) }()

	books, err = s.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}

func (s *bookService) FindByID(ctx context.Context, id uint) (book *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.BookService/FindByID")
	defer func() { tracing.EndSpan(span, err) }()

	book, found, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookNotFound(id)
	}
	return book, nil
}

func (s *bookService) Save(ctx context.Context, book *Book) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.BookService/Save")
	defer func() {
		metrics.RecordCatalogMutation("book", "save", err)
		tracing.EndSpan(span, err)
	}()

	if err := s.fillAuthorName(ctx, book); err != nil {
		return err
	}
	return s.bookRepo.Save(ctx, book)
}

// fillAuthorName 表单只提交作者ID,需要查询作者姓名后才能补全AuthorName
func (s *bookService) fillAuthorName(ctx context.Context, book *Book) error {
	if book.AuthorName != "" || book.Author == nil || book.Author.IsNew() {
		return nil
	}
	if book.Author.Name == "" {
		author, found, err := s.authorRepo.FindByID(ctx, book.Author.ID)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		book.Author.Name = author.Name
	}
	book.SyncAuthorName()
	return nil
}

func (s *bookService) DeleteByID(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.BookService/DeleteByID")
	defer func() {
		metrics.RecordCatalogMutation("book", "delete", err)
		tracing.EndSpan(span, err)
	}()

	return s.bookRepo.DeleteByID(ctx, id)
}

func (s *bookService) FindBookByName(ctx context.Context, keyword string) (books []*Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.BookService/FindBookByName")
	defer func() { tracing.EndSpan(span, err) }()

	books, err = s.bookRepo.FindByName(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}
