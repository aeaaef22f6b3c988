package catalog

import (
	"context"

	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// tracerName 领域服务Span所属的Tracer
const tracerName = "github.com/xiebiao/library/internal/domain/catalog"

// AttachResult AddBook的执行结果
// 作者不存在不是错误,而是一种明确的结果,调用方据此决定如何展示
type AttachResult int

const (
	// AttachAttached 图书已关联到作者并保存
	AttachAttached AttachResult = iota + 1
	// AttachAuthorNotFound 作者不存在,未做任何修改
	AttachAuthorNotFound
)

func (r AttachResult) String() string {
	switch r {
	case AttachAttached:
		return "attached"
	case AttachAuthorNotFound:
		return "author_not_found"
	default:
		return "unknown"
	}
}

// AuthorService 作者领域服务
type AuthorService interface {
	// FindAll 查询全部作者(无数据时返回空切片)
	FindAll(ctx context.Context) ([]*Author, error)

	// FindByID 按ID查询作者,不存在时返回not-found的AppError
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Save 新增或更新作者(不做字段校验)
	Save(ctx context.Context, author *Author) error

	// DeleteByID 删除作者,ID不存在时不报错
	DeleteByID(ctx context.Context, id uint) error

	// AddBook 在同一事务中重新加载作者并关联图书
	// 业务规则:
	// - 作者不存在时返回AttachAuthorNotFound,error为nil,不做任何修改
	// - 图书的Author指向重新加载的作者实例,AuthorName为空时补全
	// - 新图书(ID为0)会被插入
	AddBook(ctx context.Context, author *Author, book *Book) (AttachResult, error)

	// GetAuthor 不报not-found错误的查询,作者不存在时found为false
	GetAuthor(ctx context.Context, id uint) (author *Author, found bool, err error)
}

type authorService struct {
	authorRepo AuthorRepository
	bookRepo   BookRepository
	txManager  TxManager
}

// NewAuthorService 创建作者领域服务
func NewAuthorService(authorRepo AuthorRepository, bookRepo BookRepository, txManager TxManager) AuthorService {
	return &authorService{
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
	}
}

func (s *authorService) FindAll(ctx context.Context) (authors []*Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/FindAll")
	defer func() { tracing.EndSpan(span, err) }()

	authors, err = s.authorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []*Author{}
	}
	return authors, nil
}

func (s *authorService) FindByID(ctx context.Context, id uint) (author *Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/FindByID")
	defer func() { tracing.EndSpan(span, err) }()

	author, found, err := s.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrAuthorNotFound(id)
	}
	return author, nil
}

func (s *authorService) Save(ctx context.Context, author *Author) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/Save")
	defer func() {
		metrics.RecordCatalogMutation("author", "save", err)
		tracing.EndSpan(span, err)
	}()

	return s.authorRepo.Save(ctx, author)
}

func (s *authorService) DeleteByID(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/DeleteByID")
	defer func() {
		metrics.RecordCatalogMutation("author", "delete", err)
		tracing.EndSpan(span, err)
	}()

	return s.authorRepo.DeleteByID(ctx, id)
}

func (s *authorService) AddBook(ctx context.Context, author *Author, book *Book) (result AttachResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/AddBook")
	defer func() {
		if result == AttachAttached || err != nil {
			metrics.RecordCatalogMutation("author", "add_book", err)
		}
		tracing.EndSpan(span, err)
	}()

	if author == nil || book == nil {
		return AttachAuthorNotFound, nil
	}

	err = s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 以数据库中的作者为准,调用方传入的实例只提供ID
		fetched, found, err := s.authorRepo.FindByID(txCtx, author.ID)
		if err != nil {
			return err
		}
		if !found {
			result = AttachAuthorNotFound
			return nil
		}

		fetched.AttachBook(book)
		if err := s.bookRepo.Save(txCtx, book); err != nil {
			return err
		}

		result = AttachAttached
		return nil
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id uint) (author *Author, found bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog.AuthorService/GetAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	return s.authorRepo.FindByID(ctx, id)
}
