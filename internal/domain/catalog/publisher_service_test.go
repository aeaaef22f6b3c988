package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestPublisherService(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPublisherRepo)
	svc := NewPublisherService(repo)

	penguin := &Publisher{ID: 1, Name: "Penguin"}
	repo.On("FindAll", mock.Anything).Return(nil, nil)
	repo.On("FindByID", mock.Anything, uint(1)).Return(penguin, true, nil)
	repo.On("FindByID", mock.Anything, uint(3)).Return(nil, false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Publisher")).Return(nil)
	repo.On("DeleteByID", mock.Anything, uint(3)).Return(nil)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)

	got, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, penguin, got)

	_, err = svc.FindByID(ctx, 3)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Publisher not found with ID 3", apperrors.GetAppError(err).Message)

	assert.NoError(t, svc.Save(ctx, &Publisher{Name: "Vintage"}))
	assert.NoError(t, svc.DeleteByID(ctx, 3))
	repo.AssertExpectations(t)
}
