//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/mocks"
	"github.com/guttosm/area-length-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewLoggingService(t *testing.T) {
	svc := NewLoggingService(new(mocks.MockLogsRepositoryInterface))

	assert.NotNil(t, svc)
	assert.IsType(t, &LoggingServiceImpl{}, svc)
}

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name: "maps calculator fields",
			entry: &model.LogEntry{
				Level:      "info",
				Message:    "calculated",
				RequestID:  "req-1",
				ActionType: model.ActionCalculate,
				ProductID:  "oak",
				Mode:       model.ModeArea,
				Trigger:    "dimensions",
				Subject:    "admin@example.com",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.ProductID == "oak" &&
						doc.Mode == "area" &&
						doc.Trigger == "dimensions" &&
						doc.ActionType == model.ActionCalculate &&
						doc.Subject == "admin@example.com" &&
						!doc.ID.IsZero() &&
						!doc.Timestamp.IsZero()
				})).Return(nil)
			},
		},
		{
			name:  "propagates repository error",
			entry: &model.LogEntry{Level: "error", Message: "boom"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(repo)
			svc := NewLoggingService(repo)

			err := svc.CreateLog(context.Background(), tt.entry)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, tt.entry.ID.IsZero())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		svc := NewLoggingService(repo)

		assert.NoError(t, svc.CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("converts every entry", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2 && docs[0].Message == "a" && docs[1].Message == "b"
		})).Return(nil)
		svc := NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), []*model.LogEntry{{Message: "a"}, {Message: "b"}})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	opts := model.LogQueryOptions{
		ProductID:  "oak",
		ActionType: model.ActionFormStep,
		StartTime:  &start,
		Limit:      20,
	}
	expectedRepoOpts := repository.LogQueryOptions{
		ProductID:  "oak",
		ActionType: model.ActionFormStep,
		StartTime:  &start,
		Limit:      20,
	}

	t.Run("maps options and documents", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", ctx, expectedRepoOpts).Return([]*repository.LogEntryDocument{
			{ID: id, Message: "stepped", ProductID: "oak", Mode: "length", Trigger: "packages"},
		}, nil)
		svc := NewLoggingService(repo)

		entries, err := svc.QueryLogs(ctx, opts)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].ID)
		assert.Equal(t, model.ModeLength, entries[0].Mode)
		assert.Equal(t, "packages", entries[0].Trigger)
	})

	t.Run("propagates error", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", ctx, expectedRepoOpts).Return(nil, errors.New("cursor failed"))
		svc := NewLoggingService(repo)

		_, err := svc.QueryLogs(ctx, opts)
		assert.Error(t, err)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Count", ctx, repository.LogQueryOptions{Level: "error"}).Return(int64(7), nil)
	svc := NewLoggingService(repo)

	count, err := svc.CountLogs(ctx, model.LogQueryOptions{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
