package report

import (
	"context"
	"errors"
	"testing"

	"fitclass/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ClassesBetween(ctx context.Context, from, to string) ([]Row, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Row), args.Error(1)
}

func TestReport_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ClassesBetween", ctx, "2024-06-01", "2024-06-30").Return([]Row{
		{"Yoga Basics", "2024-06-01", "Alice Johnson", "Downtown Gym"},
	}, nil)

	resp, err := svc.Report(ctx, Request{FromDate: "2024-06-01", ToDate: "2024-06-30"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "Yoga Basics", resp.Rows[0].ClassName)
	mockRepo.AssertExpectations(t)
}

func TestReport_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ClassesBetween", ctx, "2030-01-01", "2030-01-31").Return([]Row{}, nil)

	resp, err := svc.Report(ctx, Request{FromDate: "2030-01-01", ToDate: "2030-01-31"})

	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.Equal(t, EmptyMessage, resp.Message)
}

func TestReport_ValidationError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing from", Request{ToDate: "2024-06-30"}, "from_date"},
		{"missing to", Request{FromDate: "2024-06-01"}, "to_date"},
		{"bad from", Request{FromDate: "June 1", ToDate: "2024-06-30"}, "from_date"},
		{"bad to", Request{FromDate: "2024-06-01", ToDate: "2024-02-30"}, "to_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Report(context.Background(), tt.req)

			assert.Nil(t, resp)
			var ve *validation.Error
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.field)
		})
	}

	mockRepo.AssertNotCalled(t, "ClassesBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestReport_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	storeErr := errors.New("disk I/O error")
	mockRepo.On("ClassesBetween", ctx, "2024-06-01", "2024-06-30").Return(nil, storeErr)

	resp, err := svc.Report(ctx, Request{FromDate: "2024-06-01", ToDate: "2024-06-30"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storeErr)
}
