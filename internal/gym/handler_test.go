package gym

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListInstructors(ctx context.Context) ([]Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Instructor), args.Error(1)
}

func (m *MockService) GetInstructor(ctx context.Context, id int) (*Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instructor), args.Error(1)
}

func (m *MockService) ListLocations(ctx context.Context) ([]Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Location), args.Error(1)
}

func (m *MockService) GetLocation(ctx context.Context, id int) (*Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Location), args.Error(1)
}

func (m *MockService) Seed(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.GET("/instructors", h.ListInstructors)
	router.GET("/instructors/:id", h.GetInstructor)
	router.GET("/locations", h.ListLocations)
	router.GET("/locations/:id", h.GetLocation)
	return router
}

func TestListInstructors_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListInstructors", mock.Anything).Return([]Instructor{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com"},
	}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instructors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []Instructor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Alice Johnson", got[0].Name)
	svc.AssertExpectations(t)
}

func TestGetInstructor_Handler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*MockService)
		wantStatus int
	}{
		{
			name:       "invalid id",
			path:       "/instructors/abc",
			setupMock:  func(m *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/instructors/9",
			setupMock: func(m *MockService) {
				m.On("GetInstructor", mock.Anything, 9).Return(nil, ErrInstructorNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			path: "/instructors/3",
			setupMock: func(m *MockService) {
				m.On("GetInstructor", mock.Anything, 3).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "found",
			path: "/instructors/1",
			setupMock: func(m *MockService) {
				m.On("GetInstructor", mock.Anything, 1).Return(&Instructor{ID: 1, Name: "Alice Johnson"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestLocations_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListLocations", mock.Anything).Return(nil, errors.New("boom"))
	svc.On("GetLocation", mock.Anything, 7).Return(nil, ErrLocationNotFound)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch locations")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations/7", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Location not found")

	svc.AssertExpectations(t)
}
