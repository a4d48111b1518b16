package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type mockUseCase struct {
	lastReq *getAvailableSlots.Request
	resp    *getAvailableSlots.Response
	err     error
}

func (m *mockUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type mockLogger struct{}

func (m *mockLogger) Info(_ string, _ ...interface{})  {}
func (m *mockLogger) Warn(_ string, _ ...interface{})  {}
func (m *mockLogger) Error(_ string, _ ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func serveRequest(t *testing.T, uc *mockUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, &mockLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/locations/{locationId}/available-slots", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{
		resp: &getAvailableSlots.Response{
			Date:       mustDate(t, "2025-10-15"),
			LocationID: 10,
			Slots:      []types.TimeString{"09:00", "09:30", "10:00"},
		},
	}

	rec := serveRequest(t, uc, "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, int64(10), body.LocationID)
	assert.Nil(t, body.StaffID)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, body.Slots)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(10), uc.lastReq.LocationID)
	assert.Equal(t, 60, uc.lastReq.DurationMinutes)
	assert.Nil(t, uc.lastReq.StaffID)
}

func TestHandle_OptionalParamsForwarded(t *testing.T) {
	uc := &mockUseCase{
		resp: &getAvailableSlots.Response{
			Date:       mustDate(t, "2025-10-15"),
			LocationID: 10,
			Slots:      []types.TimeString{},
		},
	}

	rec := serveRequest(t, uc,
		"/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=90&staffId=3&bufferBefore=10&bufferAfter=15")

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.lastReq)
	require.NotNil(t, uc.lastReq.StaffID)
	assert.Equal(t, int64(3), *uc.lastReq.StaffID)
	assert.Equal(t, 90, uc.lastReq.DurationMinutes)
	assert.Equal(t, 10, uc.lastReq.BufferBefore)
	assert.Equal(t, 15, uc.lastReq.BufferAfter)
}

func TestHandle_EmptySlotsSerializedAsEmptyArray(t *testing.T) {
	uc := &mockUseCase{
		resp: &getAvailableSlots.Response{
			Date:       mustDate(t, "2025-10-15"),
			LocationID: 10,
			Slots:      []types.TimeString{},
		},
	}

	rec := serveRequest(t, uc, "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"invalid location id", "/api/v1/locations/abc/available-slots?date=2025-10-15&durationMinutes=60"},
		{"missing date", "/api/v1/locations/10/available-slots?durationMinutes=60"},
		{"invalid date format", "/api/v1/locations/10/available-slots?date=15.10.2025&durationMinutes=60"},
		{"missing duration", "/api/v1/locations/10/available-slots?date=2025-10-15"},
		{"invalid duration", "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=abc"},
		{"invalid staff id", "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60&staffId=abc"},
		{"invalid buffer", "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60&bufferBefore=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serveRequest(t, uc, tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// Невалидные параметры не доходят до use case
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"staff not found", getAvailableSlots.ErrStaffNotFound, http.StatusNotFound},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"malformed data", getAvailableSlots.ErrMalformedData, http.StatusInternalServerError},
		{"internal error", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			rec := serveRequest(t, uc, "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandle_WrappedUseCaseError(t *testing.T) {
	uc := &mockUseCase{err: errors.New("wrapped: " + getAvailableSlots.ErrInternal.Error())}
	rec := serveRequest(t, uc, "/api/v1/locations/10/available-slots?date=2025-10-15&durationMinutes=60")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
