package get_weekly_availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// mockDailySlots исполняет посуточные запросы через подменяемую функцию,
// фиксируя даты всех вызовов
type mockDailySlots struct {
	mu      sync.Mutex
	dates   []string
	execute func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

func (m *mockDailySlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	m.mu.Lock()
	m.dates = append(m.dates, req.Date.Format(domain.DateFormat))
	m.mu.Unlock()
	return m.execute(req)
}

type mockLogger struct{}

func (m *mockLogger) Info(_ string, _ ...interface{})  {}
func (m *mockLogger) Warn(_ string, _ ...interface{})  {}
func (m *mockLogger) Error(_ string, _ ...interface{}) {}

var weekStart = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // Monday

func weeklyRequest() *Request {
	return &Request{
		LocationID:      10,
		WeekStart:       weekStart,
		DurationMinutes: 60,
	}
}

func slotsOf(times ...string) []types.TimeString {
	slots := make([]types.TimeString, len(times))
	for i, t := range times {
		slots[i] = types.TimeString(t)
	}
	return slots
}

func TestExecute_SevenDaysByDefault(t *testing.T) {
	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return &getAvailableSlots.Response{
				Date:       req.Date,
				LocationID: req.LocationID,
				Slots:      slotsOf("09:00", "10:00"),
			}, nil
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	resp, err := uc.Execute(context.Background(), weeklyRequest())
	require.NoError(t, err)

	assert.Len(t, resp.Days, 7)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, weekStart, resp.WeekStart)

	// Каждый день периода был запрошен ровно один раз
	assert.Len(t, daily.dates, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format(domain.DateFormat)
		assert.Contains(t, daily.dates, date)
		assert.Equal(t, slotsOf("09:00", "10:00"), resp.Days[date])
	}
}

func TestExecute_ExplicitDayCount(t *testing.T) {
	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return &getAvailableSlots.Response{Slots: slotsOf("09:00")}, nil
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	req := weeklyRequest()
	req.Days = 3

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Days, 3)
	assert.Len(t, daily.dates, 3)
}

func TestExecute_DayFailureIsolated(t *testing.T) {
	// Сбой одного дня не отменяет результаты остальных
	badDate := weekStart.AddDate(0, 0, 2).Format(domain.DateFormat)

	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			if req.Date.Format(domain.DateFormat) == badDate {
				return nil, errors.New("storage unavailable")
			}
			return &getAvailableSlots.Response{Slots: slotsOf("09:00")}, nil
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	resp, err := uc.Execute(context.Background(), weeklyRequest())
	require.NoError(t, err)

	assert.Len(t, resp.Days, 6)
	assert.NotContains(t, resp.Days, badDate)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, badDate, resp.Errors[0].Date)
	assert.ErrorContains(t, resp.Errors[0].Err, "storage unavailable")
}

func TestExecute_ErrorsSortedByDate(t *testing.T) {
	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return nil, errors.New("boom")
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	resp, err := uc.Execute(context.Background(), weeklyRequest())
	require.NoError(t, err)

	require.Len(t, resp.Errors, 7)
	for i := 1; i < len(resp.Errors); i++ {
		assert.Less(t, resp.Errors[i-1].Date, resp.Errors[i].Date)
	}
}

func TestExecute_StaffNotFoundPromotedToRequestLevel(t *testing.T) {
	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return nil, getAvailableSlots.ErrStaffNotFound
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	req := weeklyRequest()
	req.StaffID = ptr.Ptr(int64(99))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidInputPromotedToRequestLevel(t *testing.T) {
	daily := &mockDailySlots{
		execute: func(req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			return nil, getAvailableSlots.ErrInvalidInput
		},
	}

	uc := NewUseCase(daily, &mockLogger{})

	_, err := uc.Execute(context.Background(), weeklyRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockDailySlots{}, &mockLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero location", func(r *Request) { r.LocationID = 0 }},
		{"zero week start", func(r *Request) { r.WeekStart = time.Time{} }},
		{"negative days", func(r *Request) { r.Days = -1 }},
		{"too many days", func(r *Request) { r.Days = domain.MaxWeekDays + 1 }},
		{"duration too small", func(r *Request) { r.DurationMinutes = 0 }},
		{"non-positive staff id", func(r *Request) { r.StaffID = ptr.Ptr(int64(-5)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := weeklyRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
