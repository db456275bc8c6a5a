package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func newTestStore(api *fakeCalendarAPI) *Store {
	return newStore(api, 1, nopLogger{})
}

func TestStore_LoadWindowReplacesState(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 12))
	api.holidays = []*domain.Holiday{{Date: date(2025, time.March, 8), Name: "Международный женский день"}}

	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	year, month, ok := s.Window()
	assert.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Len(t, s.Events(), 1)
	assert.Len(t, s.Holidays(), 1)
}

func TestStore_FailedLoadKeepsPreviousWindow(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))

	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	api.listErr = errors.New("connection refused")
	err := s.LoadWindow(context.Background(), 2025, 4)
	require.Error(t, err)

	// Старое окно целиком доступно, включая его координаты
	year, month, ok := s.Window()
	assert.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Len(t, s.EventsOn(date(2025, time.March, 10)), 1)
}

func TestStore_ReloadBeforeLoadRejected(t *testing.T) {
	s := newTestStore(newFakeCalendarAPI())
	assert.ErrorIs(t, s.Reload(context.Background()), ErrWindowNotLoaded)
}

func TestStore_ReloadRefetchesCurrentWindow(t *testing.T) {
	api := newFakeCalendarAPI()
	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	api.addEvent(domain.TypeAvailable, "", date(2025, time.March, 15), date(2025, time.March, 15))
	require.NoError(t, s.Reload(context.Background()))

	assert.Len(t, s.EventsOn(date(2025, time.March, 15)), 1)
	assert.Equal(t, 2, api.listCalls)
}

func TestStore_EventsOnInclusiveRange(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 12))

	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	assert.Len(t, s.EventsOn(date(2025, time.March, 10)), 1)
	assert.Len(t, s.EventsOn(date(2025, time.March, 11)), 1)
	assert.Len(t, s.EventsOn(date(2025, time.March, 12)), 1)
	assert.Empty(t, s.EventsOn(date(2025, time.March, 9)))
	assert.Empty(t, s.EventsOn(date(2025, time.March, 13)))
}

func TestStore_DisplayEventOnLastCreatedWins(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeAvailable, "", date(2025, time.March, 10), date(2025, time.March, 14))
	latest := api.addEvent(domain.TypeBusy, "", date(2025, time.March, 12), date(2025, time.March, 12))

	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	// День с двумя перекрывающимися событиями отображает созданное последним
	got := s.DisplayEventOn(date(2025, time.March, 12))
	require.NotNil(t, got)
	assert.Equal(t, latest.ID, got.ID)

	// Непокрытые новым событием дни по-прежнему отображают старое
	got = s.DisplayEventOn(date(2025, time.March, 11))
	require.NotNil(t, got)
	assert.Equal(t, domain.TypeAvailable, got.Type)
}

func TestStore_DisplayEventOnEmptyDay(t *testing.T) {
	s := newTestStore(newFakeCalendarAPI())
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	assert.Nil(t, s.DisplayEventOn(date(2025, time.March, 10)))
}

func TestStore_HolidayOn(t *testing.T) {
	api := newFakeCalendarAPI()
	api.holidays = []*domain.Holiday{{Date: date(2025, time.March, 8), Name: "Международный женский день"}}

	s := newTestStore(api)
	require.NoError(t, s.LoadWindow(context.Background(), 2025, 3))

	holiday := s.HolidayOn(date(2025, time.March, 8))
	require.NotNil(t, holiday)
	assert.Equal(t, "Международный женский день", holiday.Name)

	assert.Nil(t, s.HolidayOn(date(2025, time.March, 9)))
}
