package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/calendarapi"
)

// --- Тестовые двойники ---

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type createCall struct {
	eventType domain.EventType
	title     string
	startDate time.Time
	endDate   time.Time
}

// fakeCalendarAPI in-memory реализация CalendarAPI для тестов движка
type fakeCalendarAPI struct {
	events   []*domain.CalendarEvent
	holidays []*domain.Holiday
	nextID   int64

	listErr   error
	createErr error
	deleteErr error

	listCalls   int
	createCalls []createCall
	deleteCalls []int64
}

func newFakeCalendarAPI() *fakeCalendarAPI {
	return &fakeCalendarAPI{nextID: 1}
}

func (f *fakeCalendarAPI) ListWindow(ctx context.Context, workerID int64, year int, month int) ([]*domain.CalendarEvent, []*domain.Holiday, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	events := make([]*domain.CalendarEvent, len(f.events))
	copy(events, f.events)
	holidays := make([]*domain.Holiday, len(f.holidays))
	copy(holidays, f.holidays)
	return events, holidays, nil
}

func (f *fakeCalendarAPI) CreateEvent(ctx context.Context, workerID int64, eventType domain.EventType, title string, startDate, endDate time.Time) (*domain.CalendarEvent, error) {
	f.createCalls = append(f.createCalls, createCall{
		eventType: eventType,
		title:     title,
		startDate: startDate,
		endDate:   endDate,
	})
	if f.createErr != nil {
		return nil, f.createErr
	}
	event := &domain.CalendarEvent{
		ID:        f.nextID,
		WorkerID:  workerID,
		Type:      eventType,
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
	}
	f.nextID++
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeCalendarAPI) DeleteEvent(ctx context.Context, workerID int64, eventID int64) error {
	f.deleteCalls = append(f.deleteCalls, eventID)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, event := range f.events {
		if event.ID == eventID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return calendarapi.ErrEventNotFound
}

func (f *fakeCalendarAPI) addEvent(eventType domain.EventType, title string, start, end time.Time) *domain.CalendarEvent {
	event := &domain.CalendarEvent{
		ID:        f.nextID,
		WorkerID:  1,
		Type:      eventType,
		Title:     title,
		StartDate: start,
		EndDate:   end,
	}
	f.nextID++
	f.events = append(f.events, event)
	return event
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// newTestEngine создает движок с фиксированным "сегодня" = 2025-03-05
func newTestEngine(t *testing.T, api *fakeCalendarAPI) *Engine {
	t.Helper()
	tp := &fixedTimeProvider{now: date(2025, time.March, 5)}
	e := New(1, api, nopLogger{})
	e.timeProvider = tp
	e.selection = NewSelection(tp)
	return e
}

func loadMarch(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.LoadWindow(context.Background(), 2025, 3))
}

// --- Массовые операции ---

func TestQuickSet_CreatesSingleEventOverSelectionBounds(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.RangeExtend(date(2025, time.March, 12))

	err := e.QuickSet(context.Background(), domain.TypeBusy, "Конференция")
	require.NoError(t, err)

	require.Len(t, api.createCalls, 1)
	call := api.createCalls[0]
	assert.Equal(t, domain.TypeBusy, call.eventType)
	assert.Equal(t, "Конференция", call.title)
	assert.Equal(t, date(2025, time.March, 10), call.startDate)
	assert.Equal(t, date(2025, time.March, 12), call.endDate)

	// Выделение потреблено, окно перечитано
	assert.Empty(t, e.Selection())
	assert.Equal(t, 2, api.listCalls)

	got := e.DisplayEventOn(date(2025, time.March, 11))
	require.NotNil(t, got)
	assert.Equal(t, domain.TypeBusy, got.Type)
}

func TestQuickSet_CollapsesSparseSelectionToBounds(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	// Несмежное выделение: 10 и 14 марта
	e.Toggle(date(2025, time.March, 10))
	e.Toggle(date(2025, time.March, 14))

	require.NoError(t, e.QuickSet(context.Background(), domain.TypeAvailable, ""))

	require.Len(t, api.createCalls, 1)
	assert.Equal(t, date(2025, time.March, 10), api.createCalls[0].startDate)
	assert.Equal(t, date(2025, time.March, 14), api.createCalls[0].endDate)
}

func TestQuickSet_EmptySelectionIsNoop(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	require.NoError(t, e.QuickSet(context.Background(), domain.TypeBusy, ""))
	assert.Empty(t, api.createCalls)
	assert.Equal(t, 1, api.listCalls)
}

func TestQuickSet_CreateFailureStillReloadsAndClearsSelection(t *testing.T) {
	api := newFakeCalendarAPI()
	api.createErr = errors.New("boom")
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))

	err := e.QuickSet(context.Background(), domain.TypeBusy, "")
	require.Error(t, err)

	assert.Empty(t, e.Selection())
	assert.Equal(t, 2, api.listCalls)
}

func TestQuickSet_RejectsWhileBatchInFlight(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.inFlight = true

	err := e.QuickSet(context.Background(), domain.TypeBusy, "")
	assert.ErrorIs(t, err, ErrBatchInFlight)
	assert.Empty(t, api.createCalls)
	// Выделение не потреблено отклоненной операцией
	assert.Len(t, e.Selection(), 1)
}

func TestDeleteSelected_RequiresConfirmation(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))

	err := e.DeleteSelected(context.Background(), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	// Ни одного запроса, выделение сохранено
	assert.Empty(t, api.deleteCalls)
	assert.Len(t, e.Selection(), 1)
}

func TestDeleteSelected_OneRequestPerUniqueEvent(t *testing.T) {
	api := newFakeCalendarAPI()
	// Одно событие покрывает три дня выделения - удаляется ровно один раз
	span := api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 12))
	single := api.addEvent(domain.TypeAvailable, "", date(2025, time.March, 12), date(2025, time.March, 12))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.RangeExtend(date(2025, time.March, 12))

	require.NoError(t, e.DeleteSelected(context.Background(), true))

	assert.ElementsMatch(t, []int64{span.ID, single.ID}, api.deleteCalls)
	assert.Empty(t, e.Selection())
	assert.Empty(t, e.EventsOn(date(2025, time.March, 11)))
}

func TestDeleteSelected_MissingEventIsSoftSuccess(t *testing.T) {
	api := newFakeCalendarAPI()
	event := api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	// Событие исчезает на сервере между загрузкой окна и удалением
	api.events = nil

	e.PointSelect(date(2025, time.March, 10))

	require.NoError(t, e.DeleteSelected(context.Background(), true))
	assert.Equal(t, []int64{event.ID}, api.deleteCalls)
}

func TestDeleteSelected_PartialFailureReportsAndReloads(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))
	api.deleteErr = errors.New("storage offline")

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))

	err := e.DeleteSelected(context.Background(), true)
	assert.ErrorIs(t, err, ErrPartialBatch)
	assert.Equal(t, 2, api.listCalls)
}

func TestDeleteSelected_SelectionWithoutEventsIsNoop(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 20))

	require.NoError(t, e.DeleteSelected(context.Background(), true))
	assert.Empty(t, api.deleteCalls)
	assert.Empty(t, e.Selection())
}

// --- Копирование и вставка ---

func TestCopyPaste_ReplaysTemplatesOntoTargetRange(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "Смена", date(2025, time.March, 10), date(2025, time.March, 11))
	api.addEvent(domain.TypeAvailable, "", date(2025, time.March, 11), date(2025, time.March, 11))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.RangeExtend(date(2025, time.March, 11))
	e.Copy()

	// Копирование освобождает выделение под целевой диапазон
	assert.Empty(t, e.Selection())
	clip := e.ClipboardState()
	require.NotNil(t, clip)
	assert.Equal(t, ClipboardEvents, clip.Kind)
	require.Len(t, clip.Templates, 2)

	e.PointSelect(date(2025, time.March, 20))
	e.RangeExtend(date(2025, time.March, 22))

	require.NoError(t, e.Paste(context.Background()))

	require.Len(t, api.createCalls, 2)
	for _, call := range api.createCalls {
		assert.Equal(t, date(2025, time.March, 20), call.startDate)
		assert.Equal(t, date(2025, time.March, 22), call.endDate)
	}
	assert.Equal(t, domain.TypeBusy, api.createCalls[0].eventType)
	assert.Equal(t, "Смена", api.createCalls[0].title)
	assert.Equal(t, domain.TypeAvailable, api.createCalls[1].eventType)
}

func TestCopy_EmptySelectionLeavesClipboardUntouched(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.Copy()
	assert.Nil(t, e.ClipboardState())
}

func TestCopy_SelectionWithoutEventsCapturesShapeOnly(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 20))
	e.RangeExtend(date(2025, time.March, 22))
	e.Copy()

	clip := e.ClipboardState()
	require.NotNil(t, clip)
	assert.Equal(t, ClipboardDateRange, clip.Kind)
	assert.Equal(t, 3, clip.Count)
	assert.Empty(t, clip.Templates)
}

func TestPaste_ShapeOnlyClipboardRejectedWithoutRequests(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 20))
	e.Copy()

	e.PointSelect(date(2025, time.March, 25))

	err := e.Paste(context.Background())
	assert.ErrorIs(t, err, ErrShapeOnlyClipboard)
	assert.Empty(t, api.createCalls)
	// Целевое выделение сохранено для повторной попытки
	assert.Len(t, e.Selection(), 1)
}

func TestPaste_EmptyClipboard(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 20))

	err := e.Paste(context.Background())
	assert.ErrorIs(t, err, ErrEmptyClipboard)
}

func TestPaste_SurvivesWindowNavigation(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.Copy()

	// Навигация на следующий месяц не сбрасывает буфер обмена
	require.NoError(t, e.LoadWindow(context.Background(), 2025, 4))

	e.PointSelect(date(2025, time.April, 7))
	require.NoError(t, e.Paste(context.Background()))

	require.Len(t, api.createCalls, 1)
	assert.Equal(t, date(2025, time.April, 7), api.createCalls[0].startDate)
}

// --- Информирование о перезаписи ---

func TestOverwriteAdvisory_CountsUniqueEventsInBounds(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 12))
	api.addEvent(domain.TypeAvailable, "", date(2025, time.March, 12), date(2025, time.March, 14))
	api.addEvent(domain.TypeBlocked, "", date(2025, time.March, 25), date(2025, time.March, 25))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 11))
	e.RangeExtend(date(2025, time.March, 13))

	assert.Equal(t, 2, e.OverwriteAdvisory())
}

func TestOverwriteAdvisory_EmptySelection(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	assert.Equal(t, 0, e.OverwriteAdvisory())
}

// --- Одиночные операции ---

func TestCreateEventOn_BypassesSelection(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	created, err := e.CreateEventOn(context.Background(), domain.TypeBlocked, "Отпуск",
		date(2025, time.March, 17), date(2025, time.March, 21))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.TypeBlocked, created.Type)

	got := e.DisplayEventOn(date(2025, time.March, 19))
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestDeleteEventByID_MissingEventIsSoftSuccess(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	require.NoError(t, e.DeleteEventByID(context.Background(), 404))
}

// --- Жизненный цикл ---

func TestLoadWindow_SuccessClearsSelection(t *testing.T) {
	api := newFakeCalendarAPI()
	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	require.NoError(t, e.LoadWindow(context.Background(), 2025, 4))

	assert.Empty(t, e.Selection())
}

func TestLoadWindow_FailureKeepsSelectionAndWindow(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))

	api.listErr = errors.New("network down")
	err := e.LoadWindow(context.Background(), 2025, 4)
	require.Error(t, err)

	// Предыдущее окно и выделение нетронуты
	assert.Len(t, e.Selection(), 1)
	assert.Len(t, e.EventsOn(date(2025, time.March, 10)), 1)
}

func TestDispose_ResetsAllState(t *testing.T) {
	api := newFakeCalendarAPI()
	api.addEvent(domain.TypeBusy, "", date(2025, time.March, 10), date(2025, time.March, 10))

	e := newTestEngine(t, api)
	loadMarch(t, e)

	e.PointSelect(date(2025, time.March, 10))
	e.Copy()
	e.Dispose()

	assert.Empty(t, e.Selection())
	assert.Nil(t, e.ClipboardState())
	assert.Empty(t, e.EventsOn(date(2025, time.March, 10)))
}
