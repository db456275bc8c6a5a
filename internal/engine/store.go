package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Store in-memory хранилище событий загруженного месячного окна
//
// Источником истины остается внешнее хранилище: Store только кеширует
// последнее успешно загруженное окно. При ошибке загрузки ранее загруженные
// данные сохраняются без изменений (stale-but-consistent).
type Store struct {
	client   CalendarAPI
	workerID int64
	log      Logger

	loaded   bool
	year     int
	month    int
	events   []*domain.CalendarEvent
	holidays []*domain.Holiday
}

func newStore(client CalendarAPI, workerID int64, log Logger) *Store {
	return &Store{
		client:   client,
		workerID: workerID,
		log:      log,
	}
}

// LoadWindow загружает полное месячное окно (события + праздники) за один запрос,
// полностью заменяя состояние в памяти
// При ошибке предыдущее окно остается нетронутым, ошибка возвращается вызывающему
func (s *Store) LoadWindow(ctx context.Context, year int, month int) error {
	events, holidays, err := s.client.ListWindow(ctx, s.workerID, year, month)
	if err != nil {
		s.log.Warn("Store: failed to load window %d-%02d for worker=%d, keeping previous window: %v",
			year, month, s.workerID, err)
		return fmt.Errorf("load window %d-%02d: %w", year, month, err)
	}

	s.loaded = true
	s.year = year
	s.month = month
	s.events = events
	s.holidays = holidays

	s.log.Info("Store: loaded window %d-%02d for worker=%d: %d events, %d holidays",
		year, month, s.workerID, len(events), len(holidays))
	return nil
}

// Reload перечитывает текущее окно из внешнего хранилища
func (s *Store) Reload(ctx context.Context) error {
	if !s.loaded {
		return ErrWindowNotLoaded
	}
	return s.LoadWindow(ctx, s.year, s.month)
}

// EventsOn возвращает все события, чей включительный диапазон покрывает дату
// Порядок соответствует порядку создания (id по возрастанию, как отдает сервер)
func (s *Store) EventsOn(date time.Time) []*domain.CalendarEvent {
	result := make([]*domain.CalendarEvent, 0)
	for _, event := range s.events {
		if event.Covers(date) {
			result = append(result, event)
		}
	}
	return result
}

// DisplayEventOn возвращает событие, определяющее отображение ячейки дня
// При нескольких пересекающихся событиях побеждает созданное последним
func (s *Store) DisplayEventOn(date time.Time) *domain.CalendarEvent {
	var latest *domain.CalendarEvent
	for _, event := range s.events {
		if !event.Covers(date) {
			continue
		}
		if latest == nil || event.ID > latest.ID {
			latest = event
		}
	}
	return latest
}

// HolidayOn возвращает праздник на указанную дату или nil
func (s *Store) HolidayOn(date time.Time) *domain.Holiday {
	for _, holiday := range s.holidays {
		if holiday.On(date) {
			return holiday
		}
	}
	return nil
}

// Events возвращает все события загруженного окна
func (s *Store) Events() []*domain.CalendarEvent {
	return s.events
}

// Holidays возвращает все праздники загруженного окна
func (s *Store) Holidays() []*domain.Holiday {
	return s.holidays
}

// Window возвращает текущее загруженное окно
// ok == false, если окно еще не загружалось
func (s *Store) Window() (year int, month int, ok bool) {
	return s.year, s.month, s.loaded
}

// reset сбрасывает состояние хранилища (используется при Dispose движка)
func (s *Store) reset() {
	s.loaded = false
	s.year = 0
	s.month = 0
	s.events = nil
	s.holidays = nil
}
