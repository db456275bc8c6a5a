package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/calendarapi"
)

// Engine движок календаря доступности одного исполнителя
//
// Объединяет хранилище событий окна, модель выделения, буфер обмена и
// координатор массовых операций. Явно инстанцируемый объект с жизненным
// циклом New -> LoadWindow -> ... -> Dispose, не привязанный к слою
// отображения.
//
// Экземпляр принадлежит ровно одному календарному представлению и не
// предназначен для конкурентного использования из нескольких горутин.
// Массовые операции сериализуются: пока предыдущая не завершилась,
// следующая отклоняется с ErrBatchInFlight.
type Engine struct {
	workerID int64
	client   CalendarAPI
	log      Logger

	timeProvider TimeProvider
	store        *Store
	selection    *Selection
	clipboard    *Clipboard

	inFlight bool
}

// New создает движок календаря для указанного исполнителя
func New(workerID int64, client CalendarAPI, log Logger) *Engine {
	timeProvider := &RealTimeProvider{}
	return &Engine{
		workerID:     workerID,
		client:       client,
		log:          log,
		timeProvider: timeProvider,
		store:        newStore(client, workerID, log),
		selection:    NewSelection(timeProvider),
	}
}

// LoadWindow загружает месячное окно календаря
// При успешной загрузке выделение сбрасывается (навигация по месяцам);
// при ошибке предыдущее окно и выделение остаются нетронутыми
func (e *Engine) LoadWindow(ctx context.Context, year int, month int) error {
	if err := e.store.LoadWindow(ctx, year, month); err != nil {
		return err
	}
	e.selection.Clear()
	return nil
}

// Dispose сбрасывает все состояние движка: окно, выделение и буфер обмена
func (e *Engine) Dispose() {
	e.store.reset()
	e.selection.Clear()
	e.clipboard = nil
}

// --- Жесты выделения ---

// PointSelect обрабатывает обычный клик по дате
func (e *Engine) PointSelect(date time.Time) { e.selection.PointSelect(date) }

// RangeExtend обрабатывает shift-клик по дате
func (e *Engine) RangeExtend(date time.Time) { e.selection.RangeExtend(date) }

// Toggle обрабатывает ctrl/cmd-клик по дате
func (e *Engine) Toggle(date time.Time) { e.selection.Toggle(date) }

// DragMove обрабатывает движение зажатого указателя над датой
func (e *Engine) DragMove(date time.Time) { e.selection.DragMove(date) }

// DragEnd завершает жест перетаскивания
func (e *Engine) DragEnd() { e.selection.DragEnd() }

// ClearSelection явно очищает выделение
func (e *Engine) ClearSelection() { e.selection.Clear() }

// --- Запросы состояния ---

// Selection возвращает выбранные даты в хронологическом порядке
func (e *Engine) Selection() []time.Time { return e.selection.Dates() }

// IsSelected возвращает true, если дата входит в выделение
func (e *Engine) IsSelected(date time.Time) bool { return e.selection.IsSelected(date) }

// EventsOn возвращает все события, покрывающие дату
func (e *Engine) EventsOn(date time.Time) []*domain.CalendarEvent { return e.store.EventsOn(date) }

// DisplayEventOn возвращает событие, определяющее отображение ячейки дня
func (e *Engine) DisplayEventOn(date time.Time) *domain.CalendarEvent {
	return e.store.DisplayEventOn(date)
}

// HolidayOn возвращает праздник на дату или nil
func (e *Engine) HolidayOn(date time.Time) *domain.Holiday { return e.store.HolidayOn(date) }

// ClipboardState возвращает текущее содержимое буфера обмена или nil
func (e *Engine) ClipboardState() *Clipboard { return e.clipboard }

// OverwriteAdvisory возвращает количество существующих событий, которые
// будут затронуты мутирующей операцией над текущим выделением
//
// Информационное предупреждение перед quick-set или вставкой: операция
// не блокируется и ее результат не меняется. Считаются уникальные события,
// покрывающие хотя бы одну дату в границах [min, max] выделения.
func (e *Engine) OverwriteAdvisory() int {
	min, max, ok := e.selection.Bounds()
	if !ok {
		return 0
	}
	return e.countEventsInBound(min, max)
}

// --- Массовые операции ---

// QuickSet схлопывает выделение до границ [min, max] и создает одно событие
// указанного типа на весь диапазон
//
// Существующие события диапазона не удаляются: сервер отдает все пересекающиеся
// события, а ячейку дня определяет созданное последним (last write wins).
// По завершении (успешном или нет) окно перечитывается, выделение уже очищено.
func (e *Engine) QuickSet(ctx context.Context, eventType domain.EventType, title string) error {
	if e.inFlight {
		return ErrBatchInFlight
	}
	if e.selection.IsEmpty() {
		return nil
	}

	e.inFlight = true
	defer func() { e.inFlight = false }()

	min, max, _ := e.selection.Bounds()

	if affected := e.countEventsInBound(min, max); affected > 0 {
		e.log.Info("QuickSet: %d existing events will be affected on %s..%s",
			affected, min.Format(domain.DateFormat), max.Format(domain.DateFormat))
	}

	// Выделение потребляется и очищается до отправки запросов,
	// чтобы незавершенная операция не была видна как "ожидающее" выделение
	e.selection.Clear()

	_, createErr := e.client.CreateEvent(ctx, e.workerID, eventType, title, min, max)
	if createErr != nil {
		e.log.Warn("QuickSet: create failed for worker=%d, type=%s, range=%s..%s: %v",
			e.workerID, eventType, min.Format(domain.DateFormat), max.Format(domain.DateFormat), createErr)
	} else {
		e.log.Info("QuickSet: created %s event for worker=%d, range=%s..%s",
			eventType, e.workerID, min.Format(domain.DateFormat), max.Format(domain.DateFormat))
	}

	// Перезагрузка выполняется после завершения операции независимо от исхода,
	// чтобы отобразить фактическое состояние сервера
	reloadErr := e.reloadAfterBatch(ctx)

	if createErr != nil {
		return fmt.Errorf("engine: quick-set: %w", createErr)
	}
	return reloadErr
}

// DeleteSelected удаляет все события, затронутые выделением
//
// Деструктивная и необратимая операция: вызов без confirmed == true
// отклоняется с ErrConfirmationRequired, выделение при этом сохраняется.
// На каждый уникальный id выполняется ровно один запрос удаления.
// Операция не атомарна: успешные удаления не откатываются при частичном сбое.
func (e *Engine) DeleteSelected(ctx context.Context, confirmed bool) error {
	if e.inFlight {
		return ErrBatchInFlight
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if e.selection.IsEmpty() {
		return nil
	}

	e.inFlight = true
	defer func() { e.inFlight = false }()

	ids := e.eventIDsInSelection()

	e.selection.Clear()

	if len(ids) == 0 {
		e.log.Info("DeleteSelected: selection carries no events for worker=%d, nothing to delete", e.workerID)
		return nil
	}

	var failed int
	var firstErr error
	for _, id := range ids {
		err := e.client.DeleteEvent(ctx, e.workerID, id)
		if err == nil {
			continue
		}
		if errors.Is(err, calendarapi.ErrEventNotFound) {
			// Событие уже удалено на сервере: желаемое состояние достигнуто,
			// фиксируем отдельно от настоящего успеха
			e.log.Warn("DeleteSelected: event id=%d already gone server-side, treating as deleted", id)
			continue
		}
		failed++
		if firstErr == nil {
			firstErr = err
		}
		e.log.Error("DeleteSelected: failed to delete event id=%d for worker=%d: %v", id, e.workerID, err)
	}

	reloadErr := e.reloadAfterBatch(ctx)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d deletes failed: %v", ErrPartialBatch, failed, len(ids), firstErr)
	}

	e.log.Info("DeleteSelected: deleted %d events for worker=%d", len(ids), e.workerID)
	return reloadErr
}

// Copy снимает буфер обмена с текущего выделения
//
// Если выделение затрагивает события, в буфер попадают их шаблоны (тип, подпись)
// с дедупликацией. Если событий нет, буфер фиксирует только количество дней
// (shape-only копия). Сетевых запросов не выполняется; выделение очищается,
// освобождая место под выбор целевого диапазона для вставки.
func (e *Engine) Copy() {
	if e.selection.IsEmpty() {
		return
	}

	events := e.eventsInSelection()
	size := e.selection.Len()
	e.clipboard = captureClipboard(events, size)
	e.selection.Clear()

	if e.clipboard.Kind == ClipboardEvents {
		e.log.Info("Copy: captured %d event templates for worker=%d", len(e.clipboard.Templates), e.workerID)
	} else {
		e.log.Info("Copy: captured shape-only range of %d days for worker=%d", size, e.workerID)
	}
}

// Paste воспроизводит буфер обмена на текущее выделение
//
// Целевое выделение схлопывается до границ [min, max]; на каждый шаблон
// буфера создается одно событие на весь диапазон. Вставка shape-only буфера
// (dateRange) отклоняется с ErrShapeOnlyClipboard без единого запроса -
// воспроизводить нечего; выделение при этом сохраняется.
func (e *Engine) Paste(ctx context.Context) error {
	if e.inFlight {
		return ErrBatchInFlight
	}
	if e.clipboard == nil {
		return ErrEmptyClipboard
	}
	if e.clipboard.Kind != ClipboardEvents {
		return ErrShapeOnlyClipboard
	}
	if e.selection.IsEmpty() {
		return nil
	}

	e.inFlight = true
	defer func() { e.inFlight = false }()

	min, max, _ := e.selection.Bounds()
	templates := e.clipboard.Templates

	if affected := e.countEventsInBound(min, max); affected > 0 {
		e.log.Info("Paste: %d existing events will be affected on %s..%s",
			affected, min.Format(domain.DateFormat), max.Format(domain.DateFormat))
	}

	e.selection.Clear()

	var failed int
	var firstErr error
	for _, tpl := range templates {
		if _, err := e.client.CreateEvent(ctx, e.workerID, tpl.Type, tpl.Title, min, max); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			e.log.Error("Paste: failed to create %s event for worker=%d: %v", tpl.Type, e.workerID, err)
		}
	}

	reloadErr := e.reloadAfterBatch(ctx)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d creates failed: %v", ErrPartialBatch, failed, len(templates), firstErr)
	}

	e.log.Info("Paste: created %d events for worker=%d, range=%s..%s",
		len(templates), e.workerID, min.Format(domain.DateFormat), max.Format(domain.DateFormat))
	return reloadErr
}

// --- Одиночные операции (вне выделения) ---

// CreateEventOn создает одно событие на указанный диапазон напрямую,
// минуя модель выделения; окно перечитывается после успеха
func (e *Engine) CreateEventOn(ctx context.Context, eventType domain.EventType, title string, startDate, endDate time.Time) (*domain.CalendarEvent, error) {
	created, err := e.client.CreateEvent(ctx, e.workerID, eventType, title, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("engine: create event: %w", err)
	}

	if err := e.reloadAfterBatch(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// DeleteEventByID удаляет одно событие по id напрямую из ячейки
// Отсутствие события на сервере считается мягким успехом
func (e *Engine) DeleteEventByID(ctx context.Context, eventID int64) error {
	err := e.client.DeleteEvent(ctx, e.workerID, eventID)
	if err != nil && !errors.Is(err, calendarapi.ErrEventNotFound) {
		return fmt.Errorf("engine: delete event id=%d: %w", eventID, err)
	}
	if errors.Is(err, calendarapi.ErrEventNotFound) {
		e.log.Warn("DeleteEventByID: event id=%d already gone server-side", eventID)
	}

	return e.reloadAfterBatch(ctx)
}

// --- Вспомогательные методы ---

// eventsInSelection возвращает уникальные события, покрывающие хотя бы одну выбранную дату
func (e *Engine) eventsInSelection() []*domain.CalendarEvent {
	seen := make(map[int64]struct{})
	events := make([]*domain.CalendarEvent, 0)

	for _, date := range e.selection.Dates() {
		for _, event := range e.store.EventsOn(date) {
			if _, ok := seen[event.ID]; ok {
				continue
			}
			seen[event.ID] = struct{}{}
			events = append(events, event)
		}
	}
	return events
}

// eventIDsInSelection возвращает уникальные id событий, затронутых выделением
func (e *Engine) eventIDsInSelection() []int64 {
	events := e.eventsInSelection()
	ids := make([]int64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	return ids
}

// countEventsInBound считает уникальные события, покрывающие хотя бы один день диапазона
func (e *Engine) countEventsInBound(min, max time.Time) int {
	seen := make(map[int64]struct{})
	for d := min; !d.After(max); d = d.AddDate(0, 0, 1) {
		for _, event := range e.store.EventsOn(d) {
			seen[event.ID] = struct{}{}
		}
	}
	return len(seen)
}

// reloadAfterBatch перечитывает окно после завершения массовой операции
// Ошибка перезагрузки не фатальна: состояние остается stale-but-consistent
func (e *Engine) reloadAfterBatch(ctx context.Context) error {
	if err := e.store.Reload(ctx); err != nil {
		if errors.Is(err, ErrWindowNotLoaded) {
			return nil
		}
		e.log.Warn("Engine: reload after batch failed for worker=%d: %v", e.workerID, err)
		return err
	}
	return nil
}
