package engine

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// gestureState состояние конечного автомата жестов выделения
type gestureState int

const (
	// gestureIdle жест не выполняется
	gestureIdle gestureState = iota
	// gestureAnchoring указатель зажат после точечного выбора или расширения диапазона
	gestureAnchoring
	// gestureExtending указатель движется, диапазон непрерывно пересчитывается
	gestureExtending
)

// Selection модель множественного выделения календарных дней
//
// Чистый конечный автомат: единственное изменяемое состояние - текущее
// множество дат, якорь жеста и дата последнего выбора. Прошедшие даты
// (раньше "сегодня" по локальному календарю) не добавляются ни одним жестом -
// попытки молча отбрасываются.
//
// Не потокобезопасна: выделение принадлежит ровно одному экземпляру
// календарного представления.
type Selection struct {
	timeProvider TimeProvider

	days   map[string]time.Time
	anchor *time.Time
	last   *time.Time
	state  gestureState
}

// NewSelection создает пустое выделение
func NewSelection(timeProvider TimeProvider) *Selection {
	return &Selection{
		timeProvider: timeProvider,
		days:         make(map[string]time.Time),
	}
}

// PointSelect обрабатывает обычный клик: выделение становится {date}
// Клик по прошедшей дате игнорируется, жест не начинается
func (s *Selection) PointSelect(date time.Time) {
	d := domain.DateOnly(date)
	if s.isPast(d) {
		return
	}

	s.days = map[string]time.Time{s.key(d): d}
	s.anchor = &d
	s.last = &d
	s.state = gestureAnchoring
}

// RangeExtend обрабатывает shift-клик: выделение становится включительным
// диапазоном между последней выбранной датой и date
// При пустом выделении ведет себя как точечный выбор
func (s *Selection) RangeExtend(date time.Time) {
	d := domain.DateOnly(date)

	if s.last == nil || len(s.days) == 0 {
		s.PointSelect(d)
		return
	}

	origin := *s.last
	s.days = s.buildRange(origin, d)
	s.anchor = &origin
	s.last = &d
	s.state = gestureAnchoring
}

// Toggle обрабатывает ctrl/cmd-клик: инвертирует выделение одной даты,
// не затрагивая остальные; якорь переносится на date
func (s *Selection) Toggle(date time.Time) {
	d := domain.DateOnly(date)
	if s.isPast(d) {
		return
	}

	key := s.key(d)
	if _, ok := s.days[key]; ok {
		delete(s.days, key)
	} else {
		s.days[key] = d
	}

	s.anchor = &d
	s.last = &d
	s.state = gestureIdle
}

// DragMove обрабатывает движение зажатого указателя: выделение заменяется
// включительным диапазоном между якорем жеста и датой под указателем
// Игнорируется, если жест не начат (не было точечного выбора или расширения)
func (s *Selection) DragMove(date time.Time) {
	if s.state != gestureAnchoring && s.state != gestureExtending {
		return
	}
	if s.anchor == nil {
		return
	}

	d := domain.DateOnly(date)
	s.days = s.buildRange(*s.anchor, d)
	s.last = &d
	s.state = gestureExtending
}

// DragEnd завершает жест перетаскивания; итоговое выделение сохраняется
func (s *Selection) DragEnd() {
	s.state = gestureIdle
}

// Clear полностью очищает выделение и якорь
func (s *Selection) Clear() {
	s.days = make(map[string]time.Time)
	s.anchor = nil
	s.last = nil
	s.state = gestureIdle
}

// Dates возвращает выбранные даты в хронологическом порядке
func (s *Selection) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s.days))
	for _, d := range s.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// IsSelected возвращает true, если дата входит в выделение
func (s *Selection) IsSelected(date time.Time) bool {
	_, ok := s.days[s.key(domain.DateOnly(date))]
	return ok
}

// Len возвращает количество выбранных дат
func (s *Selection) Len() int {
	return len(s.days)
}

// IsEmpty возвращает true, если выделение пусто
func (s *Selection) IsEmpty() bool {
	return len(s.days) == 0
}

// Bounds возвращает границы выделения [min, max]
// ok == false, если выделение пусто
func (s *Selection) Bounds() (min, max time.Time, ok bool) {
	if len(s.days) == 0 {
		return time.Time{}, time.Time{}, false
	}

	first := true
	for _, d := range s.days {
		if first {
			min, max = d, d
			first = false
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, true
}

// buildRange строит включительный диапазон дней между a и b (в любом порядке),
// отбрасывая прошедшие даты
func (s *Selection) buildRange(a, b time.Time) map[string]time.Time {
	from, to := a, b
	if to.Before(from) {
		from, to = to, from
	}

	days := make(map[string]time.Time)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if s.isPast(d) {
			continue
		}
		days[s.key(d)] = d
	}
	return days
}

// isPast возвращает true, если дата строго раньше сегодняшнего дня
func (s *Selection) isPast(d time.Time) bool {
	today := domain.DateOnly(s.timeProvider.Now())
	return d.Before(today)
}

func (s *Selection) key(d time.Time) string {
	return d.Format(domain.DateFormat)
}
