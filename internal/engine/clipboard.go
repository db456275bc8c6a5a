package engine

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// ClipboardKind вид содержимого буфера обмена
type ClipboardKind string

const (
	// ClipboardEvents буфер содержит шаблоны событий, снятые с исходного выделения
	ClipboardEvents ClipboardKind = "events"
	// ClipboardDateRange исходное выделение не содержало событий;
	// буфер хранит только количество скопированных дней
	ClipboardDateRange ClipboardKind = "dateRange"
)

// EventTemplate шаблон события для вставки: тип и подпись без привязки к датам
type EventTemplate struct {
	Type  domain.EventType
	Title string
}

// Clipboard буфер обмена шаблонов событий
// Единственный экземпляр на движок, полностью заменяется каждым копированием,
// не переживает перезапуск процесса
type Clipboard struct {
	Kind      ClipboardKind
	Templates []EventTemplate
	Count     int
}

// captureClipboard снимает буфер с событий, затронутых выделением
// Если событий нет, возвращает буфер вида dateRange с размером выделения
func captureClipboard(events []*domain.CalendarEvent, selectionSize int) *Clipboard {
	if len(events) == 0 {
		return &Clipboard{
			Kind:  ClipboardDateRange,
			Count: selectionSize,
		}
	}

	// Дедупликация шаблонов по паре (тип, подпись) с сохранением порядка
	seen := make(map[EventTemplate]struct{}, len(events))
	templates := make([]EventTemplate, 0, len(events))
	for _, event := range events {
		tpl := EventTemplate{Type: event.Type, Title: event.Title}
		if _, ok := seen[tpl]; ok {
			continue
		}
		seen[tpl] = struct{}{}
		templates = append(templates, tpl)
	}

	return &Clipboard{
		Kind:      ClipboardEvents,
		Templates: templates,
		Count:     len(templates),
	}
}
