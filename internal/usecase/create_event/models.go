package create_event

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на создание события
type Request struct {
	WorkerID  int64            // ID исполнителя, владельца календаря
	Type      domain.EventType // Тип события (AVAILABLE / BUSY / BLOCKED)
	Title     string           // Опциональная подпись; пустая = подпись типа
	StartDate time.Time        // Начало диапазона (включительно, только дата)
	EndDate   time.Time        // Конец диапазона (включительно, только дата)
}

// Response модель ответа с созданным событием
type Response struct {
	ID        int64
	WorkerID  int64
	Type      domain.EventType
	Title     string
	StartDate time.Time
	EndDate   time.Time

	// SupersededCount количество существующих событий, которые новое событие
	// перекрывает. Старые события не удаляются: ячейку дня определяет
	// созданное последним; счетчик возвращается как предупреждение о перезаписи
	SupersededCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
