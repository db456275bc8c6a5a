package engine

import "errors"

var (
	// ErrConfirmationRequired возвращается, когда массовое удаление вызвано без явного подтверждения
	// Удаление необратимо, поэтому подтверждение является обязательным именованным шагом
	ErrConfirmationRequired = errors.New("engine: delete-selected requires explicit confirmation")

	// ErrBatchInFlight возвращается при попытке запустить массовую операцию,
	// пока предыдущая еще не завершилась
	ErrBatchInFlight = errors.New("engine: another batch operation is still in flight")

	// ErrEmptyClipboard возвращается при вставке без предварительного копирования
	ErrEmptyClipboard = errors.New("engine: clipboard is empty")

	// ErrShapeOnlyClipboard возвращается при вставке буфера вида dateRange
	// Такой буфер не содержит шаблонов событий, воспроизводить нечего
	ErrShapeOnlyClipboard = errors.New("engine: clipboard holds a date range without event templates")

	// ErrPartialBatch возвращается, когда часть запросов массовой операции завершилась ошибкой
	// Завершившиеся подоперации не откатываются; состояние перечитывается из хранилища
	ErrPartialBatch = errors.New("engine: batch completed partially")

	// ErrWindowNotLoaded возвращается, когда перезагрузка запрошена до первой загрузки окна
	ErrWindowNotLoaded = errors.New("engine: no month window loaded")
)
