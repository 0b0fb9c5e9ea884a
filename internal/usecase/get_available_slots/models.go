package get_available_slots

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Пустой Slots - корректный ответ "нет свободного времени"
type Response struct {
	Date            time.Time
	ProfessionalID  int64
	ServiceID       int64
	DurationMinutes int
	Slots           []types.TimeString // Время начала, по возрастанию
}
