package cancel_appointment

import "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"

// CancelAppointmentRequest тело запроса на отмену, может быть пустым
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelRequest {
	return &models.CancelRequest{Reason: r.Reason}
}
