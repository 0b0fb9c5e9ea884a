package update_appointment_status

import "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=agendado confirmado concluido cancelado nao_compareceu"`
}

func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{Status: r.Status}
}
