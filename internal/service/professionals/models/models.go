package models

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// ProfessionalRequest запрос на создание или изменение мастера
// WorkDays принимает названия дней на португальском или английском ("segunda", "tue", "3")
type ProfessionalRequest struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Phone    *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	WorkDays []string `json:"workDays" validate:"required,min=1,max=7,dive,required"`
	DayStart string   `json:"dayStart" validate:"required"` // "08:00"
	DayEnd   string   `json:"dayEnd" validate:"required"`   // "18:00"
	Active   *bool    `json:"active,omitempty"`
}

// ProfessionalResponse ответ с данными мастера
type ProfessionalResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	WorkDays  []string  `json:"workDays"`
	DayStart  string    `json:"dayStart"`
	DayEnd    string    `json:"dayEnd"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfessionalListResponse ответ со списком мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}

	workDays := p.WorkDays
	if workDays == nil {
		workDays = []string{}
	}

	return &ProfessionalResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		WorkDays:  workDays,
		DayStart:  p.DayStart.String(),
		DayEnd:    p.DayEnd.String(),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainProfessionalList конвертирует список domain моделей в DTO
func FromDomainProfessionalList(professionals []*domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{
		Professionals: make([]ProfessionalResponse, 0, len(professionals)),
	}
	for _, p := range professionals {
		if item := FromDomainProfessional(p); item != nil {
			resp.Professionals = append(resp.Professionals, *item)
		}
	}
	return resp
}
