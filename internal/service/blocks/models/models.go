package models

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// CreateBlockRequest запрос на создание блокировки
// Без professionalId блокируется весь салон; без времени блокируются дни целиком
type CreateBlockRequest struct {
	ProfessionalID *int64  `json:"professionalId,omitempty" validate:"omitempty,gt=0"`
	StartDate      string  `json:"startDate" validate:"required"` // "2025-03-10"
	EndDate        *string `json:"endDate,omitempty"`             // по умолчанию равна startDate
	StartTime      *string `json:"startTime,omitempty"`           // "12:00"
	EndTime        *string `json:"endTime,omitempty"`             // "13:00"
	Reason         *string `json:"reason,omitempty" validate:"omitempty,max=200"`
}

// ListBlocksRequest запрос на получение блокировок
type ListBlocksRequest struct {
	ProfessionalID *int64
	Date           *time.Time
}

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID *int64    `json:"professionalId,omitempty"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	StartTime      *string   `json:"startTime,omitempty"`
	EndTime        *string   `json:"endTime,omitempty"`
	Reason         *string   `json:"reason,omitempty"`
	SalonWide      bool      `json:"salonWide"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.TimeBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	resp := &BlockResponse{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		StartDate:      b.StartDate.Format(domain.DateFormat),
		EndDate:        b.EndDate.Format(domain.DateFormat),
		Reason:         b.Reason,
		SalonWide:      b.IsSalonWide(),
		CreatedAt:      b.CreatedAt,
	}
	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	if b.EndTime != nil {
		e := b.EndTime.String()
		resp.EndTime = &e
	}

	return resp
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.TimeBlock) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}
	for _, b := range blocks {
		if item := FromDomainBlock(b); item != nil {
			resp.Blocks = append(resp.Blocks, *item)
		}
	}
	return resp
}
