package cache

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// ProfessionalRepository источник данных о мастерах
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository источник данных об услугах
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
}

// Catalog кэш справочников мастеров и услуг поверх репозиториев
// Хранит копии значений, поэтому вызывающий код может менять полученные объекты.
// При ttl <= 0 кэш выключен и все запросы идут в репозиторий
type Catalog struct {
	professionals ProfessionalRepository
	services      ServiceRepository
	profCache     *otter.Cache[int64, domain.Professional]
	svcCache      *otter.Cache[int64, domain.Service]
	logger        Logger
}

// NewCatalog создает кэш справочников
func NewCatalog(professionals ProfessionalRepository, services ServiceRepository, ttl time.Duration, maxSize int, logger Logger) *Catalog {
	c := &Catalog{
		professionals: professionals,
		services:      services,
		logger:        logger,
	}

	if ttl > 0 {
		c.profCache = otter.Must(&otter.Options[int64, domain.Professional]{
			MaximumSize:      maxSize,
			ExpiryCalculator: otter.ExpiryWriting[int64, domain.Professional](ttl),
		})
		c.svcCache = otter.Must(&otter.Options[int64, domain.Service]{
			MaximumSize:      maxSize,
			ExpiryCalculator: otter.ExpiryWriting[int64, domain.Service](ttl),
		})
	}

	return c
}

// GetProfessional получает мастера из кэша или репозитория
// Ошибки репозитория (в том числе "не найден") не кэшируются
func (c *Catalog) GetProfessional(ctx context.Context, id int64) (*domain.Professional, error) {
	if c.profCache != nil {
		if p, ok := c.profCache.GetIfPresent(id); ok {
			c.logger.Debug("cache hit: professional id=%d", id)
			return cloneProfessional(p), nil
		}
	}

	p, err := c.professionals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.profCache != nil {
		c.profCache.Set(id, *cloneProfessional(*p))
	}
	return p, nil
}

// GetService получает услугу из кэша или репозитория
func (c *Catalog) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	if c.svcCache != nil {
		if s, ok := c.svcCache.GetIfPresent(id); ok {
			c.logger.Debug("cache hit: service id=%d", id)
			return &s, nil
		}
	}

	s, err := c.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.svcCache != nil {
		c.svcCache.Set(id, *s)
	}
	return s, nil
}

// InvalidateProfessional удаляет мастера из кэша (после изменения)
func (c *Catalog) InvalidateProfessional(id int64) {
	if c.profCache != nil {
		c.profCache.Invalidate(id)
	}
}

// InvalidateService удаляет услугу из кэша (после изменения)
func (c *Catalog) InvalidateService(id int64) {
	if c.svcCache != nil {
		c.svcCache.Invalidate(id)
	}
}

func cloneProfessional(p domain.Professional) *domain.Professional {
	p.WorkDays = append([]string(nil), p.WorkDays...)
	return &p
}
