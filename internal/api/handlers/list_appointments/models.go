package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтр из query параметров
// date задает один день; startDate/endDate - период
func ToServiceRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if v := query.Get("professionalId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid professionalId %q", v)
		}
		req.ProfessionalID = &id
	}

	if v := query.Get("date"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", v)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if v := query.Get("startDate"); v != "" {
			start, err := domain.ParseDate(v)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate %q", v)
			}
			req.StartDate = &start
		}
		if v := query.Get("endDate"); v != "" {
			end, err := domain.ParseDate(v)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate %q", v)
			}
			req.EndDate = &end
		}
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled %q", v)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
