package queue

import (
	"fmt"
	"strings"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

func validateJoinRequest(req *models.JoinRequest) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	// 0 означает неизвестную длительность, её заменит значение по умолчанию
	if req.EstimatedDurationMinutes < 0 || req.EstimatedDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: estimatedDurationMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.ServiceID != nil && strings.TrimSpace(*req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId must not be empty", ErrInvalidInput)
	}
	if req.StaffID != nil && strings.TrimSpace(*req.StaffID) == "" {
		return fmt.Errorf("%w: staffId must not be empty", ErrInvalidInput)
	}
	return nil
}
