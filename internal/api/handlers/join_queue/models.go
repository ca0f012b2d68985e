package join_queue

import (
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

// JoinQueueRequest HTTP request model
type JoinQueueRequest struct {
	ClientName               string  `json:"clientName"`
	ServiceID                *string `json:"serviceId,omitempty"`
	StaffID                  *string `json:"staffId,omitempty"`
	EstimatedDurationMinutes *int    `json:"estimatedDurationMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *JoinQueueRequest) ToServiceRequest() *models.JoinRequest {
	duration := 0
	if r.EstimatedDurationMinutes != nil {
		duration = *r.EstimatedDurationMinutes
	}

	return &models.JoinRequest{
		ClientName:               r.ClientName,
		ServiceID:                r.ServiceID,
		StaffID:                  r.StaffID,
		EstimatedDurationMinutes: duration,
	}
}
