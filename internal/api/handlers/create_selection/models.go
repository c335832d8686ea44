package create_selection

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/service/selections/models"
)

// CreateSelectionRequest HTTP request model
type CreateSelectionRequest struct {
	FacilityID int64  `json:"facilityId"`
	Date       string `json:"date"` // "2025-10-15"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSelectionRequest) ToServiceRequest(userID int64) (*models.CreateSelectionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateSelectionRequest{
		UserID:     userID,
		FacilityID: r.FacilityID,
		Date:       date,
	}, nil
}
