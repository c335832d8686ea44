package models

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// Request модели

// StartPaymentRequest запрос на запуск оплаты по транзакции
type StartPaymentRequest struct {
	UserID        int64
	TransactionID string
	Method        string // bank | mobileWallet
}

// Response модели

// BankInstructions реквизиты для ручного банковского перевода
type BankInstructions struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Reference     string `json:"reference"` // Назначение платежа: транзакция, сооружение, корт
	Amount        int64  `json:"amount"`
	QRPayload     string `json:"qrPayload"` // Payload для QR-кода перевода
}

// StartPaymentResponse ответ на запуск оплаты
type StartPaymentResponse struct {
	TransactionID    string            `json:"transactionId"`
	BookingID        int64             `json:"bookingId"`
	State            string            `json:"state"`
	Method           string            `json:"method"`
	Amount           int64             `json:"amount"`
	BankInstructions *BankInstructions `json:"bankInstructions,omitempty"`
	PayURL           *string           `json:"payUrl,omitempty"`
}

// SessionResponse ответ с состоянием платежной сессии
type SessionResponse struct {
	TransactionID   string    `json:"transactionId"`
	BookingID       int64     `json:"bookingId"`
	UserID          int64     `json:"userId"`
	Method          string    `json:"method"`
	State           string    `json:"state"`
	Amount          int64     `json:"amount"`
	FacilityID      int64     `json:"facilityId"`
	FacilityName    string    `json:"facilityName"`
	SportType       string    `json:"sportType"`
	CourtID         int64     `json:"courtId"`
	CourtName       string    `json:"courtName,omitempty"`
	Date            string    `json:"date"` // "2025-10-15"
	Slots           []string  `json:"slots"`
	PayURL          *string   `json:"payUrl,omitempty"`
	FailureReason   *string   `json:"failureReason,omitempty"`
	FinalizeWarning *string   `json:"finalizeWarning,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком платежных сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.PaymentSession) *SessionResponse {
	if s == nil {
		return nil
	}

	return &SessionResponse{
		TransactionID:   s.TransactionID,
		BookingID:       s.BookingID,
		UserID:          s.UserID,
		Method:          string(s.Method),
		State:           string(s.State),
		Amount:          s.Amount,
		FacilityID:      s.FacilityID,
		FacilityName:    s.FacilityName,
		SportType:       s.SportType,
		CourtID:         s.CourtID,
		CourtName:       s.CourtName,
		Date:            s.Date.Format(domain.DateFormat),
		Slots:           s.SlotLabels(),
		PayURL:          s.PayURL,
		FailureReason:   s.FailureReason,
		FinalizeWarning: s.FinalizeWarning,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.PaymentSession) *SessionListResponse {
	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}
	for _, s := range sessions {
		if dto := FromDomainSession(s); dto != nil {
			resp.Sessions = append(resp.Sessions, *dto)
		}
	}
	return resp
}
