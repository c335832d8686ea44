package paymentservice

// Статусы платежа, которые отдает Payment API.
// Любое другое значение трактуется как продолжение ожидания.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// CreateWalletPaymentRequest тело запроса POST /api/payment/wallet/create
type CreateWalletPaymentRequest struct {
	Amount        int64  `json:"amount"`
	OrderInfo     string `json:"orderInfo"`
	TransactionID string `json:"transactionId"`
	BookingID     int64  `json:"bookingId"`
	FacilityID    int64  `json:"facilityId"`
	SportType     string `json:"sportType"`
	CourtID       int64  `json:"courtId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// CreateWalletPaymentResponse ответ на создание кошельковой сессии
type CreateWalletPaymentResponse struct {
	Success   bool   `json:"success"`
	PayURL    string `json:"payUrl"`
	QRCodeURL string `json:"qrCodeUrl"`
	OrderID   string `json:"orderId"`
	Message   string `json:"message"`
}

// StatusResponse ответ на запрос статуса платежа
type StatusResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	Amount        *int64 `json:"amount,omitempty"`
}
