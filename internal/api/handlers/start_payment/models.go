package start_payment

// StartPaymentRequest HTTP request model
type StartPaymentRequest struct {
	TransactionID string `json:"transactionId"`
	Method        string `json:"method"` // bank | mobileWallet
}
