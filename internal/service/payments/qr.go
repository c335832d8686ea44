package payments

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// transferReference собирает строку назначения платежа для ручного
// перевода: транзакция, сооружение и корт, чтобы платеж можно было
// сопоставить вручную.
func transferReference(s *domain.PaymentSession) string {
	return fmt.Sprintf("%s %s %s", s.TransactionID, s.FacilityName, s.CourtName)
}

// BuildQRPayload собирает payload QR-кода банковского перевода.
// Формат фиксирован, его разбирает приложение банка:
//
//	txn|facility|sport_type|court_id|date|slots|total
//
// Слоты внутри поля перечислены через запятую.
func BuildQRPayload(s *domain.PaymentSession) string {
	return strings.Join([]string{
		s.TransactionID,
		s.FacilityName,
		s.SportType,
		strconv.FormatInt(s.CourtID, 10),
		s.Date.Format(domain.DateFormat),
		s.JoinSlots(),
		strconv.FormatInt(s.Amount, 10),
	}, "|")
}
