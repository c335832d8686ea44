package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Client клиент для работы с Booking API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking API
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	return req, nil
}

// CreateBooking создает бронирование со статусом pending_payment.
// Ровно один вызов на одну отправку BookingRequest; повтор считается новой отправкой.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	url := fmt.Sprintf("%s/api/bookings", c.baseURL)

	httpReq, err := c.newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrBookingCreation, err)
	}
	defer resp.Body.Close()

	// Любой не-2xx ответ считается отказом в создании бронирования
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrBookingCreation, resp.StatusCode, string(body))
	}

	var created CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// FinalizeBooking переводит бронирование в терминальное оплаченное состояние
// (status=confirmed, payment_status=paid) после подтверждения платежа.
func (c *Client) FinalizeBooking(ctx context.Context, bookingID int64, status domain.BookingStatus, paymentStatus domain.BookingPaymentStatus) error {
	url := fmt.Sprintf("%s/api/bookings/%d", c.baseURL, bookingID)

	httpReq, err := c.newJSONRequest(ctx, http.MethodPatch, url, &FinalizeBookingRequest{
		Status:        string(status),
		PaymentStatus: string(paymentStatus),
	})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrFinalizeFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrBookingNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrFinalizeFailed, resp.StatusCode, string(body))
	}

	return nil
}

// GetBookedSlots строит индекс занятых слотов для сооружения на дату.
// Индекс собирается из активных бронирований; отмененные слоты не держат.
func (c *Client) GetBookedSlots(ctx context.Context, facilityID int64, date time.Time) (domain.BookedSlotIndex, error) {
	url := fmt.Sprintf("%s/api/bookings/search?facility_id=%d&date=%s",
		c.baseURL, facilityID, date.Format(domain.DateFormat))

	httpReq, err := c.newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var bookings []Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	index := make(domain.BookedSlotIndex)
	for i := range bookings {
		booking := &bookings[i]
		if !booking.IsActive() {
			continue
		}

		// Если API отдал явный список слотов, используем его,
		// иначе разворачиваем интервал start_time..end_time по часам.
		if len(booking.TimeSlots) > 0 {
			for _, label := range booking.TimeSlots {
				slot, err := types.NewTimeStringFromString(label)
				if err != nil {
					c.log.Warn("GetBookedSlots: skipping malformed slot label %q in booking id=%d", label, booking.ID)
					continue
				}
				index[slot] = true
			}
			continue
		}

		if err := expandInterval(index, booking); err != nil {
			c.log.Warn("GetBookedSlots: skipping booking id=%d: %v", booking.ID, err)
		}
	}

	return index, nil
}

// expandInterval помечает занятыми все часовые слоты [start, end).
func expandInterval(index domain.BookedSlotIndex, booking *Booking) error {
	start, err := types.NewTimeStringFromString(booking.StartTime)
	if err != nil {
		return fmt.Errorf("malformed start_time %q: %v", booking.StartTime, err)
	}
	end, err := types.NewTimeStringFromString(booking.EndTime)
	if err != nil {
		return fmt.Errorf("malformed end_time %q: %v", booking.EndTime, err)
	}

	for slot := start; slot.IsBefore(end); {
		index[slot] = true
		next, err := slot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return err
		}
		if !next.IsAfter(slot) {
			// Защита от перехода через полночь
			break
		}
		slot = next
	}
	return nil
}
