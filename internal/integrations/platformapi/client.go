package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/availability"
	"github.com/m04kA/ChaletBookingService/internal/domain"
)

const maxErrorBody = 512

// Client клиент API площадки
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента площадки
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetChalet получает снимок шале вместе с занятыми периодами
// Периоды с нераспознаваемыми датами пропускаются
func (c *Client) GetChalet(ctx context.Context, chaletID int64) (*domain.Chalet, error) {
	url := fmt.Sprintf("%s/chalets/%d", c.baseURL, chaletID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrChaletNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readErrorBody(resp.Body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorBody(resp.Body))
	}

	var body envelope[chaletPayload]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !body.Success {
		c.log.Warn("Platform reported failure for chalet_id=%d: %s", chaletID, body.Message)
		return nil, ErrChaletNotFound
	}
	if body.Data == nil {
		return nil, fmt.Errorf("%w: empty data for chalet_id=%d", ErrInvalidResponse, chaletID)
	}

	if err := validateChalet(body.Data); err != nil {
		c.log.Error("Platform returned invalid chalet_id=%d: %v", chaletID, err)
		return nil, err
	}

	chalet, skipped := toDomainChalet(body.Data)
	if chalet.ID == 0 {
		chalet.ID = chaletID
	}
	if skipped > 0 {
		c.log.Warn("Skipped %d malformed reserved periods for chalet_id=%d", skipped, chaletID)
	}

	return chalet, nil
}

// CreateReservation передает бронирование площадке и возвращает внешний id
func (c *Client) CreateReservation(ctx context.Context, in CreateReservationRequest) (*CreateReservationResult, error) {
	url := c.baseURL + "/reservations"

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrChaletNotFound
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrReservationRejected, readErrorBody(resp.Body))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readErrorBody(resp.Body))
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorBody(resp.Body))
	}

	var body envelope[CreateReservationResult]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s", ErrReservationRejected, body.Message)
	}
	if body.Data == nil || body.Data.ID == "" {
		return nil, fmt.Errorf("%w: reservation id is missing", ErrInvalidResponse)
	}

	c.log.Info("Platform accepted reservation for chalet_id=%d, external_id=%s", in.ChaletID, body.Data.ID)
	return body.Data, nil
}

// validateChalet цена не может быть отрицательной, вместимость не меньше одного гостя
func validateChalet(p *chaletPayload) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price %d", ErrInvalidResponse, p.Price)
	}
	if p.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1, got %d", ErrInvalidResponse, p.Guests)
	}
	return nil
}

func toDomainChalet(p *chaletPayload) (*domain.Chalet, int) {
	raw := make([]availability.RawPeriod, 0, len(p.ReservedPeriods))
	for _, rp := range p.ReservedPeriods {
		raw = append(raw, availability.RawPeriod{CheckIn: rp.CheckIn, CheckOut: rp.CheckOut})
	}
	periods, skipped := availability.ParsePeriods(raw)

	return &domain.Chalet{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		MinNights:       p.MinNights,
		Guests:          p.Guests,
		ReservedPeriods: periods,
	}, skipped
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return string(body)
}
