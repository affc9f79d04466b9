// Package station — HTTP-клиент сервиса станций.
package station

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

const (
	namesPath      = "/api/v1/stationservice/stations/namelist"
	defaultTimeout = 5 * time.Second
)

// Client разрешает идентификаторы станций в имена через ts-station-service.
// Повторных попыток не делает: сбой сразу возвращается вызывающему.
type Client struct {
	http   *resty.Client
	logger *log.Entry
}

// NewClient создаёт клиента к baseURL; timeout<=0 заменяется значением по умолчанию.
func NewClient(baseURL string, timeout time.Duration, logger *log.Entry) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.WithField("component", "station-client")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

// Resolve возвращает имена станций в порядке ids.
func (c *Client) Resolve(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	var envelope domain.Response[[]string]
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(ids).
		SetResult(&envelope).
		Post(namesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStationResolve, err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.WithFields(log.Fields{
			"status_code": resp.StatusCode(),
			"ids":         len(ids),
		}).Warn("station service returned unexpected status")
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrStationResolve, resp.Status())
	}
	if !envelope.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrStationResolve, envelope.Msg)
	}
	if len(envelope.Data) != len(ids) {
		return nil, fmt.Errorf("%w: requested %d, got %d", domain.ErrStationNamesMismatch, len(ids), len(envelope.Data))
	}

	return envelope.Data, nil
}

var _ domain.StationResolver = (*Client)(nil)
