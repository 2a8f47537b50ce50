/*
vision.go - OCR fallback for scanned punch cards

PURPOSE:
  Some branches still photograph paper punch cards. This client sends the
  image to a vision extraction service and maps the response to the same
  PunchEvent sequence the text parser produces.

  All retry and fallback policy lives HERE, never in the engine: the
  engine's contract is a fully materialized event sequence.

RESILIENCE:
  - Ordered credential list: an auth failure (401/403) rotates to the next
    credential instead of burning retries on a dead key.
  - Exponential backoff between attempts, capped.
  - Unparsable records inside an otherwise good response degrade to
    warnings; only exhausting every attempt is an error.
*/
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// visionRecord is one extracted punch as returned by the service.
type visionRecord struct {
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type visionResponse struct {
	Records []visionRecord `json:"records"`
}

// VisionClient extracts punches from punch-card images.
type VisionClient struct {
	client      *resty.Client
	credentials []string
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	log         *zap.Logger
}

// NewVisionClient builds a client against baseURL with an ordered credential
// list. A nil logger disables logging.
func NewVisionClient(baseURL string, credentials []string, log *zap.Logger) *VisionClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &VisionClient{
		client:      resty.New().SetBaseURL(baseURL).SetTimeout(60 * time.Second),
		credentials: credentials,
		maxAttempts: 4,
		baseBackoff: 2 * time.Second,
		maxBackoff:  30 * time.Second,
		log:         log,
	}
}

// ExtractPunches sends one image and returns the extracted events plus
// per-record warnings. Fails only after every attempt is exhausted.
func (c *VisionClient) ExtractPunches(ctx context.Context, image []byte, filename string) ([]timesheet.PunchEvent, []string, error) {
	if len(c.credentials) == 0 {
		return nil, nil, fmt.Errorf("vision extraction: no credentials configured")
	}

	credIndex := 0
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := c.baseBackoff << (attempt - 1)
			if backoff > c.maxBackoff {
				backoff = c.maxBackoff
			}
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		var out visionResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetAuthToken(c.credentials[credIndex]).
			SetFileReader("image", filename, bytes.NewReader(image)).
			SetResult(&out).
			Post("/v1/extract")

		switch {
		case err != nil:
			lastErr = err
			c.log.Warn("extração por visão falhou",
				zap.Int("tentativa", attempt+1), zap.Error(err))

		case resp.StatusCode() == 401 || resp.StatusCode() == 403:
			lastErr = fmt.Errorf("vision extraction: credential %d rejected (%d)", credIndex+1, resp.StatusCode())
			c.log.Warn("credencial rejeitada, alternando",
				zap.Int("credencial", credIndex+1))
			credIndex = (credIndex + 1) % len(c.credentials)

		case resp.IsError():
			lastErr = fmt.Errorf("vision extraction: status %d", resp.StatusCode())

		default:
			events, warnings := mapVisionRecords(out.Records)
			return events, warnings, nil
		}
	}

	return nil, nil, fmt.Errorf("vision extraction exhausted %d attempts: %w", c.maxAttempts, lastErr)
}

// mapVisionRecords converts service records to punch events, degrading bad
// records to warnings.
func mapVisionRecords(records []visionRecord) ([]timesheet.PunchEvent, []string) {
	var (
		events   []timesheet.PunchEvent
		warnings []string
	)
	for i, rec := range records {
		date, err := timesheet.ParseDate(rec.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("registro OCR %d: data inválida %q", i+1, rec.Date))
			continue
		}
		clock, err := timesheet.ParseClock(rec.Time)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("registro OCR %d: horário inválido %q", i+1, rec.Time))
			continue
		}
		if rec.Employee == "" {
			warnings = append(warnings, fmt.Sprintf("registro OCR %d: sem nome de funcionário", i+1))
			continue
		}
		events = append(events, timesheet.PunchEvent{
			Employee: timesheet.EmployeeID(rec.Employee),
			Date:     date,
			Clock:    clock,
		})
	}
	return events, warnings
}
