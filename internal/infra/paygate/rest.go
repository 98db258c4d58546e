package paygate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"booking-billing/internal/pkg/config"
	"booking-billing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGatewayUnavailable = errs.New("payment gateway request failed")
	// ErrChargeTimeout means the outcome is unknown: the charge may or may
	// not have landed. Callers leave the statement in processing and
	// reconcile later.
	ErrChargeTimeout = errs.New("charge outcome unknown: gateway timed out")
)

// RESTGateway talks to an external charging API over JSON. The HTTP client
// timeout bounds every attempt; when it fires the charge outcome is unknown
// and the caller must reconcile, never retry blindly.
type RESTGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTGateway(cfg config.GatewayConfig) *RESTGateway {
	return &RESTGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *RESTGateway) Name() string {
	return "rest"
}

type chargePayload struct {
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Reference      string `json:"reference"`
	IdempotencyKey string `json:"idempotency_key"`
}

type chargeResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Declined bool   `json:"declined"`
	Reason   string `json:"reason"`
}

func (g *RESTGateway) Charge(ctx context.Context, req ChargeRequest) (Outcome, error) {
	payload, err := json.Marshal(chargePayload{
		Amount:         req.Amount.String(),
		Currency:       req.Currency,
		Reference:      req.StatementID.String(),
		IdempotencyKey: req.IdempotencyKey.String(),
	})
	if err != nil {
		return Outcome{}, errs.Wrap(err, "failed to encode charge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(payload))
	if err != nil {
		return Outcome{}, errs.Wrap(err, "failed to build charge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey.String())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return Outcome{}, errs.Mark(err, ErrChargeTimeout)
		}
		return Outcome{}, errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Outcome{}, errs.Mark(fmt.Errorf("gateway returned %d", resp.StatusCode), ErrGatewayUnavailable)
	}

	var result chargeResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return Outcome{}, errs.Wrap(err, "failed to decode charge response")
	}

	return Outcome{
		ExternalID: result.ID,
		Declined:   result.Declined || resp.StatusCode == http.StatusPaymentRequired,
		Reason:     result.Reason,
	}, nil
}

func (g *RESTGateway) Lookup(ctx context.Context, idempotencyKey uuid.UUID) (Outcome, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/charges/"+idempotencyKey.String(), nil)
	if err != nil {
		return Outcome{}, false, errs.Wrap(err, "failed to build lookup request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Outcome{}, false, errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Outcome{}, false, nil
	}
	if resp.StatusCode >= 400 {
		return Outcome{}, false, errs.Mark(fmt.Errorf("gateway returned %d", resp.StatusCode), ErrGatewayUnavailable)
	}

	var result chargeResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return Outcome{}, false, errs.Wrap(err, "failed to decode lookup response")
	}
	return Outcome{
		ExternalID: result.ID,
		Declined:   result.Declined,
		Reason:     result.Reason,
	}, true, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
