package paygate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DummyGateway is a demo/test provider that keeps a journal of charges in
// memory. Amounts whose integer part ends in 13 are declined, which gives
// tests a deterministic failure lever without network access.
type DummyGateway struct {
	mu      sync.Mutex
	journal map[uuid.UUID]Outcome
}

func NewDummyGateway() *DummyGateway {
	return &DummyGateway{journal: make(map[uuid.UUID]Outcome)}
}

func (g *DummyGateway) Name() string {
	return "dummy"
}

func (g *DummyGateway) Charge(ctx context.Context, req ChargeRequest) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if out, ok := g.journal[req.IdempotencyKey]; ok {
		return out, nil
	}

	out := Outcome{
		ExternalID: fmt.Sprintf("ch_dummy_%s", strings.ReplaceAll(req.StatementID.String()[:8], "-", "")),
	}
	if strings.HasSuffix(strconv.FormatInt(req.Amount.IntPart(), 10), "13") {
		out = Outcome{Declined: true, Reason: "insufficient funds"}
	}

	g.journal[req.IdempotencyKey] = out
	return out, nil
}

func (g *DummyGateway) Lookup(ctx context.Context, idempotencyKey uuid.UUID) (Outcome, bool, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.journal[idempotencyKey]
	return out, ok, nil
}
