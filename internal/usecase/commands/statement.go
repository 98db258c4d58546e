package commands

import (
	"context"
	"errors"
	"time"

	"booking-billing/internal/domain/billing"
	"booking-billing/internal/domain/statement"
	"booking-billing/internal/infra"
	"booking-billing/internal/infra/paygate"
	"booking-billing/internal/pkg/clock"
	"booking-billing/internal/pkg/config"
	"booking-billing/internal/pkg/errs"
	"booking-billing/internal/usecase/queries"
	"booking-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrStatementNotFound       = errs.New("statement not found")
	ErrStatementNotPayable     = errs.New("statement is not payable")
	ErrStatementNotProcessing  = errs.New("statement is not processing")
	ErrPaymentInProgress       = errs.New("payment already in progress")
	ErrPaymentDeclined         = errs.New("payment declined")
	ErrPaymentOutcomeUnknown   = errs.New("payment outcome unknown, reconcile later")
	ErrFxRateNotFound          = errs.New("fx rate not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type GenerateStatementResult struct {
	Statement *queries.StatementView
	Created   bool
}

type PayStatementResult struct {
	Statement *queries.StatementView
	Replayed  bool
}

type StatementCommands interface {
	// Generate creates the statement for the period containing ref, or
	// returns the existing one unchanged. A zero ref means "now".
	Generate(ctx context.Context, resourceID uuid.UUID, ref time.Time) (*GenerateStatementResult, error)
	Pay(ctx context.Context, statementID uuid.UUID) (*PayStatementResult, error)
	// Reconcile resolves a statement stuck in processing by asking the
	// provider what happened to the charge.
	Reconcile(ctx context.Context, statementID uuid.UUID) (*PayStatementResult, error)
}

type statementUseCaseImpl struct {
	uow              shared.UnitOfWork
	gateway          PaymentGateway
	statementQueries queries.StatementQueries
	clock            clock.Clock
	billingCfg       config.BillingConfig
	gatewayCfg       config.GatewayConfig
}

func NewStatementUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	statementQueries queries.StatementQueries,
	clk clock.Clock,
	billingCfg config.BillingConfig,
	gatewayCfg config.GatewayConfig,
) StatementCommands {
	return &statementUseCaseImpl{
		uow:              uow,
		gateway:          gateway,
		statementQueries: statementQueries,
		clock:            clk,
		billingCfg:       billingCfg,
		gatewayCfg:       gatewayCfg,
	}
}

func (s *statementUseCaseImpl) Generate(ctx context.Context, resourceID uuid.UUID, ref time.Time) (*GenerateStatementResult, error) {
	repos := s.uow.Repos()

	res, err := repos.Resources().FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrResourceNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if ref.IsZero() {
		ref = s.clock.Now()
	}
	period, err := res.CurrentPeriod(ref)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		statementID uuid.UUID
		created     bool
	)
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eligible, err := tx.Reservations().CountEligible(ctx, resourceID, period)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var fxRate *decimal.Decimal
		pricing := res.Pricing()
		if pricing.Model == billing.ModelUSDAuto {
			rate, err := tx.FxRates().Rate(ctx, pricing.Currency)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrFxRateNotFound)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			fxRate = &rate
		}

		quote, err := billing.NewQuote(eligible, pricing, fxRate)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		st, err := statement.NewStatement(resourceID, period, quote, s.billingCfg.GraceDays)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		ok, err := tx.Statements().Insert(ctx, st)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if ok {
			statementID = st.ID()
			created = true
			return nil
		}

		// Lost the race or the statement already existed; the stored row wins.
		existing, err := tx.Statements().FindByResourcePeriod(ctx, resourceID, period.Start())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		statementID = existing.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.statementQueries.GetByID(ctx, statementID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &GenerateStatementResult{Statement: view, Created: created}, nil
}

func (s *statementUseCaseImpl) Pay(ctx context.Context, statementID uuid.UUID) (*PayStatementResult, error) {
	repos := s.uow.Repos()

	st, err := repos.Statements().FindByID(ctx, statementID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStatementNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if st.Status() == statement.StatusPaid {
		view, err := s.statementQueries.GetByID(ctx, statementID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &PayStatementResult{Statement: view, Replayed: true}, nil
	}

	won, err := repos.Statements().BeginPayment(ctx, statementID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !won {
		// Someone else holds the statement, or it moved to a terminal state.
		current, err := repos.Statements().FindByID(ctx, statementID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if current.Status() == statement.StatusProcessing {
			return nil, ErrPaymentInProgress
		}
		return nil, ErrStatementNotPayable
	}

	outcome, err := s.charge(ctx, st)
	if err != nil {
		// Outcome unknown: the statement stays processing until reconciled.
		return nil, errs.Mark(err, ErrPaymentOutcomeUnknown)
	}

	return s.settle(ctx, st, outcome)
}

func (s *statementUseCaseImpl) Reconcile(ctx context.Context, statementID uuid.UUID) (*PayStatementResult, error) {
	repos := s.uow.Repos()

	st, err := repos.Statements().FindByID(ctx, statementID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStatementNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if st.Status() == statement.StatusPaid {
		view, err := s.statementQueries.GetByID(ctx, statementID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &PayStatementResult{Statement: view, Replayed: true}, nil
	}
	if st.Status() != statement.StatusProcessing {
		return nil, ErrStatementNotProcessing
	}

	outcome, found, err := s.gateway.Lookup(ctx, st.IdempotencyKey())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentOutcomeUnknown)
	}
	if !found {
		// The charge never reached the provider; the attempt is a clean miss.
		outcome = paygate.Outcome{Declined: true, Reason: "charge not found at provider"}
	}

	return s.settle(ctx, st, outcome)
}

// charge runs the provider call on a context that survives client
// disconnects: once a charge is in flight, abandoning it server-side would
// lose the outcome.
func (s *statementUseCaseImpl) charge(ctx context.Context, st *statement.Statement) (paygate.Outcome, error) {
	quote := st.Quote()
	chargeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.gatewayCfg.Timeout)
	defer cancel()

	return s.gateway.Charge(chargeCtx, paygate.ChargeRequest{
		StatementID:    st.ID(),
		IdempotencyKey: st.IdempotencyKey(),
		Amount:         quote.Amount,
		Currency:       quote.Currency,
	})
}

// settle records the attempt and applies the matching statement transition
// in one transaction. The transaction row is written before the result is
// surfaced to anyone.
func (s *statementUseCaseImpl) settle(ctx context.Context, st *statement.Statement, outcome paygate.Outcome) (*PayStatementResult, error) {
	quote := st.Quote()
	txOutcome := statement.OutcomeSuccess
	var reason *string
	if outcome.Declined {
		txOutcome = statement.OutcomeFailed
		if outcome.Reason != "" {
			r := outcome.Reason
			reason = &r
		}
	}

	attempt, err := statement.NewTransaction(
		st.ID(), outcome.ExternalID, quote.Amount, quote.Currency, txOutcome, reason,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Transactions().Record(ctx, attempt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if outcome.Declined {
			if _, err := tx.Statements().FailPayment(ctx, st.ID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return nil
		}
		if _, err := tx.Statements().CompletePayment(ctx, st.ID(), attempt.ID(), s.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Declined {
		reasonMsg := outcome.Reason
		if reasonMsg == "" {
			reasonMsg = "declined by provider"
		}
		return nil, errs.Mark(errors.New(reasonMsg), ErrPaymentDeclined)
	}

	view, err := s.statementQueries.GetByID(ctx, st.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &PayStatementResult{Statement: view}, nil
}
