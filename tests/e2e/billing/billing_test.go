//go:build e2e

package billing

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"booking-billing/internal/handler/dto/response"
	"booking-billing/internal/handler/middleware"
	"booking-billing/internal/infra/repository"
	"booking-billing/tests/common/authtest"
	"booking-billing/tests/common/dbtest"
	"booking-billing/tests/common/httptest"
	"booking-billing/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BillingFlowSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestBillingFlowSuite(t *testing.T) {
	suite.Run(t, new(BillingFlowSuite))
}

func (s *BillingFlowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BillingFlowSuite) billingToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), middleware.RoleBilling)
}

func (s *BillingFlowSuite) adminToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), middleware.RoleAdmin)
}

func (s *BillingFlowSuite) viewerToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), middleware.RoleViewer)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// generateStatement creates the statement for the period containing ref and
// returns the decoded response.
func (s *BillingFlowSuite) generateStatement(resourceID uuid.UUID, ref string, expectedStatus int) response.StatementResponse {
	body := map[string]string{}
	if ref != "" {
		body["ref"] = ref
	}
	w := httptest.PerformRequest(s.T(), s.Router,
		http.MethodPost, fmt.Sprintf("/api/resources/%s/statements", resourceID), body, s.billingToken())

	var resp response.StatementResponse
	httptest.AssertSuccessResponse(s.T(), w, expectedStatus, &resp)
	return resp
}

func (s *BillingFlowSuite) seedReservationWeek(resourceID uuid.UUID) {
	dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "confirmed")
	dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 11), "10:00-11:00", "confirmed")
	dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 12), "09:00-10:00", "pending")
}

func (s *BillingFlowSuite) TestStatementGeneration() {
	s.Run("generates a statement for the requested period", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)

		resp := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		require.Equal(s.T(), resourceID, resp.ResourceID)
		require.Equal(s.T(), "2025-03-01", resp.PeriodStart)
		require.Equal(s.T(), "2025-03-31", resp.PeriodEnd)
		require.Equal(s.T(), 3, resp.BillableCount)
		require.Equal(s.T(), "4500", resp.Amount)
		require.Equal(s.T(), "JPY", resp.Currency)
		require.Equal(s.T(), "2025-04-05", resp.DueDate)
		require.Equal(s.T(), "pending", resp.Status)
		require.Nil(s.T(), resp.FxRate)
	})

	s.Run("replays the existing statement for the same period", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)

		first := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		// A later reservation must not change the already issued statement.
		dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 20), "14:00-15:00", "confirmed")

		second := s.generateStatement(resourceID, "2025-03-20", http.StatusOK)
		require.Equal(s.T(), first.ID, second.ID)
		require.Equal(s.T(), first.Amount, second.Amount)
	})

	s.Run("excludes cancelled and out-of-period reservations", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "confirmed")
		dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "12:00-13:00", "cancelled")
		dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 4, 2), "10:00-11:00", "confirmed")

		resp := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		require.Equal(s.T(), 1, resp.BillableCount)
		require.Equal(s.T(), "1500", resp.Amount)
	})

	s.Run("caps the billable count at the monthly limit", func() {
		row := dbtest.DefaultResourceRow()
		row.MonthlyLimit = 2
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, row)
		s.seedReservationWeek(resourceID)

		resp := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		require.Equal(s.T(), 2, resp.BillableCount)
		require.Equal(s.T(), "3000", resp.Amount)
	})

	s.Run("converts usd_auto pricing with the stored fx rate", func() {
		row := dbtest.DefaultResourceRow()
		row.Model = "usd_auto"
		row.Rate = decimal.NewFromInt(2)
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, row)
		s.seedReservationWeek(resourceID)

		// JPY rate 150.0 comes from the seeded reference data.
		resp := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		require.Equal(s.T(), 3, resp.BillableCount)
		require.Equal(s.T(), "900", resp.Amount)
		require.NotNil(s.T(), resp.FxRate)
		require.Equal(s.T(), "150", *resp.FxRate)

		// The rate is frozen at generation time; a later fx change must not
		// touch the statement.
		dbtest.SetFxRate(s.T(), s.DB, "JPY", decimal.NewFromInt(600))

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s", resp.ID), nil, s.viewerToken())
		var reread response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &reread)
		require.Equal(s.T(), "900", reread.Amount)
		require.Equal(s.T(), "150", *reread.FxRate)
	})

	s.Run("fails with 422 when the fx rate is missing", func() {
		row := dbtest.DefaultResourceRow()
		row.Model = "usd_auto"
		row.Currency = "GBP"
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, row)
		s.seedReservationWeek(resourceID)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/statements", resourceID),
			map[string]string{"ref": "2025-03-15"}, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "No fx rate")
	})

	s.Run("fails with 404 for an unknown resource", func() {
		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/statements", uuid.New()),
			map[string]string{"ref": "2025-03-15"}, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Resource not found")
	})
}

func (s *BillingFlowSuite) TestBillableSummaryAndConflicts() {
	s.Run("reports counts, projection and conflicts for the period", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		a := dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "confirmed")
		b := dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "pending")
		c := dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 11), "10:00-11:00", "confirmed")
		d := dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "cancelled")

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/billable-summary?ref=2025-03-15", resourceID),
			nil, s.viewerToken())

		var summary response.BillableSummaryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)

		require.Equal(s.T(), "Studio A", summary.ResourceName)
		require.Equal(s.T(), "2025-03-01", summary.PeriodStart)
		require.Equal(s.T(), "2025-03-31", summary.PeriodEnd)
		require.Equal(s.T(), 3, summary.EligibleCount)
		require.Equal(s.T(), 3, summary.BillableCount)
		require.Equal(s.T(), 100, summary.Limit)
		require.InDelta(s.T(), 3.0, summary.PercentOfLimit, 0.001)
		require.Equal(s.T(), "4500", summary.ProjectedAmount)
		require.Equal(s.T(), 2, summary.ConflictCount)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/conflicts?ref=2025-03-15", resourceID),
			nil, s.viewerToken())

		var conflicts []*response.ConflictResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &conflicts)
		require.Len(s.T(), conflicts, 4)

		flagged := make(map[uuid.UUID]bool, len(conflicts))
		for _, cf := range conflicts {
			flagged[cf.ID] = cf.HasConflict
		}
		require.True(s.T(), flagged[a])
		require.True(s.T(), flagged[b])
		require.False(s.T(), flagged[c])
		require.False(s.T(), flagged[d], "cancelled reservations never conflict")
	})

	s.Run("rejects a malformed ref", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/billable-summary?ref=march", resourceID),
			nil, s.viewerToken())
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *BillingFlowSuite) TestPaymentFlow() {
	s.Run("pays a pending statement through the dummy gateway", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())

		var paid response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		require.Equal(s.T(), "paid", paid.Status)
		require.NotNil(s.T(), paid.PaidAt)
		require.NotNil(s.T(), paid.TransactionID)

		// The recorded attempt carries the provider charge reference.
		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s/transactions", st.ID), nil, s.viewerToken())

		var txns []*response.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &txns)
		require.Len(s.T(), txns, 1)
		require.Equal(s.T(), "success", txns[0].Outcome)
		require.Contains(s.T(), txns[0].ExternalID, "ch_dummy_")
		require.Equal(s.T(), st.Amount, txns[0].Amount)
	})

	s.Run("replayed payment returns the paid statement unchanged", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		var first response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		var second response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)

		require.Equal(s.T(), first.TransactionID, second.TransactionID)
		require.NotNil(s.T(), first.PaidAt)
		require.NotNil(s.T(), second.PaidAt)
		require.Equal(s.T(), first.PaidAt.Unix(), second.PaidAt.Unix())

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s/transactions", st.ID), nil, s.viewerToken())
		var txns []*response.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &txns)
		require.Len(s.T(), txns, 1, "replay must not charge twice")
	})

	s.Run("declined charge leaves the statement failed and records the attempt", func() {
		// The dummy gateway declines amounts whose integer part ends in 13.
		row := dbtest.DefaultResourceRow()
		row.Rate = decimal.NewFromInt(13)
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, row)
		dbtest.CreateTestReservation(s.T(), s.DB, resourceID, date(2025, 3, 10), "10:00-11:00", "confirmed")
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		require.Equal(s.T(), "13", st.Amount)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusPaymentRequired, "Payment declined")

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s", st.ID), nil, s.viewerToken())
		var view response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		require.Equal(s.T(), "failed", view.Status)
		require.Nil(s.T(), view.PaidAt)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s/transactions", st.ID), nil, s.viewerToken())
		var txns []*response.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &txns)
		require.Len(s.T(), txns, 1)
		require.Equal(s.T(), "failed", txns[0].Outcome)
		require.NotNil(s.T(), txns[0].Reason)
		require.Equal(s.T(), "insufficient funds", *txns[0].Reason)
	})

	s.Run("concurrent begin-payment calls elect exactly one winner", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		repo := repository.NewStatementRepository(s.DB)

		const racers = 8
		results := make(chan bool, racers)
		failures := make(chan error, racers)
		var wg sync.WaitGroup
		for range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				won, err := repo.BeginPayment(context.Background(), st.ID)
				results <- won
				failures <- err
			}()
		}
		wg.Wait()
		close(results)
		close(failures)

		for err := range failures {
			require.NoError(s.T(), err)
		}
		winners := 0
		for won := range results {
			if won {
				winners++
			}
		}
		require.Equal(s.T(), 1, winners, "the status CAS admits exactly one attempt")

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM statements WHERE id = $1`, st.ID).Scan(&status)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "processing", status)
	})

	s.Run("a storm of concurrent pay requests charges at most once", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		token := s.billingToken()

		const racers = 6
		codes := make([]int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router,
					http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		// Losers of the race surface 409; callers landing after settlement
		// see the idempotent replay. Nothing else is acceptable.
		paidResponses := 0
		for _, code := range codes {
			require.Contains(s.T(), []int{http.StatusOK, http.StatusConflict}, code)
			if code == http.StatusOK {
				paidResponses++
			}
		}
		require.GreaterOrEqual(s.T(), paidResponses, 1)

		var successes int
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT COUNT(*) FROM payment_transactions WHERE statement_id = $1 AND outcome = 'success'`,
			st.ID).Scan(&successes)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, successes, "the gateway is charged exactly once")

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s", st.ID), nil, s.viewerToken())
		var view response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		require.Equal(s.T(), "paid", view.Status)
	})

	s.Run("a processing statement rejects a second payment attempt", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		// Simulate a charge already in flight: the status lock alone must
		// keep a second attempt away from the gateway.
		_, err := s.DB.Exec(s.T().Context(),
			`UPDATE statements SET status = 'processing' WHERE id = $1`, st.ID)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Payment already in progress")

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s/transactions", st.ID), nil, s.viewerToken())
		var txns []*response.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &txns)
		require.Empty(s.T(), txns, "the loser never reaches the gateway")
	})

	s.Run("reconcile settles a statement stuck in processing", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		// A stuck attempt that never reached the provider reconciles to a
		// clean failure, which makes the statement payable again.
		_, err := s.DB.Exec(s.T().Context(),
			`UPDATE statements SET status = 'processing' WHERE id = $1`, st.ID)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/reconcile", st.ID), nil, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusPaymentRequired, "Payment declined")

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		var paid response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		require.Equal(s.T(), "paid", paid.Status)
	})

	s.Run("reconcile without an in-flight payment is rejected", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/reconcile", st.ID), nil, s.billingToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "no payment in flight")
	})

	s.Run("lists statements by resource with a status filter", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		march := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		april := s.generateStatement(resourceID, "2025-04-15", http.StatusCreated)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", march.ID), nil, s.billingToken())
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/statements", resourceID), nil, s.viewerToken())
		var all []*response.StatementListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &all)
		require.Len(s.T(), all, 2)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/statements?status=pending", resourceID), nil, s.viewerToken())
		var pending []*response.StatementListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &pending)
		require.Len(s.T(), pending, 1)
		require.Equal(s.T(), april.ID, pending[0].ID)
	})
}

func (s *BillingFlowSuite) TestEnforcementSweep() {
	s.Run("enforces an overdue statement and cascades", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		upcoming := dbtest.CreateTestReservation(s.T(), s.DB, resourceID,
			time.Now().UTC().AddDate(0, 0, 3).Truncate(24*time.Hour), "10:00-11:00", "confirmed")

		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		dbtest.BackdateStatement(s.T(), s.DB, st.ID, time.Now().AddDate(0, 0, -1))

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.adminToken())
		var result response.SweepResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &result)

		require.Equal(s.T(), 1, result.Scanned)
		require.Equal(s.T(), 1, result.Enforced)
		require.Equal(s.T(), 0, result.Failed)
		require.Equal(s.T(), int64(1), result.CancelledReservations)
		require.Equal(s.T(), 1, result.DeactivatedResources)

		var active bool
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT active FROM resources WHERE id = $1`, resourceID).Scan(&active)
		require.NoError(s.T(), err)
		require.False(s.T(), active)

		var status string
		err = s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM reservations WHERE id = $1`, upcoming).Scan(&status)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "cancelled", status)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/statements/%s", st.ID), nil, s.viewerToken())
		var view response.StatementResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		require.NotNil(s.T(), view.EnforcedAt)
		require.Equal(s.T(), "pending", view.Status, "the debt survives enforcement")
	})

	s.Run("a second sweep finds nothing to do", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		dbtest.BackdateStatement(s.T(), s.DB, st.ID, time.Now().AddDate(0, 0, -1))

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.adminToken())
		var first response.SweepResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		require.Equal(s.T(), 1, first.Enforced)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.adminToken())
		var second response.SweepResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		require.Equal(s.T(), 0, second.Scanned)
		require.Equal(s.T(), 0, second.Enforced)
	})

	s.Run("paid statements are never swept", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		require.Equal(s.T(), http.StatusOK, w.Code)

		dbtest.BackdateStatement(s.T(), s.DB, st.ID, time.Now().AddDate(0, 0, -1))

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.adminToken())
		var result response.SweepResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &result)
		require.Equal(s.T(), 0, result.Scanned)
	})
}

func (s *BillingFlowSuite) TestReactivation() {
	// enforceResource drives a resource through the full enforcement cascade
	// and returns the enforced statement.
	enforce := func() (uuid.UUID, response.StatementResponse) {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)
		st := s.generateStatement(resourceID, "2025-03-15", http.StatusCreated)
		dbtest.BackdateStatement(s.T(), s.DB, st.ID, time.Now().AddDate(0, 0, -1))

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.adminToken())
		require.Equal(s.T(), http.StatusOK, w.Code)
		return resourceID, st
	}

	s.Run("reactivation is blocked while the enforced statement is unpaid", func() {
		resourceID, _ := enforce()

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, "/api/billing/reactivation-eligible", nil, s.viewerToken())
		var candidates []*response.ReactivationCandidateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &candidates)
		require.Empty(s.T(), candidates)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/activate", resourceID), nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "unpaid enforced statements")
	})

	s.Run("settling the debt makes the resource eligible again", func() {
		resourceID, st := enforce()

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/statements/%s/pay", st.ID), nil, s.billingToken())
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, "/api/billing/reactivation-eligible", nil, s.viewerToken())
		var candidates []*response.ReactivationCandidateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &candidates)
		require.Len(s.T(), candidates, 1)
		require.Equal(s.T(), resourceID, candidates[0].ResourceID)
		require.Equal(s.T(), 1, candidates[0].EnforcedCount)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/activate", resourceID), nil, s.adminToken())
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		var active bool
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT active FROM resources WHERE id = $1`, resourceID).Scan(&active)
		require.NoError(s.T(), err)
		require.True(s.T(), active)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/activate", resourceID), nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already active")
	})
}

func (s *BillingFlowSuite) TestAuthorization() {
	s.Run("requests without a token are rejected", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/billable-summary", resourceID), nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
		require.Contains(s.T(), w.Body.String(), "Access token required")
	})

	s.Run("expired tokens are rejected", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		expired := s.jwt.CreateExpiredToken(s.T(), uuid.New(), middleware.RoleAdmin)

		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodGet, fmt.Sprintf("/api/resources/%s/billable-summary", resourceID), nil, expired)
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
		require.Contains(s.T(), w.Body.String(), "Invalid or expired token")
	})

	s.Run("role hierarchy gates the mutating routes", func() {
		resourceID := dbtest.CreateTestResource(s.T(), s.DB, dbtest.DefaultResourceRow())
		s.seedReservationWeek(resourceID)

		// Viewers read, but cannot generate or sweep.
		w := httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/statements", resourceID),
			map[string]string{"ref": "2025-03-15"}, s.viewerToken())
		require.Equal(s.T(), http.StatusForbidden, w.Code)
		require.Contains(s.T(), w.Body.String(), "Insufficient permissions")

		// Billing operators cannot run admin routes.
		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, "/api/billing/sweep", nil, s.billingToken())
		require.Equal(s.T(), http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/activate", resourceID), nil, s.billingToken())
		require.Equal(s.T(), http.StatusForbidden, w.Code)

		// Admins pass every gate.
		w = httptest.PerformRequest(s.T(), s.Router,
			http.MethodPost, fmt.Sprintf("/api/resources/%s/statements", resourceID),
			map[string]string{"ref": "2025-03-15"}, s.adminToken())
		require.Equal(s.T(), http.StatusCreated, w.Code)
	})
}
