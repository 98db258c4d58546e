package response

import (
	"time"

	"booking-billing/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatementResponse struct {
	ID            uuid.UUID  `json:"id"`
	ResourceID    uuid.UUID  `json:"resourceId"`
	ResourceName  string     `json:"resourceName"`
	PeriodStart   string     `json:"periodStart"`
	PeriodEnd     string     `json:"periodEnd"`
	BillableCount int        `json:"billableCount"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	FxRate        *string    `json:"fxRate,omitempty"`
	DueDate       string     `json:"dueDate"`
	Status        string     `json:"status"`
	Overdue       bool       `json:"overdue"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	TransactionID *uuid.UUID `json:"transactionId,omitempty"`
	EnforcedAt    *time.Time `json:"enforcedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type StatementListResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resourceId"`
	PeriodStart   string    `json:"periodStart"`
	PeriodEnd     string    `json:"periodEnd"`
	BillableCount int       `json:"billableCount"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	DueDate       string    `json:"dueDate"`
	Status        string    `json:"status"`
	Overdue       bool      `json:"overdue"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TransactionResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId,omitempty"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Outcome    string    `json:"outcome"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromStatementView(v *queries.StatementView) *StatementResponse {
	resp := &StatementResponse{
		ID:            v.ID,
		ResourceID:    v.ResourceID,
		ResourceName:  v.ResourceName,
		PeriodStart:   v.PeriodStart.Format(time.DateOnly),
		PeriodEnd:     v.PeriodEnd.Format(time.DateOnly),
		BillableCount: v.BillableCount,
		Amount:        v.Amount.String(),
		Currency:      v.Currency,
		DueDate:       v.DueDate.Format(time.DateOnly),
		Status:        v.Status,
		Overdue:       v.Overdue,
		PaidAt:        v.PaidAt,
		TransactionID: v.TransactionID,
		EnforcedAt:    v.EnforcedAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.FxRate != nil {
		fx := v.FxRate.String()
		resp.FxRate = &fx
	}
	return resp
}

func FromStatementListItem(v *queries.StatementListItem) *StatementListResponse {
	return &StatementListResponse{
		ID:            v.ID,
		ResourceID:    v.ResourceID,
		PeriodStart:   v.PeriodStart.Format(time.DateOnly),
		PeriodEnd:     v.PeriodEnd.Format(time.DateOnly),
		BillableCount: v.BillableCount,
		Amount:        v.Amount.String(),
		Currency:      v.Currency,
		DueDate:       v.DueDate.Format(time.DateOnly),
		Status:        v.Status,
		Overdue:       v.Overdue,
		CreatedAt:     v.CreatedAt,
	}
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:         v.ID,
		ExternalID: v.ExternalID,
		Amount:     v.Amount.String(),
		Currency:   v.Currency,
		Outcome:    v.Outcome,
		Reason:     v.Reason,
		CreatedAt:  v.CreatedAt,
	}
}
