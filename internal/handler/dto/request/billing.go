package request

import (
	"time"
)

// GenerateStatementRequest optionally pins the reference date that selects
// the billing period. Empty means "now".
type GenerateStatementRequest struct {
	Ref string `json:"ref" binding:"omitempty,datetime=2006-01-02"`
}

func (r *GenerateStatementRequest) RefTime() time.Time {
	if r.Ref == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, r.Ref)
	return t
}

type PeriodQuery struct {
	Ref string `form:"ref" binding:"omitempty,datetime=2006-01-02"`
}

func (q *PeriodQuery) RefTime() time.Time {
	if q.Ref == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, q.Ref)
	return t
}

type ListStatementsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending processing paid failed"`
}

func (q *ListStatementsQuery) StatusPtr() *string {
	if q.Status == "" {
		return nil
	}
	return &q.Status
}
