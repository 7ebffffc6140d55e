package models

import "github.com/shopspring/decimal"

// ReportType distinguishes a full end-of-day reconciliation from an ad-hoc
// spot check. Only reconciliation reports take part in consolidation.
type ReportType string

const (
	ReportReconciliation ReportType = "reconciliation"
	ReportSpotCheck      ReportType = "spot-check"
)

// POSMachine is one point-of-sale terminal total inside a daily report.
type POSMachine struct {
	ID         string          `json:"id"`
	TID        string          `json:"tid"`        // terminal id printed on the device
	TripleCode string          `json:"tripleCode,omitempty"`
	Type       string          `json:"type"`       // "standard", "hala" or "manual"
	Amount     decimal.Decimal `json:"amount"`
}

// DailyReport is one submission of cash and machine totals for one shop on
// one date by one user. Several reports may exist for the same shop+date
// (collector and shop side each submit); consolidation picks the winner.
// Reports are never removed from the row store: deletion and admin edits
// re-save the same rep_<id> row.
type DailyReport struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Username      string          `json:"username"` // submitter, classifies collector vs shop/partner
	ShopID        string          `json:"shopId"`
	ShopName      string          `json:"shopName"`
	Location      string          `json:"location"`
	Category      string          `json:"category,omitempty"`
	PartnerName   string          `json:"partnerName,omitempty"`
	IsDirect      bool            `json:"isDirect"` // directly operated shop, not a partner's
	Date          string          `json:"date"`     // calendar day, YYYY-MM-DD
	ReportType    ReportType      `json:"reportType"`
	POSMachines   []POSMachine    `json:"posMachines"`
	CashReceived  decimal.Decimal `json:"cashReceived"`
	CashRemaining decimal.Decimal `json:"cashRemaining"`
	Commission    decimal.Decimal `json:"commission"`
	Notes         string          `json:"notes,omitempty"`
	Timestamp     int64           `json:"timestamp"` // submission instant, unix millis
	IsReview      bool            `json:"isReview,omitempty"`
	IsDeleted     bool            `json:"isDeleted,omitempty"` // tombstone, row is never physically removed
}

// MachineTotal sums the amounts of all POS machines in the report.
func (r DailyReport) MachineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.POSMachines {
		total = total.Add(m.Amount)
	}
	return total
}

// NetCash is cashReceived + cashRemaining - commission.
func (r DailyReport) NetCash() decimal.Decimal {
	return r.CashReceived.Add(r.CashRemaining).Sub(r.Commission)
}

// GrandTotal is machine total plus net cash. Every aggregate view sums this
// same quantity; the formula must not diverge between groupings.
func (r DailyReport) GrandTotal() decimal.Decimal {
	return r.MachineTotal().Add(r.NetCash())
}

// Denominations holds per-denomination note and coin counts of a cash count.
type Denominations struct {
	Val500  int `json:"val500"`
	Val200  int `json:"val200"`
	Val100  int `json:"val100"`
	Val50   int `json:"val50"`
	Val20   int `json:"val20"`
	Val10   int `json:"val10"`
	Val5    int `json:"val5"`
	Val2    int `json:"val2"`
	Val1    int `json:"val1"`
	ValHalf int `json:"val0_5"`
	ValQtr  int `json:"val0_25"`
}

// CashReport is a physical cash count submitted by a collector. Cash reports
// are listed alongside daily reports but never consolidated.
type CashReport struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Username      string          `json:"username"`
	Date          string          `json:"date"`
	Denominations Denominations   `json:"denominations"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Timestamp     int64           `json:"timestamp"`
}
