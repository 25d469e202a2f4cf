// Package reportdelivery manages delivery layer of financial reports.
package reportdelivery

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Report names accepted by the export endpoint.
const (
	TrialBalanceReport    = "trial-balance"
	IncomeStatementReport = "income-statement"
	BalanceSheetReport    = "balance-sheet"
)

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	GeneralLedger(ctx context.Context) ([]domain.GeneralLedgerRow, error)
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
	IncomeStatement(ctx context.Context) ([]domain.BalanceRow, error)
	BalanceSheet(ctx context.Context) ([]domain.BalanceRow, error)
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns report handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type dataRows struct {
	Rows any `json:"rows"`
}
type response struct {
	Data dataRows `json:"data,omitempty"`
}

// GeneralLedger handles http request to get the general ledger.
func (h *Handler) GeneralLedger(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rows, err := h.service.GeneralLedger(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: dataRows{rows}})
}

// TrialBalance handles http request to get the trial balance.
func (h *Handler) TrialBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rows, err := h.service.TrialBalance(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: dataRows{rows}})
}

// IncomeStatement handles http request to get the income statement.
func (h *Handler) IncomeStatement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rows, err := h.service.IncomeStatement(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: dataRows{rows}})
}

// BalanceSheet handles http request to get the balance sheet.
func (h *Handler) BalanceSheet(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rows, err := h.service.BalanceSheet(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: dataRows{rows}})
}

type exportRequest struct {
	Report string `uri:"report" binding:"required"`
}

// Export handles http request to download a report as CSV.
func (h *Handler) Export(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req exportRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var (
		records [][]string
		err     error
	)

	switch req.Report {
	case TrialBalanceReport:
		var rows []domain.TrialBalanceRow
		if rows, err = h.service.TrialBalance(ctx); err == nil {
			records = trialBalanceRecords(rows)
		}
	case IncomeStatementReport:
		var rows []domain.BalanceRow
		if rows, err = h.service.IncomeStatement(ctx); err == nil {
			records = balanceRecords(rows)
		}
	case BalanceSheetReport:
		var rows []domain.BalanceRow
		if rows, err = h.service.BalanceSheet(ctx); err == nil {
			records = balanceRecords(rows)
		}
	default:
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrUnknownReport))
		return
	}

	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Header("Content-Type", "text/csv")
	gctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", req.Report))

	w := csv.NewWriter(gctx.Writer)
	if err := w.WriteAll(records); err != nil {
		l.Error().Err(err).Send()
	}
}

func trialBalanceRecords(rows []domain.TrialBalanceRow) [][]string {
	records := [][]string{{"account_id", "account_name", "account_type", "total_debit", "total_credit"}}

	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprint(r.AccountID),
			r.AccountName,
			string(r.AccountType),
			r.TotalDebit.String(),
			r.TotalCredit.String(),
		})
	}

	return records
}

func balanceRecords(rows []domain.BalanceRow) [][]string {
	records := [][]string{{"account_id", "account_name", "account_type", "balance"}}

	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprint(r.AccountID),
			r.AccountName,
			string(r.AccountType),
			r.Balance.String(),
		})
	}

	return records
}
