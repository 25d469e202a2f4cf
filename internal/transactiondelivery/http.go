// Package transactiondelivery manages delivery layer of ledger transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/tokenpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

const dateLayout = "2006-01-02"

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type data struct {
	Transaction domain.Transaction `json:"transaction"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

func bindingErrorResponse(gctx *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

type detailRequest struct {
	AccountID int32           `json:"account_id" binding:"required,min=1"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	TaxRateID *int32          `json:"tax_rate_id" binding:"omitempty,min=1"`
}

type createRequest struct {
	Date            string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description     string          `json:"description" binding:"required"`
	ReferenceNumber *string         `json:"reference_number"`
	CurrencyID      int32           `json:"currency_id" binding:"required,min=1"`
	Details         []detailRequest `json:"details" binding:"required,min=1,dive"`
}

// Create handles http request to post a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		bindingErrorResponse(gctx, err)

		return
	}

	// The binding already guarantees the layout.
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.CreateTransactionParams{
		Date:            date,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		CurrencyID:      req.CurrencyID,
		CreatedBy:       authPayload.Username,
		Details:         make([]domain.CreateDetailParams, 0, len(req.Details)),
	}

	for _, d := range req.Details {
		arg.Details = append(arg.Details, domain.CreateDetailParams{
			AccountID: d.AccountID,
			Debit:     d.Debit,
			Credit:    d.Credit,
			TaxRateID: d.TaxRateID,
		})
	}

	transaction, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound, domain.ErrCurrencyNotFound, domain.ErrTaxRateNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrUnbalancedTransaction, domain.ErrNegativeAmount, domain.ErrNoTransactionDetails:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{transaction}})
}

type uriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a posted transaction with its details.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		bindingErrorResponse(gctx, err)

		return
	}

	transaction, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{transaction}})
}

// Delete handles http request to delete a posted transaction.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		bindingErrorResponse(gctx, err)

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}
