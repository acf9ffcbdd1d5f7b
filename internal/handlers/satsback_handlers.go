package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbd-wtf/go-nostr"

	"github.com/lacrypta/satsback-api/internal/client/lawallet"
	"github.com/lacrypta/satsback-api/internal/db"
	"github.com/lacrypta/satsback-api/internal/events"
	"github.com/lacrypta/satsback-api/internal/services"
)

// SatsbackCreator runs the satsback pipeline for one payment.
type SatsbackCreator interface {
	CreateSatsback(ctx context.Context, params services.CreateSatsbackParams) (*nostr.Event, error)
}

// VolunteerReader looks up volunteer voucher records.
type VolunteerReader interface {
	GetVolunteer(ctx context.Context, pubkey string) (*db.Volunteer, error)
}

// SatsbackHandler exposes the satsback pipeline over HTTP.
type SatsbackHandler struct {
	service      SatsbackCreator
	volunteers   VolunteerReader
	ledgerPubkey string
	privateKey   string
}

// NewSatsbackHandler creates a new satsback handler.
func NewSatsbackHandler(service SatsbackCreator, volunteers VolunteerReader, ledgerPubkey, privateKey string) *SatsbackHandler {
	return &SatsbackHandler{
		service:      service,
		volunteers:   volunteers,
		ledgerPubkey: ledgerPubkey,
		privateKey:   privateKey,
	}
}

// CreateSatsbackRequest is the body of POST /api/v1/satsback.
type CreateSatsbackRequest struct {
	// EventID is the id of the payment event that triggered the satsback.
	EventID string `json:"event_id" binding:"required"`
	// AmountMsats is the gross payment amount in millisatoshis.
	AmountMsats int64 `json:"amount_msats" binding:"required"`
	// UserPubkey is the paying identity.
	UserPubkey string `json:"user_pubkey" binding:"required"`
}

// CreateSatsback computes the rebate for a payment and returns the signed
// ledger event announcing it.
func (h *SatsbackHandler) CreateSatsback(c *gin.Context) {
	var req CreateSatsbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !events.IsValidPublicKey(req.UserPubkey) {
		sendError(c, http.StatusBadRequest, "user_pubkey must be a 64-character hex public key", nil)
		return
	}

	event, err := h.service.CreateSatsback(c.Request.Context(), services.CreateSatsbackParams{
		TransactionRef: req.EventID,
		AmountMsats:    req.AmountMsats,
		UserPubkey:     req.UserPubkey,
		LedgerPubkey:   h.ledgerPubkey,
		PrivateKey:     h.privateKey,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, event)
}

// VoucherBalanceResponse is the body of GET /api/v1/volunteers/:pubkey/voucher.
type VoucherBalanceResponse struct {
	PublicKey    string `json:"public_key"`
	VoucherMsats int64  `json:"voucher_msats"`
}

// GetVoucherBalance returns the remaining voucher balance for a volunteer.
func (h *SatsbackHandler) GetVoucherBalance(c *gin.Context) {
	pubkey := c.Param("pubkey")
	if !events.IsValidPublicKey(pubkey) {
		sendError(c, http.StatusBadRequest, "pubkey must be a 64-character hex public key", nil)
		return
	}

	volunteer, err := h.volunteers.GetVolunteer(c.Request.Context(), pubkey)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to look up volunteer", err)
		return
	}
	if volunteer == nil {
		sendError(c, http.StatusNotFound, "Volunteer not found", nil)
		return
	}

	sendSuccess(c, http.StatusOK, VoucherBalanceResponse{
		PublicKey:    volunteer.PublicKey,
		VoucherMsats: volunteer.VoucherMsats,
	})
}

// handleServiceError maps pipeline errors to HTTP status codes.
func (h *SatsbackHandler) handleServiceError(c *gin.Context, err error) {
	var apiErr *lawallet.APIError

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		sendError(c, http.StatusUnauthorized, "User not allowed to make satsback", err)
	case errors.Is(err, services.ErrInvalidAmount):
		sendError(c, http.StatusBadRequest, "Amount must be positive", err)
	case errors.As(err, &apiErr):
		sendError(c, http.StatusBadGateway, "Alias resolution failed", err)
	default:
		sendError(c, http.StatusInternalServerError, "Failed to create satsback event", err)
	}
}
