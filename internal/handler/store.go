package handler

import (
	"net/http"

	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/store"
)

// BuyRequest represents the body of a purchase request
type BuyRequest struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}

// HandleBuyGeneralItem handles purchasing a general-store item with silver
// @Summary Buy a general store item
// @Description Purchase an unowned general store item with silver
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BuyRequest true "Item to purchase"
// @Success 200 {object} store.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /store/general/buy [post]
func HandleBuyGeneralItem(svc store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}

		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy general item"); err != nil {
			return
		}

		result, err := svc.BuyGeneralItem(r.Context(), principal.UserID, req.ItemID)
		if err != nil {
			logger.FromContext(r.Context()).Error("General purchase failed", "error", err, "item_id", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleBuyPremiumItem handles purchasing a live premium item with gold
// @Summary Buy a premium store item
// @Description Purchase an unowned, currently scheduled premium item with gold
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BuyRequest true "Item to purchase"
// @Success 200 {object} store.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /store/premium/buy [post]
func HandleBuyPremiumItem(svc store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}

		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy premium item"); err != nil {
			return
		}

		result, err := svc.BuyPremiumItem(r.Context(), principal.UserID, req.ItemID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Premium purchase failed", "error", err, "item_id", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListGeneralStoreItems lists purchasable general store items
// @Summary List general store items
// @Description List general store items the caller does not own yet
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Item
// @Failure 500 {object} ErrorResponse
// @Router /store/general [get]
func HandleListGeneralStoreItems(svc store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}

		items, err := svc.ListGeneralStoreItems(r.Context(), principal.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list general store items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleListLivePremiumItems lists currently available premium items
// @Summary List live premium items
// @Description List premium items whose set has a schedule covering now
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PremiumListing
// @Failure 500 {object} ErrorResponse
// @Router /store/premium [get]
func HandleListLivePremiumItems(svc store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListLivePremiumItems(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list live premium items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}
