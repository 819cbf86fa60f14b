package handler

import (
	"net/http"

	"github.com/ritualnet/backend/internal/inventory"
	"github.com/ritualnet/backend/internal/logger"
)

// FavoriteRequest represents the body of a favorite toggle request
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// CosmeticRequest selects a chroma or shader; a null ID clears the selection
type CosmeticRequest struct {
	ID *int64 `json:"id" validate:"omitempty,gt=0"`
}

// HandleListUserItems lists the caller's owned items
// @Summary List owned items
// @Description List the caller's ownership records with equip and cosmetic state
// @Tags user-items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.UserItem
// @Failure 500 {object} ErrorResponse
// @Router /user/items [get]
func HandleListUserItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}

		items, err := svc.ListOwned(r.Context(), principal.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list user items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleEquipItem equips an owned item, replacing any equipped item of the
// same type
// @Summary Equip an item
// @Description Equip an owned item; any equipped item of the same type is unequipped
// @Tags user-items
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/items/{itemID}/equip [post]
func HandleEquipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathID(r, w, "itemID")
		if !ok {
			return
		}

		if err := svc.Equip(r.Context(), principal.UserID, itemID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item equipped"})
	}
}

// HandleUnequipItem unequips an owned item
// @Summary Unequip an item
// @Tags user-items
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/items/{itemID}/unequip [post]
func HandleUnequipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathID(r, w, "itemID")
		if !ok {
			return
		}

		if err := svc.Unequip(r.Context(), principal.UserID, itemID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item unequipped"})
	}
}

// HandleSetFavorite toggles the favorite flag on an owned item
// @Summary Favorite or unfavorite an item
// @Tags user-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item ID"
// @Param request body FavoriteRequest true "Favorite flag"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/items/{itemID}/favorite [put]
func HandleSetFavorite(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathID(r, w, "itemID")
		if !ok {
			return
		}

		var req FavoriteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set favorite"); err != nil {
			return
		}

		if err := svc.SetFavorite(r.Context(), principal.UserID, itemID, req.Favorite); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Favorite updated"})
	}
}

// HandleSetChroma selects or clears a chroma on an owned item
// @Summary Select a chroma
// @Description Select a chroma for an owned item; a null id clears the selection
// @Tags user-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item ID"
// @Param request body CosmeticRequest true "Chroma selection"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/items/{itemID}/chroma [put]
func HandleSetChroma(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathID(r, w, "itemID")
		if !ok {
			return
		}

		var req CosmeticRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set chroma"); err != nil {
			return
		}

		if err := svc.SetChroma(r.Context(), principal.UserID, itemID, req.ID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Chroma updated"})
	}
}

// HandleSetShader selects or clears a shader on an owned item
// @Summary Select a shader
// @Description Select a shader for an owned item; a null id clears the selection
// @Tags user-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item ID"
// @Param request body CosmeticRequest true "Shader selection"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/items/{itemID}/shader [put]
func HandleSetShader(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathID(r, w, "itemID")
		if !ok {
			return
		}

		var req CosmeticRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set shader"); err != nil {
			return
		}

		if err := svc.SetShader(r.Context(), principal.UserID, itemID, req.ID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Shader updated"})
	}
}
