package handler

import (
	"net/http"
	"time"

	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/schedule"
)

// SetRequest represents the body for creating or updating a premium store set
type SetRequest struct {
	Name    string  `json:"name" validate:"required,max=64"`
	ItemIDs []int64 `json:"item_ids"`
}

// ScheduleRequest represents the body for creating or updating a schedule
type ScheduleRequest struct {
	SetID     int64     `json:"set_id" validate:"required,gt=0"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// CreatedResponse carries the ID of a newly created resource
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// HandleListSets lists all premium store sets
// @Summary List premium store sets
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PremiumStoreSet
// @Router /admin/premium/sets [get]
func HandleListSets(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sets, err := svc.ListSets(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list sets", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, sets)
	}
}

// HandleGetSet returns one set with its member items
// @Summary Get a premium store set
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Param setID path int true "Set ID"
// @Success 200 {object} domain.PremiumStoreSet
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/sets/{setID} [get]
func HandleGetSet(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID, ok := GetPathID(r, w, "setID")
		if !ok {
			return
		}

		set, err := svc.GetSet(r.Context(), setID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, set)
	}
}

// HandleCreateSet creates a premium store set
// @Summary Create a premium store set
// @Tags premium-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetRequest true "Set definition"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /admin/premium/sets [post]
func HandleCreateSet(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create set"); err != nil {
			return
		}

		setID, err := svc.CreateSet(r.Context(), req.Name, req.ItemIDs)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, CreatedResponse{ID: setID})
	}
}

// HandleUpdateSet replaces a set's name and item membership
// @Summary Update a premium store set
// @Tags premium-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param setID path int true "Set ID"
// @Param request body SetRequest true "Set definition"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/sets/{setID} [put]
func HandleUpdateSet(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID, ok := GetPathID(r, w, "setID")
		if !ok {
			return
		}

		var req SetRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update set"); err != nil {
			return
		}

		if err := svc.UpdateSet(r.Context(), setID, req.Name, req.ItemIDs); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Set updated"})
	}
}

// HandleDeleteSet deletes a set and its schedules
// @Summary Delete a premium store set
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Param setID path int true "Set ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/sets/{setID} [delete]
func HandleDeleteSet(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID, ok := GetPathID(r, w, "setID")
		if !ok {
			return
		}

		if err := svc.DeleteSet(r.Context(), setID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Set deleted"})
	}
}

// HandleListLiveItemIDs returns the IDs of every item currently live in the
// premium store, including items without a price that the listing omits
// @Summary List currently live premium item IDs
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} int64
// @Router /admin/premium/live-items [get]
func HandleListLiveItemIDs(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := svc.LiveItemIDs(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list live item ids", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, ids)
	}
}

// HandleListSchedules lists all premium store schedules
// @Summary List premium store schedules
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PremiumStoreSchedule
// @Router /admin/premium/schedules [get]
func HandleListSchedules(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := svc.ListSchedules(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list schedules", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, schedules)
	}
}

// HandleGetSchedule returns a single schedule
// @Summary Get a premium store schedule
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Param scheduleID path int true "Schedule ID"
// @Success 200 {object} domain.PremiumStoreSchedule
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/schedules/{scheduleID} [get]
func HandleGetSchedule(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, ok := GetPathID(r, w, "scheduleID")
		if !ok {
			return
		}

		sched, err := svc.GetSchedule(r.Context(), scheduleID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, sched)
	}
}

// HandleCreateSchedule attaches an availability window to a set
// @Summary Create a premium store schedule
// @Tags premium-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScheduleRequest true "Schedule window"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/schedules [post]
func HandleCreateSchedule(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScheduleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create schedule"); err != nil {
			return
		}

		scheduleID, err := svc.CreateSchedule(r.Context(), req.SetID, req.StartDate, req.EndDate)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, CreatedResponse{ID: scheduleID})
	}
}

// HandleUpdateSchedule replaces a schedule's set and window
// @Summary Update a premium store schedule
// @Tags premium-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scheduleID path int true "Schedule ID"
// @Param request body ScheduleRequest true "Schedule window"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/schedules/{scheduleID} [put]
func HandleUpdateSchedule(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, ok := GetPathID(r, w, "scheduleID")
		if !ok {
			return
		}

		var req ScheduleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update schedule"); err != nil {
			return
		}

		if err := svc.UpdateSchedule(r.Context(), scheduleID, req.SetID, req.StartDate, req.EndDate); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Schedule updated"})
	}
}

// HandleDeleteSchedule removes a schedule
// @Summary Delete a premium store schedule
// @Tags premium-admin
// @Produce json
// @Security BearerAuth
// @Param scheduleID path int true "Schedule ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/premium/schedules/{scheduleID} [delete]
func HandleDeleteSchedule(svc schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, ok := GetPathID(r, w, "scheduleID")
		if !ok {
			return
		}

		if err := svc.DeleteSchedule(r.Context(), scheduleID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Schedule deleted"})
	}
}
