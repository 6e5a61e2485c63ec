package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listDevices").Msg(ErrNoAccountID.Error())
		utils.WriteError(w, ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	devices, err := h.services.AccountService.ListDevices(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDevices").Msg("error listing devices")
		utils.WriteError(w, "error listing devices", statusFromError(err))
		return
	}

	utils.WriteJSON(w, devices, http.StatusOK)
}

// registerDevice registers the device, or requests a full resend when it is
// registered already.
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.registerDevice").Msg(ErrNoAccountID.Error())
		utils.WriteError(w, ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	deviceID := chi.URLParam(r, "deviceID")
	if err := h.services.AccountService.RegisterDevice(ctx, accountID, deviceID); err != nil {
		log.Err(err).Str("func", "*Handler.registerDevice").Str("device_id", deviceID).Msg("error registering device")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unregisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.unregisterDevice").Msg(ErrNoAccountID.Error())
		utils.WriteError(w, ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	deviceID := chi.URLParam(r, "deviceID")
	if err := h.services.AccountService.UnregisterDevice(ctx, accountID, deviceID); err != nil {
		log.Err(err).Str("func", "*Handler.unregisterDevice").Str("device_id", deviceID).Msg("error unregistering device")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
