package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

func (h *Handler) setVaultKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.setVaultKey").Msg(ErrNoAccountID.Error())
		utils.WriteError(w, ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	var key models.VaultKey
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		log.Err(err).Str("func", "*Handler.setVaultKey").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.SetVaultKey(ctx, accountID, key); err != nil {
		log.Err(err).Str("func", "*Handler.setVaultKey").Msg("error storing vault key")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteSyncData removes every item, device and the sync state of the
// account. Open sessions are not closed.
func (h *Handler) deleteSyncData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteSyncData").Msg(ErrNoAccountID.Error())
		utils.WriteError(w, ErrNoAccountID.Error(), http.StatusUnauthorized)
		return
	}

	if err := h.services.AccountService.DeleteSyncData(ctx, accountID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSyncData").Msg("error deleting sync data")
		utils.WriteError(w, "error deleting sync data", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
