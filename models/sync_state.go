package models

// SyncState is the per-account synchronization record.
type SyncState struct {
	OwnerID string `json:"-"`

	// LastSynced is the highest cursor acknowledged by a completed backlog
	// fetch. It never decreases.
	LastSynced int64 `json:"lastSynced"`

	// VaultKey is nil until a device uploads one.
	VaultKey *VaultKey `json:"vaultKey,omitempty"`
}
