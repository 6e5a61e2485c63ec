// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxItemLength is the largest encrypted payload, in bytes, a single item may
// carry (15 MiB).
const MaxItemLength int64 = 15 * 1024 * 1024

// Item is one end-to-end encrypted record synchronized between the devices
// of an account.
//
// The server never decrypts Cipher. It only stores it together with the
// parameters the owning devices need to decrypt it (IV, Salt, Algorithm) and
// the bookkeeping required for synchronization (SyncVersion).
type Item struct {
	// ID is the stable identity assigned by the device that created the item.
	ID string `json:"id"`

	// Type is the collection the item belongs to.
	Type ItemType `json:"type,omitempty"`

	// OwnerID is the account that owns the item. It is always taken from the
	// authenticated connection, never from the payload.
	OwnerID string `json:"-"`

	// Cipher is the opaque encrypted body.
	Cipher string `json:"cipher"`
	IV     string `json:"iv"`
	Salt   string `json:"salt"`

	// Algorithm names the encryption scheme and must be in the allow-list.
	Algorithm string `json:"alg"`

	// Length is the byte length of the encrypted payload as declared by the
	// sender.
	Length int64 `json:"length"`

	// SyncVersion is assigned by the server when the item is accepted.
	SyncVersion int64 `json:"syncVersion,omitempty"`

	// ClientVersion is the schema version supplied by the sender.
	ClientVersion int `json:"v"`
}

// Ref returns the owed-queue reference of the item.
func (i Item) Ref() ItemRef {
	return ItemRef{ID: i.ID, Type: i.Type}
}

// Size returns the number of bytes the item accounts for: the declared
// length or the actual cipher length, whichever is larger.
func (i Item) Size() int64 {
	return max(i.Length, int64(len(i.Cipher)))
}

// VaultKey is the encrypted key every device must hold before it can decrypt
// anything else. It is stored with the account sync state instead of the
// typed collections.
type VaultKey struct {
	Cipher    string `json:"cipher"`
	IV        string `json:"iv"`
	Salt      string `json:"salt"`
	Algorithm string `json:"alg"`
	Length    int64  `json:"length"`
}
