// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeviceKey identifies a device within an account.
type DeviceKey struct {
	OwnerID  string
	DeviceID string
}

// DeviceState is the durable bookkeeping of what a device is still owed.
//
// Unsynced holds references that arrived from other devices and have not
// been claimed by a fetch yet. Pending holds references claimed by a fetch
// that has not been acknowledged completely. A missing queue is empty.
type DeviceState struct {
	RegisteredAt   time.Time `json:"registeredAt"`
	ResetRequested bool      `json:"resetRequested"`
	Unsynced       []ItemRef `json:"unsynced,omitempty"`
	Pending        []ItemRef `json:"pending,omitempty"`
}

// HasUnsynced reports whether new references are waiting to be claimed.
func (s DeviceState) HasUnsynced() bool {
	return len(s.Unsynced) > 0
}

// HasPendingFetch reports whether a previous fetch left references
// unacknowledged.
func (s DeviceState) HasPendingFetch() bool {
	return len(s.Pending) > 0
}

// NeedsFetch reports whether the device has anything to receive.
func (s DeviceState) NeedsFetch() bool {
	return s.ResetRequested || s.HasUnsynced() || s.HasPendingFetch()
}

// Device is the listing view of a registered device.
type Device struct {
	ID             string    `json:"id"`
	RegisteredAt   time.Time `json:"registeredAt"`
	ResetRequested bool      `json:"resetRequested"`
	Unsynced       int       `json:"unsynced"`
	Pending        int       `json:"pending"`
}

// NewDevice builds the listing view of state.
func NewDevice(id string, state DeviceState) Device {
	return Device{
		ID:             id,
		RegisteredAt:   state.RegisteredAt,
		ResetRequested: state.ResetRequested,
		Unsynced:       len(state.Unsynced),
		Pending:        len(state.Pending),
	}
}
