// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ItemType identifies the collection an [Item] belongs to.
//
// The set of types is closed: every value accepted from the wire is checked
// with [ParseItemType] or [ItemType.Valid], and storage binds each type to
// its own table through a single exhaustive switch.
type ItemType string

const (
	SettingItem ItemType = "settingitem"
	Attachment  ItemType = "attachment"
	Note        ItemType = "note"
	Notebook    ItemType = "notebook"
	Content     ItemType = "content"
	Shortcut    ItemType = "shortcut"
	Reminder    ItemType = "reminder"
	Color       ItemType = "color"
	Tag         ItemType = "tag"
	Vault       ItemType = "vault"
	Relation    ItemType = "relation"
)

// ErrUnknownItemType is returned by [ParseItemType] for names outside the
// fixed set of item types.
var ErrUnknownItemType = errors.New("unknown item type")

// ItemTypes lists every item type in backlog delivery order.
//
// Relation is always last: relations point at other items and must not reach
// a device before the items they reference.
var ItemTypes = []ItemType{
	SettingItem,
	Attachment,
	Note,
	Notebook,
	Content,
	Shortcut,
	Reminder,
	Color,
	Tag,
	Vault,
	Relation,
}

// ParseItemType converts a wire name into an [ItemType].
func ParseItemType(name string) (ItemType, error) {
	t := ItemType(name)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownItemType, name)
	}

	return t, nil
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case SettingItem, Attachment, Note, Notebook, Content, Shortcut,
		Reminder, Color, Tag, Vault, Relation:
		return true
	}

	return false
}

// String implements [fmt.Stringer].
func (t ItemType) String() string {
	return string(t)
}
