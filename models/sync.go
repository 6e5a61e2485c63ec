package models

// Session identifies one open duplex channel of an account.
type Session struct {
	AccountID    string
	ConnectionID string
}

// TransferItem is the generation 1 push envelope: one item with its type and
// the schema version the client wrote it with.
type TransferItem struct {
	Type    ItemType `json:"type"`
	Payload Item     `json:"payload"`
	Version int      `json:"version"`
}

// FetchStreamItem is one element of a generation 1 backlog stream.
//
// Regular elements carry Item and ItemType with a running Current/Total
// progress pair. The final element has Synced set and carries the account
// cursor.
type FetchStreamItem struct {
	Synced   bool     `json:"synced"`
	Cursor   int64    `json:"cursor"`
	Item     *Item    `json:"item,omitempty"`
	ItemType ItemType `json:"itemType,omitempty"`
	Current  int      `json:"current"`
	Total    int      `json:"total"`
}

// PushItemsRequest is the generation 2 push payload: items of a single type.
type PushItemsRequest struct {
	Type  ItemType `json:"type"`
	Items []Item   `json:"items"`
}

// Refs returns the owed-queue references of every item in the request.
func (r PushItemsRequest) Refs() []ItemRef {
	refs := make([]ItemRef, 0, len(r.Items))
	for _, item := range r.Items {
		refs = append(refs, ItemRef{ID: item.ID, Type: r.Type})
	}

	return refs
}

// ItemsChunk is one acknowledged unit of a generation 2 backlog fetch.
type ItemsChunk struct {
	Items      []Item   `json:"items"`
	Type       ItemType `json:"type"`
	SequenceNo int      `json:"sequenceNo"`
}

// IDs returns the ids of the chunk items in order.
func (c ItemsChunk) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}

	return ids
}

// FetchResult is the reply to a generation 2 fetch request.
type FetchResult struct {
	Synced bool `json:"synced"`
}
