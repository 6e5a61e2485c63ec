package service

import "github.com/MKhiriev/go-notes-sync/models"

// chunker groups items into chunks bounded by a byte budget. Every item
// costs its size plus a fixed overhead. An item larger than the budget forms
// a chunk of its own.
type chunker struct {
	budget   int64
	overhead int64

	items []models.Item
	size  int64
}

func newChunker(budget, overhead int64) *chunker {
	return &chunker{budget: budget, overhead: overhead}
}

// Add appends item. When item does not fit, the chunk built so far is
// returned and item starts the next one.
func (c *chunker) Add(item models.Item) ([]models.Item, bool) {
	cost := item.Size() + c.overhead

	if len(c.items) > 0 && c.size+cost > c.budget {
		full := c.items
		c.items, c.size = []models.Item{item}, cost
		return full, true
	}

	c.items = append(c.items, item)
	c.size += cost

	return nil, false
}

// Flush returns the last, possibly empty, chunk.
func (c *chunker) Flush() []models.Item {
	rest := c.items
	c.items, c.size = nil, 0

	return rest
}
