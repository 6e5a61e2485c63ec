package ws

import (
	"context"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/models"
)

// Generation 1 hub methods.
const (
	MethodPushBatch     = "PushBatch"
	MethodFetchAll      = "FetchAll"
	MethodCompleteFetch = "CompleteFetch"
)

type cursorDispatcher struct {
	sync service.CursorSyncService
}

func (d *cursorDispatcher) invoke(ctx context.Context, c *Conn, target string, args arguments) (any, error) {
	switch target {
	case MethodPushBatch:
		return d.pushBatch(ctx, c, args), nil
	case MethodCompleteFetch:
		var cursor int64
		if err := args.bind(0, &cursor); err != nil {
			return nil, err
		}
		return d.sync.CompleteFetch(ctx, c.Session(), cursor)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
}

// pushBatch replies 0 for every failure, including undecodable arguments.
func (d *cursorDispatcher) pushBatch(ctx context.Context, c *Conn, args arguments) int {
	log := logger.FromContext(ctx)

	var (
		items  []models.TransferItem
		cursor int64
	)
	if err := args.bind(0, &items); err != nil {
		log.Err(err).Str("func", "cursorDispatcher.pushBatch").Msg("bad push batch")
		return 0
	}
	if err := args.bind(1, &cursor); err != nil {
		log.Err(err).Str("func", "cursorDispatcher.pushBatch").Msg("bad push cursor")
		return 0
	}

	n, err := d.sync.PushBatch(ctx, c.Session(), items, cursor)
	if err != nil {
		return 0
	}

	return n
}

func (d *cursorDispatcher) stream(ctx context.Context, c *Conn, target string, args arguments) (iter.Seq2[any, error], error) {
	if target != MethodFetchAll {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}

	var since int64
	if err := args.bind(0, &since); err != nil {
		return nil, err
	}

	return anySeq(d.sync.FetchAll(ctx, c.Session(), since)), nil
}

func (d *cursorDispatcher) close(ctx context.Context, c *Conn) {
	d.sync.Disconnect(ctx, c.Session())
}
