// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ws

import (
	"context"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/models"
)

// Generation 2 hub methods.
const (
	MethodPushItems     = "PushItems"
	MethodPushCompleted = "PushCompleted"
	MethodRequestFetch  = "RequestFetch"
)

type deviceDispatcher struct {
	sync service.DeviceSyncService
}

func (d *deviceDispatcher) invoke(ctx context.Context, c *Conn, target string, args arguments) (any, error) {
	switch target {
	case MethodPushItems:
		return d.pushItems(ctx, c, args), nil
	case MethodPushCompleted:
		return d.sync.PushCompleted(ctx, c.Session()), nil
	case MethodRequestFetch:
		var deviceID string
		if err := args.bind(0, &deviceID); err != nil {
			return nil, err
		}
		// the connection receives SendVaultKey and SendItems
		return d.sync.RequestFetch(ctx, c.Session(), deviceID, c)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
}

func (d *deviceDispatcher) pushItems(ctx context.Context, c *Conn, args arguments) int {
	log := logger.FromContext(ctx)

	var (
		deviceID string
		req      models.PushItemsRequest
	)
	if err := args.bind(0, &deviceID); err != nil {
		log.Err(err).Str("func", "deviceDispatcher.pushItems").Msg("bad device id")
		return 0
	}
	if err := args.bind(1, &req); err != nil {
		log.Err(err).Str("func", "deviceDispatcher.pushItems").Msg("bad push payload")
		return 0
	}

	n, err := d.sync.PushItems(ctx, c.Session(), deviceID, req)
	if err != nil {
		return 0
	}

	return n
}

func (d *deviceDispatcher) stream(_ context.Context, _ *Conn, target string, _ arguments) (iter.Seq2[any, error], error) {
	return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
}

// close has nothing to release: a running fetch ends with the connection
// context and drops its guard itself.
func (d *deviceDispatcher) close(context.Context, *Conn) {}
