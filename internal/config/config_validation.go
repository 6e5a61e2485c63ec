// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// defaults returns the values used for every field left empty by all
// configuration sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-notes-sync",
			TokenDuration: 24 * time.Hour,
			SyncScope:     "sync",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
			},
			Devices: Devices{
				Backend: DevicesBackendFS,
				Dir:     "data/devices",
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Sync: Sync{
			ChunkBudget:        7 * 1024 * 1024,
			ItemOverhead:       512,
			PageSize:           100,
			AckTimeout:         10 * time.Minute,
			FetchLeaseTimeout:  10 * time.Minute,
			NotificationBuffer: 64,
			MaxMessageSize:     32 * 1024 * 1024,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Workers: Workers{
			LeaseSweepInterval:  time.Minute,
			HealthCheckInterval: 15 * time.Second,
		},
	}
}

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Devices.Backend {
	case DevicesBackendFS:
		if cfg.Storage.Devices.Dir == "" {
			return fmt.Errorf("%w: empty devices directory", ErrInvalidStorageConfigs)
		}
	case DevicesBackendPostgres:
		if cfg.Storage.DB.DSN == MemoryDSN {
			return fmt.Errorf("%w: postgres device backend needs a database", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown devices backend %q", ErrInvalidStorageConfigs, cfg.Storage.Devices.Backend)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Sync.ChunkBudget <= 0 || cfg.Sync.PageSize <= 0 || cfg.Sync.AckTimeout <= 0 ||
		cfg.Sync.ItemOverhead < 0 || cfg.Sync.NotificationBuffer <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.LeaseSweepInterval <= 0 || cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
