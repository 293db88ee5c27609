package config

import "time"

// Scheduling and policy defaults. The dispatcher poll matches the fixed
// one-second admission backoff; the periodic intervals mirror the original
// device schedule (scan half-hourly, dispatch quarter-hourly, cleanup daily).
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "msync.db"},
		},
		Sync: Sync{
			Mode:          "full",
			NetworkType:   "any",
			MaxConcurrent: 3,
		},
		Workers: Workers{
			ScanInterval:     30 * time.Minute,
			DispatchInterval: 15 * time.Minute,
			DispatchPoll:     time.Second,
			CleanupInterval:  24 * time.Hour,
			WatchDebounce:    10 * time.Second,
		},
	}
}
