package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Server struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Mode          string `json:"mode"`
		NetworkType   string `json:"network_type"`
		MaxConcurrent int    `json:"max_concurrent"`
	} `json:"sync,omitempty"`

	Workers struct {
		ScanInterval     Duration `json:"scan_interval"`
		DispatchInterval Duration `json:"dispatch_interval"`
		DispatchPoll     Duration `json:"dispatch_poll"`
		CleanupInterval  Duration `json:"cleanup_interval"`
		WatchDebounce    Duration `json:"watch_debounce"`
		WatchDisabled    bool     `json:"watch_disabled"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath: jsonCfg.App.LogPath,
		},
		Server: Server{
			BaseURL:        jsonCfg.Server.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			Mode:          jsonCfg.Sync.Mode,
			NetworkType:   jsonCfg.Sync.NetworkType,
			MaxConcurrent: jsonCfg.Sync.MaxConcurrent,
		},
		Workers: Workers{
			ScanInterval:     time.Duration(jsonCfg.Workers.ScanInterval),
			DispatchInterval: time.Duration(jsonCfg.Workers.DispatchInterval),
			DispatchPoll:     time.Duration(jsonCfg.Workers.DispatchPoll),
			CleanupInterval:  time.Duration(jsonCfg.Workers.CleanupInterval),
			WatchDebounce:    time.Duration(jsonCfg.Workers.WatchDebounce),
			WatchDisabled:    jsonCfg.Workers.WatchDisabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
