package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Vault struct {
		KDF       string `json:"kdf"`
		HandleKey string `json:"handle_key"`
	} `json:"vault,omitempty"`

	Session struct {
		SignKey       string   `json:"sign_key"`
		Issuer        string   `json:"issuer"`
		Duration      Duration `json:"duration"`
		CheckInterval Duration `json:"check_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		HandleCacheDSN string `json:"handle_cache_dsn"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Vault: Vault{
			KDF:       jsonCfg.Vault.KDF,
			HandleKey: jsonCfg.Vault.HandleKey,
		},
		Session: Session{
			SignKey:       jsonCfg.Session.SignKey,
			Issuer:        jsonCfg.Session.Issuer,
			Duration:      time.Duration(jsonCfg.Session.Duration),
			CheckInterval: time.Duration(jsonCfg.Session.CheckInterval),
		},
		Storage: Storage{
			HandleCacheDSN: jsonCfg.Storage.HandleCacheDSN,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
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
