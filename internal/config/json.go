package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Galaxy struct {
		URL            string   `json:"url"`
		Key            string   `json:"key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"galaxy,omitempty"`

	Toolshed struct {
		URL string `json:"url"`
	} `json:"toolshed,omitempty"`

	LDAP struct {
		URL    string `json:"url"`
		BaseDN string `json:"base_dn"`
	} `json:"ldap,omitempty"`

	SMTP struct {
		Address string `json:"address"`
		Sender  string `json:"sender"`
	} `json:"smtp,omitempty"`

	Audit struct {
		DSN string `json:"db"`
	} `json:"audit,omitempty"`

	LogLevel string `json:"loglevel"`
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
		Galaxy: Galaxy{
			URL:            jsonCfg.Galaxy.URL,
			Key:            jsonCfg.Galaxy.Key,
			RequestTimeout: time.Duration(jsonCfg.Galaxy.RequestTimeout),
		},
		Toolshed: Toolshed{URL: jsonCfg.Toolshed.URL},
		LDAP: LDAP{
			URL:    jsonCfg.LDAP.URL,
			BaseDN: jsonCfg.LDAP.BaseDN,
		},
		SMTP: SMTP{
			Address: jsonCfg.SMTP.Address,
			Sender:  jsonCfg.SMTP.Sender,
		},
		Audit:        Audit{DSN: jsonCfg.Audit.DSN},
		App:          App{LogLevel: jsonCfg.LogLevel},
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
