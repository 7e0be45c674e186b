package tui

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Snapshot is the subset of a core/stats document the dashboard renders.
// Fields the daemon omits stay at their zero value.
type Snapshot struct {
	Bytes          int64          `mapstructure:"bytes"`
	TotalBytes     int64          `mapstructure:"totalBytes"`
	Speed          float64        `mapstructure:"speed"`
	ETA            *int64         `mapstructure:"eta"`
	Transfers      int64          `mapstructure:"transfers"`
	TotalTransfers int64          `mapstructure:"totalTransfers"`
	Checks         int64          `mapstructure:"checks"`
	TotalChecks    int64          `mapstructure:"totalChecks"`
	Deletes        int64          `mapstructure:"deletes"`
	Renames        int64          `mapstructure:"renames"`
	Errors         int64          `mapstructure:"errors"`
	FatalError     bool           `mapstructure:"fatalError"`
	RetryError     bool           `mapstructure:"retryError"`
	LastError      string         `mapstructure:"lastError"`
	ElapsedTime    float64        `mapstructure:"elapsedTime"`
	Transferring   []Transferring `mapstructure:"transferring"`
}

// Transferring is one in-flight transfer.
type Transferring struct {
	Name       string  `mapstructure:"name"`
	Group      string  `mapstructure:"group"`
	Size       int64   `mapstructure:"size"`
	Bytes      int64   `mapstructure:"bytes"`
	Percentage int     `mapstructure:"percentage"`
	Speed      float64 `mapstructure:"speed"`
	SpeedAvg   float64 `mapstructure:"speedAvg"`
	ETA        *int64  `mapstructure:"eta"`
}

// DecodeSnapshot converts a decoded core/stats document into a Snapshot.
func DecodeSnapshot(doc any) (Snapshot, error) {
	var snap Snapshot
	if doc == nil {
		return snap, fmt.Errorf("decode stats: empty document")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &snap,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return snap, fmt.Errorf("decode stats: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return snap, fmt.Errorf("decode stats: %w", err)
	}
	return snap, nil
}
