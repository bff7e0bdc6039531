package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML decoding. Fields where zero is a
// meaningful value use pointers so an explicit zero in the file is
// distinguishable from the field being absent.
type FileConfig struct {
	Shape       string   `toml:"shape"`
	Diameter    float64  `toml:"diameter"`
	PanelWidth  float64  `toml:"panel_width"`
	PanelHeight float64  `toml:"panel_height"`
	EdgeMargin  *float64 `toml:"edge_margin"`

	ShotWidth  float64 `toml:"shot_width"`
	ShotHeight float64 `toml:"shot_height"`

	DieWidth  float64  `toml:"die_width"`
	DieHeight float64  `toml:"die_height"`
	ScribeX   *float64 `toml:"scribe_x"`
	ScribeY   *float64 `toml:"scribe_y"`

	DefectRate   *float64 `toml:"defect_rate"`
	CriticalArea *float64 `toml:"critical_area"`
	Model        string   `toml:"model"`

	Seed    *int64 `toml:"seed"`
	Runs    int    `toml:"runs"`
	Workers int    `toml:"workers"`

	MapPath   string `toml:"map_path"`
	ChartPath string `toml:"chart_path"`
	JSONPath  string `toml:"json_path"`
	CSVPath   string `toml:"csv_path"`

	ShowShots *bool `toml:"show_shots"`
	Watch     *bool `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.dieyield/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dieyield", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("shape", fc.Shape, &cfg.Shape)
	s.setFloat("diameter", fc.Diameter, &cfg.Diameter)
	s.setFloat("panel-width", fc.PanelWidth, &cfg.PanelWidth)
	s.setFloat("panel-height", fc.PanelHeight, &cfg.PanelHeight)
	s.setFloatPtr("edge-margin", fc.EdgeMargin, &cfg.EdgeMargin)

	s.setFloat("shot-width", fc.ShotWidth, &cfg.ShotWidth)
	s.setFloat("shot-height", fc.ShotHeight, &cfg.ShotHeight)

	s.setFloat("die-width", fc.DieWidth, &cfg.DieWidth)
	s.setFloat("die-height", fc.DieHeight, &cfg.DieHeight)
	s.setFloatPtr("scribe-x", fc.ScribeX, &cfg.ScribeX)
	s.setFloatPtr("scribe-y", fc.ScribeY, &cfg.ScribeY)

	s.setFloatPtr("defect-rate", fc.DefectRate, &cfg.DefectRate)
	s.setFloatPtr("critical-area", fc.CriticalArea, &cfg.CriticalArea)
	s.setString("model", fc.Model, &cfg.Model)

	s.setInt64Ptr("seed", fc.Seed, &cfg.Seed)
	s.setInt("runs", fc.Runs, &cfg.Runs)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setString("map", fc.MapPath, &cfg.MapPath)
	s.setString("chart", fc.ChartPath, &cfg.ChartPath)
	s.setString("json", fc.JSONPath, &cfg.JSONPath)
	s.setString("csv", fc.CSVPath, &cfg.CSVPath)

	s.setBool("show-shots", fc.ShowShots, &cfg.ShowShots)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
