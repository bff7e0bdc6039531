package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (DIEYIELD_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("shape", os.Getenv("DIEYIELD_SHAPE"), &cfg.Shape)
	s.setString("model", os.Getenv("DIEYIELD_MODEL"), &cfg.Model)

	floats := []struct {
		flag string
		env  string
		dst  *float64
	}{
		{"diameter", "DIEYIELD_DIAMETER", &cfg.Diameter},
		{"panel-width", "DIEYIELD_PANEL_WIDTH", &cfg.PanelWidth},
		{"panel-height", "DIEYIELD_PANEL_HEIGHT", &cfg.PanelHeight},
		{"edge-margin", "DIEYIELD_EDGE_MARGIN", &cfg.EdgeMargin},
		{"shot-width", "DIEYIELD_SHOT_WIDTH", &cfg.ShotWidth},
		{"shot-height", "DIEYIELD_SHOT_HEIGHT", &cfg.ShotHeight},
		{"die-width", "DIEYIELD_DIE_WIDTH", &cfg.DieWidth},
		{"die-height", "DIEYIELD_DIE_HEIGHT", &cfg.DieHeight},
		{"scribe-x", "DIEYIELD_SCRIBE_X", &cfg.ScribeX},
		{"scribe-y", "DIEYIELD_SCRIBE_Y", &cfg.ScribeY},
		{"defect-rate", "DIEYIELD_DEFECT_RATE", &cfg.DefectRate},
		{"critical-area", "DIEYIELD_CRITICAL_AREA", &cfg.CriticalArea},
	}
	for _, f := range floats {
		if err := s.setFloatFromString(f.flag, os.Getenv(f.env), f.dst); err != nil {
			return err
		}
	}

	if err := s.setInt64FromString("seed", os.Getenv("DIEYIELD_SEED"), &cfg.Seed); err != nil {
		return err
	}
	if err := s.setIntFromString("runs", os.Getenv("DIEYIELD_RUNS"), &cfg.Runs); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("DIEYIELD_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	s.setString("map", os.Getenv("DIEYIELD_MAP"), &cfg.MapPath)
	s.setString("chart", os.Getenv("DIEYIELD_CHART"), &cfg.ChartPath)
	s.setString("json", os.Getenv("DIEYIELD_JSON"), &cfg.JSONPath)
	s.setString("csv", os.Getenv("DIEYIELD_CSV"), &cfg.CSVPath)

	s.setBoolFromString("show-shots", os.Getenv("DIEYIELD_SHOW_SHOTS"), &cfg.ShowShots)
	s.setBoolFromString("watch", os.Getenv("DIEYIELD_WATCH"), &cfg.Watch)

	return nil
}
