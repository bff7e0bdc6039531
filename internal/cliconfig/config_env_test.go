package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "applies valid env vars",
			envVars: map[string]string{
				"DIEYIELD_SHAPE":         "Panel",
				"DIEYIELD_PANEL_WIDTH":   "600",
				"DIEYIELD_PANEL_HEIGHT":  "600",
				"DIEYIELD_EDGE_MARGIN":   "2.5",
				"DIEYIELD_MODEL":         "Rectangular",
				"DIEYIELD_DEFECT_RATE":   "0.25",
				"DIEYIELD_CRITICAL_AREA": "10",
				"DIEYIELD_SEED":          "-3",
				"DIEYIELD_RUNS":          "12",
				"DIEYIELD_WORKERS":       "4",
				"DIEYIELD_WATCH":         "true",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Shape != "Panel" || cfg.PanelWidth != 600 || cfg.PanelHeight != 600 {
					t.Fatalf("substrate env not applied: %+v", cfg)
				}
				if cfg.EdgeMargin != 2.5 {
					t.Fatalf("edge margin = %g, want 2.5", cfg.EdgeMargin)
				}
				if cfg.Model != "Rectangular" || cfg.DefectRate != 0.25 || cfg.CriticalArea != 10 {
					t.Fatalf("yield env not applied: %+v", cfg)
				}
				if cfg.Seed != -3 || cfg.Runs != 12 || cfg.Workers != 4 {
					t.Fatalf("simulation env not applied: seed=%d runs=%d workers=%d", cfg.Seed, cfg.Runs, cfg.Workers)
				}
				if !cfg.Watch {
					t.Fatal("watch env not applied")
				}
			},
		},
		{
			name: "env zero is explicit",
			envVars: map[string]string{
				"DIEYIELD_SCRIBE_X":    "0",
				"DIEYIELD_SCRIBE_Y":    "0",
				"DIEYIELD_DEFECT_RATE": "0",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.ScribeX != 0 || cfg.ScribeY != 0 || cfg.DefectRate != 0 {
					t.Fatalf("env zeros ignored: %+v", cfg)
				}
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"DIEYIELD_SHAPE":    "Panel",
				"DIEYIELD_DIAMETER": "450",
			},
			changed: map[string]bool{"shape": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.Shape != "Wafer" {
					t.Fatalf("env overrode an explicit --shape flag: %s", cfg.Shape)
				}
				if cfg.Diameter != 450 {
					t.Fatalf("unflagged diameter not applied: %g", cfg.Diameter)
				}
			},
		},
		{
			name:    "invalid float reports error",
			envVars: map[string]string{"DIEYIELD_DIAMETER": "big"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid int reports error",
			envVars: map[string]string{"DIEYIELD_RUNS": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig returned error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
