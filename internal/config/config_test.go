package config

import (
	"path/filepath"
	"testing"

	"github.com/ecodyn/metaflux/internal/foodweb"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Temperature <= 0 {
		t.Error("temperature should be positive")
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if cfg.Stop <= cfg.Start {
		t.Error("stop should be after start")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("single-species")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Compartments) != 3 {
		t.Errorf("expected 3 compartments, got %d", len(cfg.Compartments))
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestBuildContext(t *testing.T) {
	for name, cfg := range Presets {
		t.Run(name, func(t *testing.T) {
			ctx, err := cfg.BuildContext()
			if err != nil {
				t.Fatalf("BuildContext: %v", err)
			}
			if ctx.Resource == ctx.Consumer {
				t.Error("resource and consumer indices coincide")
			}
			if _, ok := ctx.Web.Compartments[ctx.Resource].(*foodweb.NutrientPool); !ok {
				t.Error("resource index does not point at the nutrient pool")
			}
			if _, ok := ctx.Web.Compartments[ctx.Consumer].(*foodweb.CarbonPool); !ok {
				t.Error("consumer index does not point at the carbon pool")
			}
			if got := len(cfg.InitState()); got != ctx.Web.Size() {
				t.Errorf("init state length %d != web size %d", got, ctx.Web.Size())
			}
		})
	}
}

func TestBuildEcosystemUnknownKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compartments = []CompartmentConfig{{Kind: "fungus"}}
	if _, err := cfg.BuildEcosystem(); err == nil {
		t.Error("expected error for unknown compartment kind")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	want := GetPreset("chain")

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Temperature != want.Temperature {
		t.Errorf("temperature = %v, want %v", got.Temperature, want.Temperature)
	}
	if len(got.Compartments) != len(want.Compartments) {
		t.Fatalf("compartments = %d, want %d", len(got.Compartments), len(want.Compartments))
	}
	if got.Compartments[1].Kc != want.Compartments[1].Kc {
		t.Errorf("kc = %v, want %v", got.Compartments[1].Kc, want.Compartments[1].Kc)
	}
}

func TestSolverOptionsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver = SolverConfig{}
	opts := cfg.SolverOptions()
	if opts.MaxStep <= 0 || opts.Tolerance <= 0 || opts.MaxIter <= 0 {
		t.Errorf("unset solver fields should fall back to defaults, got %+v", opts)
	}
}
