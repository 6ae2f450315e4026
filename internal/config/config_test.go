package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/physics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "spring_mass" {
		t.Errorf("unexpected default model %q", cfg.Model)
	}
	if cfg.MinStep <= 0 || cfg.MaxStep <= cfg.MinStep {
		t.Error("default step bounds not ordered")
	}

	ctrl := cfg.NewControl()
	if ctrl.MinStep() != cfg.MinStep || ctrl.MaxStep() != cfg.MaxStep {
		t.Error("control does not carry configured bounds")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("model: lorenz\nduration: 3\nmin_step: 1e-9\nvec_abs_tol: [1e-6, 1e-6, 1e-6]\nvec_rel_tol: [1e-7, 1e-7, 1e-7]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "lorenz" || cfg.Duration != 3 || cfg.MinStep != 1e-9 {
		t.Errorf("loaded values wrong: %+v", cfg)
	}
	if cfg.MaxStep != DefaultMaxStep {
		t.Error("unset keys must keep defaults")
	}
	if len(cfg.VecAbsTol) != 3 {
		t.Errorf("vector tolerances not loaded: %v", cfg.VecAbsTol)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	mu := 2.5
	cfg := DefaultConfig()
	cfg.Model = "vanderpol"
	cfg.Params.Mu = &mu
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "vanderpol" || loaded.Params.Mu == nil || *loaded.Params.Mu != 2.5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestParamsZeroIsNotUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	data := []byte("model: lorenz\nparams:\n  rho: 0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	sys, _, err := cfg.System()
	if err != nil {
		t.Fatal(err)
	}
	lor, ok := sys.(*physics.Lorenz[field.Real])
	if !ok {
		t.Fatalf("expected *physics.Lorenz, got %T", sys)
	}
	if lor.Rho != 0 {
		t.Errorf("explicit rho: 0 must override the default, got %g", lor.Rho)
	}
	if lor.Sigma != 10.0 {
		t.Errorf("absent sigma must keep the default, got %g", lor.Sigma)
	}
}

func TestSystemRegistry(t *testing.T) {
	for _, model := range []string{"spring_mass", "vanderpol", "lorenz"} {
		cfg := DefaultConfig()
		cfg.Model = model

		sys, y0, err := cfg.System()
		if err != nil {
			t.Fatalf("%s: %v", model, err)
		}
		if len(y0) != sys.Dimension() {
			t.Errorf("%s: initial state length %d != dimension %d", model, len(y0), sys.Dimension())
		}
	}
}

func TestSystemUnknownModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "warp_drive"

	if _, _, err := cfg.System(); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestSystemInitStateDimensionCheck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "lorenz"
	cfg.InitState = []float64{1, 2}

	if _, _, err := cfg.System(); err == nil {
		t.Error("expected error for short initial state")
	}
}
