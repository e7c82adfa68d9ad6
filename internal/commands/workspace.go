package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/config"
	"github.com/proforma-dev/proforma/internal/model"
	"github.com/proforma-dev/proforma/internal/render"
	"github.com/proforma-dev/proforma/internal/scenario"
)

// loadWorkspaceConfig reads proforma.yaml from the workspace, falling
// back to defaults when the workspace has no config file.
func loadWorkspaceConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(""), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadScenario resolves the scenario to evaluate: an explicit name or
// file when given, the workspace baseline when one exists, the built-in
// reference scenario otherwise.
func loadScenario(store *scenario.Store, ref string) (scenario.Scenario, error) {
	if ref != "" {
		return store.LoadOne(ref)
	}
	infos, err := store.List()
	if err != nil {
		return scenario.Scenario{}, err
	}
	for _, info := range infos {
		if info.Name == scenario.Default().Name {
			return store.LoadOne(info.Name)
		}
	}
	return scenario.Default(), nil
}

// applySets applies repeated --set driver=value overrides in order.
func applySets(in *model.FinancialInputs, sets []string) error {
	for _, s := range sets {
		key, raw, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("invalid override %q (want driver=value)", s)
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("parsing override %s: %w", key, err)
		}
		if !in.Set(model.DriverKey(key), v) {
			return fmt.Errorf("unknown driver %q (known drivers: %s)", key, driverList())
		}
	}
	return nil
}

func driverList() string {
	keys := model.Drivers()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// parseThreshold reads a threshold from its flag, falling back to the
// workspace config value when the flag is unset.
func parseThreshold(name, flag string, fallback *float64) (*decimal.Decimal, error) {
	if flag != "" {
		v, err := decimal.NewFromString(flag)
		if err != nil {
			return nil, fmt.Errorf("parsing --%s: %w", name, err)
		}
		return &v, nil
	}
	if fallback != nil {
		v := decimal.NewFromFloat(*fallback)
		return &v, nil
	}
	return nil, nil
}

func newRenderer(noColor bool) *render.Renderer {
	if noColor {
		return render.NewRenderer(render.PlainStyles())
	}
	return render.NewRenderer(render.DefaultStyles())
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
