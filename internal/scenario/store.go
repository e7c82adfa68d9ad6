package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// scenariosDir is the workspace subdirectory holding scenario files.
const scenariosDir = "scenarios"

// FileInfo describes a scenario file in the workspace.
type FileInfo struct {
	Name   string
	Path   string
	Format string
}

// Store reads and writes scenario files under a workspace root.
type Store struct {
	dir      string
	registry *Registry
}

// NewStore creates a Store rooted at a workspace directory.
func NewStore(root string) *Store {
	return &Store{
		dir:      filepath.Join(root, scenariosDir),
		registry: DefaultRegistry(),
	}
}

// List returns scenario files in the workspace, sorted by name.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading scenarios dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format := DetectFormat(e.Name())
		if format == "" {
			continue
		}
		files = append(files, FileInfo{
			Name:   trimExt(e.Name()),
			Path:   filepath.Join(s.dir, e.Name()),
			Format: format,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Load resolves ref as either a scenario name in the workspace or a
// path to a scenario file, and parses it. A file may hold several
// scenarios (CSV batches); Load returns them all.
func (s *Store) Load(ref string) ([]Scenario, error) {
	path := ref
	if !isPath(ref) {
		resolved, err := s.resolveName(ref)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	format := DetectFormat(path)
	parser := s.registry.Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unsupported scenario format for %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	scenarios, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return scenarios, nil
}

// LoadOne is Load restricted to a single scenario. A batch file is an
// error so callers never silently pick one row of many.
func (s *Store) LoadOne(ref string) (Scenario, error) {
	scenarios, err := s.Load(ref)
	if err != nil {
		return Scenario{}, err
	}
	if len(scenarios) != 1 {
		return Scenario{}, fmt.Errorf("%s holds %d scenarios, expected one", ref, len(scenarios))
	}
	return scenarios[0], nil
}

// Save writes a scenario as <name>.yaml under the scenarios directory.
func (s *Store) Save(sc Scenario) (string, error) {
	if sc.Name == "" {
		return "", fmt.Errorf("scenario name is required")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating scenarios dir: %w", err)
	}

	path := filepath.Join(s.dir, sc.Name+".yaml")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating scenario file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, sc); err != nil {
		return "", fmt.Errorf("writing scenario %s: %w", sc.Name, err)
	}
	return path, nil
}

// resolveName maps a bare scenario name to its file, erroring with the
// available names when it is absent.
func (s *Store) resolveName(name string) (string, error) {
	files, err := s.List()
	if err != nil {
		return "", err
	}
	var names []string
	for _, fi := range files {
		if fi.Name == name {
			return fi.Path, nil
		}
		names = append(names, fi.Name)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("scenario %q not found: no scenarios in workspace", name)
	}
	return "", fmt.Errorf("scenario %q not found (available: %s)", name, strings.Join(names, ", "))
}

func isPath(ref string) bool {
	return strings.ContainsRune(ref, os.PathSeparator) || DetectFormat(ref) != ""
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
