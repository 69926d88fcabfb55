// Package seed loads the startup catalog from CUE files.
//
// Seed files declare categories and products; the embedded schema
// (schema.cue) constrains them before anything reaches the catalog:
// non-empty ids and names, non-negative prices, and a guarantee that no
// product claims the "All" filter sentinel as its category.
//
// The embedded Satya General Store catalog (satya.cue) is used when no
// seed directory is configured.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/quickcart/internal/model"
)

//go:embed schema.cue
var schemaCUE string

//go:embed satya.cue
var defaultCUE string

// Seed is a validated startup catalog.
type Seed struct {
	Categories []string        `json:"categories"`
	Products   []model.Product `json:"products"`
}

// Default returns the embedded Satya General Store seed.
// Panics on error: the embedded seed is validated by tests and cannot
// fail at runtime without a broken build.
func Default() Seed {
	s, err := compile(map[string]string{"satya.cue": defaultCUE})
	if err != nil {
		panic(fmt.Sprintf("embedded seed invalid: %v", err))
	}
	return s
}

// Load reads every *.cue file in dir, unifies them with the schema, and
// decodes the result. Multiple files merge per normal CUE unification.
func Load(dir string) (Seed, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return Seed{}, fmt.Errorf("seed directory not found: %s", dir)
	}
	if err != nil {
		return Seed{}, fmt.Errorf("error accessing seed directory: %w", err)
	}
	if !info.IsDir() {
		return Seed{}, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := findCUEFiles(dir)
	if err != nil {
		return Seed{}, fmt.Errorf("error scanning seed directory: %w", err)
	}
	if len(files) == 0 {
		return Seed{}, fmt.Errorf("no CUE files found in %s", dir)
	}

	sources := make(map[string]string, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed file: %w", err)
		}
		sources[path] = string(data)
	}

	return compile(sources)
}

// findCUEFiles returns the .cue files directly inside dir, sorted by
// name so unification order is deterministic.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".cue") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// compile unifies the given sources with the schema and decodes the
// seed. Validation failures carry CUE file positions.
func compile(sources map[string]string) (Seed, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Seed{}, fmt.Errorf("compiling seed schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Seed"))
	if err := def.Err(); err != nil {
		return Seed{}, fmt.Errorf("looking up #Seed: %w", err)
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	value := def
	for _, name := range names {
		v := ctx.CompileString(sources[name], cue.Filename(name))
		if err := v.Err(); err != nil {
			return Seed{}, fmt.Errorf("compiling %s: %s", name, cueerrors.Details(err, nil))
		}
		value = value.Unify(v)
	}

	if err := value.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return Seed{}, fmt.Errorf("invalid seed: %s", cueerrors.Details(err, nil))
	}

	var s Seed
	if err := value.Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("decoding seed: %w", err)
	}

	if err := checkUniqueIDs(s.Products); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// checkUniqueIDs rejects duplicate product ids. CUE unification cannot
// express list-wide uniqueness cleanly, so it is checked after decode.
func checkUniqueIDs(products []model.Product) error {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return fmt.Errorf("invalid seed: duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
