// Package registry provides the global table of drill modes.
// Each arithmetic operation registers its question generator in an init()
// function, allowing the engine and front ends to discover modes without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/jungle-drill/internal/core"
)

// Generator builds the question for a board cell. It must be a pure function
// of its arguments: any randomness has to come from rng.
type Generator func(row, col int, rng *rand.Rand) core.Question

// Mode is a registered drill mode.
type Mode struct {
	ID        string
	Title     string
	Generator Generator
	order     int
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	if g == nil {
		panic(fmt.Sprintf("registry: mode %q has no generator", id))
	}

	modes[id] = Mode{ID: id, Title: title, Generator: g, order: len(modes)}
}

// List returns all registered modes in registration order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	sorted := make([]Mode, 0, len(modes))
	for _, m := range modes {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].order != sorted[j].order {
			return sorted[i].order < sorted[j].order
		}
		return sorted[i].ID < sorted[j].ID
	})

	result := make([]ModeInfo, len(sorted))
	for i, m := range sorted {
		result[i] = ModeInfo{ID: m.ID, Title: m.Title}
	}
	return result
}

// Lookup returns the mode registered under id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	return m, ok
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Title returns the display title for id, or id itself when unknown.
func Title(id string) string {
	if m, ok := Lookup(id); ok {
		return m.Title
	}
	return id
}

// Generate produces the question for (mode, row, col). The generator
// receives an rng seeded from (seed, mode, row, col) so the same arguments
// always give the same question.
func Generate(id string, row, col int, seed int64) (core.Question, error) {
	m, ok := Lookup(id)
	if !ok {
		return core.Question{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m.Generator(row, col, CellRand(seed, id, row, col)), nil
}

// CellRand returns a deterministic rng for a single board cell.
func CellRand(seed int64, id string, row, col int) *rand.Rand {
	h := fnv.New64a()
	//nolint:errcheck // hash writes never fail
	fmt.Fprintf(h, "%d:%s:%d:%d", seed, id, row, col)
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Suggest returns the registered id closest to the given (unknown) id.
// ok is false when nothing is close enough to be a plausible typo.
func Suggest(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(id))
	best := ""
	bestDist := -1
	for candidate := range modes {
		dist := levenshtein.ComputeDistance(needle, candidate)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}

	if bestDist < 0 || bestDist > suggestLimit(len(best)) {
		return "", false
	}
	return best, true
}

// suggestLimit is the largest edit distance still treated as a typo.
func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
