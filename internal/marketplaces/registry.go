// internal/marketplaces/registry.go
package marketplaces

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Factory{}
)

func Register(name string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = f
}

func Get(name string) (Factory, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names zwraca zarejestrowane nazwy, posortowane.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build tworzy feed o podanej nazwie z surowego JSON-a konfiguracji.
func Build(name string, log zerolog.Logger, raw json.RawMessage) (Feed, error) {
	f, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown marketplace %q (available: %v)", name, Names())
	}
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	feed, err := f(log.With().Str("marketplace", name).Logger(), raw)
	if err != nil {
		return nil, fmt.Errorf("marketplace %q: %w", name, err)
	}
	return feed, nil
}
