package registry

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/datatypes"
	"github.com/wippyai/datatypes/errors"
)

// Registry holds data type definitions indexed by name and alias.
type Registry struct {
	mu sync.RWMutex

	ordered []datatypes.Definition
	byName  map[string]datatypes.Definition
	byAlias map[string]datatypes.Definition
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]datatypes.Definition),
		byAlias: make(map[string]datatypes.Definition),
	}
}

// Register adds a definition. The definition's name and every alias must be
// unused, case-insensitively, across both namespaces; otherwise the
// registration is rejected and the registry is left unchanged.
func (r *Registry) Register(def datatypes.Definition) error {
	base := def.Base()
	name := strings.ToLower(base.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return errors.DuplicateName(errors.PhaseRegister, base.Name, def.Kind().String())
	}
	aliases := make([]string, 0, len(base.Aliases))
	for _, alias := range base.Aliases {
		alias = strings.ToLower(alias)
		if r.taken(alias) {
			return errors.New(errors.PhaseRegister, errors.KindDuplicateName).
				Name(base.Name).
				DataType(def.Kind().String()).
				Detail("alias %q already exists", alias).
				Build()
		}
		aliases = append(aliases, alias)
	}

	r.ordered = append(r.ordered, def)
	r.byName[name] = def
	for _, alias := range aliases {
		r.byAlias[alias] = def
	}

	Logger().Debug("registered definition",
		zap.String("name", base.Name),
		zap.String("kind", def.Kind().String()),
		zap.Strings("aliases", base.Aliases))
	return nil
}

func (r *Registry) taken(key string) bool {
	if _, ok := r.byName[key]; ok {
		return true
	}
	_, ok := r.byAlias[key]
	return ok
}

// Deregister removes a previously registered definition and its aliases.
func (r *Registry) Deregister(def datatypes.Definition) error {
	base := def.Base()
	name := strings.ToLower(base.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return errors.NotFound(errors.PhaseRegister, base.Name)
	}

	delete(r.byName, name)
	for _, alias := range base.Aliases {
		delete(r.byAlias, strings.ToLower(alias))
	}
	for i, registered := range r.ordered {
		if registered == def {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}

	Logger().Debug("deregistered definition", zap.String("name", base.Name))
	return nil
}

// Find looks up a definition by name or alias, case-insensitively.
func (r *Registry) Find(name string) (datatypes.Definition, bool) {
	key := strings.ToLower(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if def, ok := r.byName[key]; ok {
		return def, true
	}
	def, ok := r.byAlias[key]
	return def, ok
}

// All returns the registered definitions in registration order.
func (r *Registry) All() []datatypes.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]datatypes.Definition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
