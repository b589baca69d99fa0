package keymap

type scopedKey struct {
	ctx Context
	key string
}

// Resolver maps key strings to actions, honoring section contexts.
type Resolver struct {
	bindings map[scopedKey]Action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[scopedKey]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[scopedKey{b.Context, key}] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action for a key in ctx, falling back to global
// bindings. It returns an empty Action when the key is unbound.
func (r *Resolver) Resolve(ctx Context, key string) Action {
	if a, ok := r.bindings[scopedKey{ctx, key}]; ok {
		return a
	}
	return r.bindings[scopedKey{Global, key}]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
