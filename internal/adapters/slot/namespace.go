package slot

import (
	"strings"

	"tempo/internal/ports"
)

// Namespaced prefixes every key so several identities can share one backend
type Namespaced struct {
	inner  ports.KeyValueSlot
	prefix string
}

// Verify interface compliance at compile time
var _ ports.KeyValueSlot = (*Namespaced)(nil)

// WithNamespace wraps inner so keys become "<namespace>/<key>".
// An empty namespace returns inner unchanged.
func WithNamespace(inner ports.KeyValueSlot, namespace string) ports.KeyValueSlot {
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	if namespace == "" {
		return inner
	}
	return &Namespaced{inner: inner, prefix: namespace + "/"}
}

func (n *Namespaced) Get(key string) (string, error) {
	return n.inner.Get(n.prefix + key)
}

func (n *Namespaced) Set(key, value string) error {
	return n.inner.Set(n.prefix+key, value)
}

func (n *Namespaced) Remove(key string) error {
	return n.inner.Remove(n.prefix + key)
}
