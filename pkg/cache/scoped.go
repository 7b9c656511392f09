package cache

// ScopedKeyer prefixes every key of an inner [Keyer]. The CLI scopes keys by
// build version so an upgrade never reads scripts written by an older
// renderer; the server scopes them per deployment.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, falling back to a [DefaultKeyer] when inner
// is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ScriptKey(defHash string, opts ScriptKeyOpts) string {
	return k.prefix + k.inner.ScriptKey(defHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(scriptHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(scriptHash, opts)
}

// Prefix returns the scope prefix.
func (k *ScopedKeyer) Prefix() string { return k.prefix }
