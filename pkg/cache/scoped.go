package cache

// ScopedKeyer prefixes every key of an inner keyer. The CLI scopes its file
// cache by build version, so tables computed by an older engine are never
// served by a newer one.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "build:"+buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer is
// replaced by the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TableKey generates a prefixed key for a lookup table.
func (k *ScopedKeyer) TableKey(kind string, opts TableKeyOpts) string {
	return k.prefix + k.inner.TableKey(kind, opts)
}

// ArtifactKey generates a prefixed key for a rendered image.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
