package cache

// TableKeyOpts are the inputs that change a kind's lookup table.
type TableKeyOpts struct {
	Procedure string `json:"procedure"`
}

// ArtifactKeyOpts are the inputs that change a rendered image.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Paths    bool   `json:"paths"`
	Detailed bool   `json:"detailed"`
}

// Keyer builds cache keys.
type Keyer interface {
	// TableKey keys the lookup table of a kind.
	TableKey(kind string, opts TableKeyOpts) string

	// ArtifactKey keys an image of the layout whose JSON hashes to
	// layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs under a type prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// TableKey implements [Keyer].
func (DefaultKeyer) TableKey(kind string, opts TableKeyOpts) string {
	return hashKey("table", KeyVersion, kind, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", KeyVersion, layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
