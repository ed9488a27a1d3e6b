package selstore

type storeConfig struct {
	selected []int
	multiple bool
}

// Option configures a Store during construction.
type Option func(*storeConfig)

// WithSelected sets the initially selected indexes. Every index must
// point to an existing item, otherwise New fails with ErrInvalidSelected.
// The indexes are stored as given: they are neither deduplicated nor
// truncated to a single entry for single-select stores.
func WithSelected(indexes ...int) Option {
	return func(cfg *storeConfig) {
		cfg.selected = append(cfg.selected, indexes...)
	}
}

// WithMultiple turns multi-select mode on or off. Stores are
// single-select by default.
func WithMultiple(b bool) Option {
	return func(cfg *storeConfig) {
		cfg.multiple = b
	}
}
