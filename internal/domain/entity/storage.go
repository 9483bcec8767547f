package entity

// StorageScope selects the namespace of a key/value item.
type StorageScope string

const (
	// StorageScopeGlobal is shared by every window of the process (and across restarts).
	StorageScopeGlobal StorageScope = "global"
)

// IsValid reports whether the scope is known.
func (s StorageScope) IsValid() bool {
	return s == StorageScopeGlobal
}
