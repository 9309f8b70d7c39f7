// Package model defines the persisted records of spanset.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Key prefixes and singleton keys.
const (
	PrefixSetting = "setting"
	PrefixChange  = "change"
	KeyConfig     = "config"
)
