package service

import "github.com/google/uuid"

// newID generates identifiers for newly created records. The catalog keys
// everything by opaque uuid strings rather than store-native object ids.
func newID() string {
	return uuid.NewString()
}
