package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role is a closed enumeration of the roles a user may hold.
type Role string

// The complete set of valid roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// RoleList is the set of roles assigned to a user. It is persisted as a
// JSON array in a text column so Postgres and the SQLite test database
// share one representation.
type RoleList []Role

// Value implements driver.Valuer for database storage.
func (r RoleList) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roles: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval.
func (r *RoleList) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported roles column type %T", src)
	}
	return json.Unmarshal(b, r)
}
