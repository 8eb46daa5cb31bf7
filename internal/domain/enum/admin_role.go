package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AdminRole represents the privilege level of an admin account
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

func (r AdminRole) String() string {
	return string(r)
}

// IsValid reports whether the value is one of the known admin roles
func (r AdminRole) IsValid() bool {
	return r == AdminRoleAdmin || r == AdminRoleSuperAdmin
}

func (r AdminRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *AdminRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = AdminRole(str)
	return nil
}

func (r AdminRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *AdminRole) Scan(value interface{}) error {
	if value == nil {
		*r = AdminRoleAdmin
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = AdminRole(v)
	case []byte:
		*r = AdminRole(string(v))
	}
	return nil
}
