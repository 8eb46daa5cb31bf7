package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EmployeeType represents the kind of staff record
type EmployeeType string

const (
	EmployeeTypeEmployee EmployeeType = "employee"
	EmployeeTypeAgent    EmployeeType = "agent"
)

func (t EmployeeType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known employee types
func (t EmployeeType) IsValid() bool {
	return t == EmployeeTypeEmployee || t == EmployeeTypeAgent
}

func (t EmployeeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *EmployeeType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = EmployeeType(str)
	return nil
}

func (t EmployeeType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *EmployeeType) Scan(value interface{}) error {
	if value == nil {
		*t = EmployeeTypeEmployee
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = EmployeeType(v)
	case []byte:
		*t = EmployeeType(string(v))
	}
	return nil
}
