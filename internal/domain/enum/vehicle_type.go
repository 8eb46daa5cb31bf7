package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VehicleType represents the registration class of a vehicle
type VehicleType string

const (
	VehicleTypePrivate VehicleType = "private"
	VehicleTypePublic  VehicleType = "public"
)

func (t VehicleType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known vehicle types
func (t VehicleType) IsValid() bool {
	return t == VehicleTypePrivate || t == VehicleTypePublic
}

func (t VehicleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *VehicleType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = VehicleType(str)
	return nil
}

func (t VehicleType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *VehicleType) Scan(value interface{}) error {
	if value == nil {
		*t = VehicleTypePrivate
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = VehicleType(v)
	case []byte:
		*t = VehicleType(string(v))
	}
	return nil
}
