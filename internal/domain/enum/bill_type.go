package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillType distinguishes income bills from expense bills
type BillType string

const (
	BillTypeIncome  BillType = "income"
	BillTypeExpense BillType = "expense"
)

func (t BillType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known bill types
func (t BillType) IsValid() bool {
	return t == BillTypeIncome || t == BillTypeExpense
}

func (t BillType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *BillType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = BillType(str)
	return nil
}

func (t BillType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *BillType) Scan(value interface{}) error {
	if value == nil {
		*t = BillTypeExpense
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = BillType(v)
	case []byte:
		*t = BillType(string(v))
	}
	return nil
}
