package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ServiceType represents how an order was served
type ServiceType string

const (
	ServiceTypeDineIn   ServiceType = "DINE-IN"
	ServiceTypeTakeAway ServiceType = "TAKE-AWAY"
)

func (t ServiceType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known service types
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeDineIn || t == ServiceTypeTakeAway
}

func (t ServiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ServiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ServiceType(str)
	return nil
}

func (t ServiceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ServiceType) Scan(value interface{}) error {
	if value == nil {
		*t = ServiceTypeDineIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = ServiceType(v)
	case []byte:
		*t = ServiceType(string(v))
	}
	return nil
}
