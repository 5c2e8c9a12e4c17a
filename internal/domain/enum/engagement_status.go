package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EngagementStatus tags an engagement as a pending order or a completed trip
type EngagementStatus int

const (
	EngagementStatusPending   EngagementStatus = 0
	EngagementStatusCompleted EngagementStatus = 1
)

func (s EngagementStatus) String() string {
	switch s {
	case EngagementStatusPending:
		return "Pending"
	case EngagementStatusCompleted:
		return "Completed"
	}
	return fmt.Sprintf("EngagementStatus(%d)", int(s))
}

// Route is the operator view an engagement in this state is listed under
func (s EngagementStatus) Route() string {
	if s == EngagementStatusCompleted {
		return "trips"
	}
	return "orders"
}

// Label is the user-facing name of a record in this state
func (s EngagementStatus) Label() string {
	if s == EngagementStatusCompleted {
		return "Trip"
	}
	return "Order"
}

func (s EngagementStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s EngagementStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EngagementStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EngagementStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EngagementStatus(v)
	case int32:
		*s = EngagementStatus(v)
	case int:
		*s = EngagementStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into EngagementStatus", value)
	}
	return nil
}
