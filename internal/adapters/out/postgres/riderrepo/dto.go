// Package riderrepo provides data transfer objects and mapping functions
// for rider persistence. The ledger fields and cashout history are stored
// on the rider row, with the history as a JSONB column so a cashout and
// its totals update land in the same write.
package riderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider
// aggregates.
type RiderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Email        string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	District     *string     `gorm:"type:varchar(255)"`
	Status       string      `gorm:"type:varchar(32);not null;index"`
	WorkStatus   string      `gorm:"type:varchar(32);not null"`
	Earnings     float64     `gorm:"type:numeric;not null"`
	TotalEarned  float64     `gorm:"type:numeric;not null"`
	TotalCashout float64     `gorm:"type:numeric;not null"`
	Cashouts     CashoutDocs `gorm:"type:jsonb;not null"`
}

// TableName overrides GORM's default naming to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

// cashoutDoc is the JSON shape of one withdrawal.
type cashoutDoc struct {
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// CashoutDocs stores the cashout history as a JSONB document.
type CashoutDocs []cashoutDoc

// Value implements driver.Valuer for JSONB storage.
func (c CashoutDocs) Value() (driver.Value, error) {
	if c == nil {
		c = CashoutDocs{}
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (c *CashoutDocs) Scan(value any) error {
	if value == nil {
		*c = CashoutDocs{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type %T for cashout documents", value)
	}
}

// fromDomain converts a rider aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	cashouts := make(CashoutDocs, 0, len(aggregate.Cashouts()))
	for _, entry := range aggregate.Cashouts() {
		cashouts = append(cashouts, cashoutDoc{
			Amount:    entry.Amount(),
			Timestamp: entry.Timestamp(),
		})
	}

	dto := RiderDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Status:       aggregate.Status().String(),
		WorkStatus:   aggregate.WorkStatus().String(),
		Earnings:     aggregate.Earnings(),
		TotalEarned:  aggregate.TotalEarned(),
		TotalCashout: aggregate.TotalCashout(),
		Cashouts:     cashouts,
	}

	if district := aggregate.District(); district != nil {
		name := district.Name()
		dto.District = &name
	}

	return dto
}

// toDomain converts a database DTO back to a rider aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var district *kernel.District
	if dto.District != nil {
		d, districtErr := kernel.NewDistrict(*dto.District)
		if districtErr != nil {
			return nil, districtErr
		}
		district = &d
	}

	status, err := rider.ApprovalStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	workStatus, err := rider.WorkStatusFromString(dto.WorkStatus)
	if err != nil {
		return nil, err
	}

	cashouts := make([]rider.CashoutEntry, 0, len(dto.Cashouts))
	for _, doc := range dto.Cashouts {
		entry, cashoutErr := rider.NewCashoutEntry(doc.Amount, doc.Timestamp)
		if cashoutErr != nil {
			return nil, cashoutErr
		}
		cashouts = append(cashouts, entry)
	}

	return rider.RestoreRider(
		id,
		dto.Name,
		dto.Email,
		district,
		status,
		workStatus,
		dto.Earnings,
		dto.TotalEarned,
		dto.TotalCashout,
		cashouts,
	)
}
