// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. The embedded audit trail is stored as a JSONB
// column on the parcel row, so a status change and its log append always
// land in the same write.
package parcelrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The assigned rider is denormalized into nullable columns;
// the log trail lives in the logs JSONB column.
type ParcelDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	SenderName       string    `gorm:"type:varchar(255);not null"`
	SenderEmail      string    `gorm:"type:varchar(255);not null;index"`
	SenderDistrict   string    `gorm:"type:varchar(255);not null"`
	ReceiverName     string    `gorm:"type:varchar(255);not null"`
	ReceiverAddress  string    `gorm:"type:varchar(512);not null"`
	ReceiverDistrict string    `gorm:"type:varchar(255);not null"`
	Cost             float64   `gorm:"type:numeric;not null"`
	DeliveryStatus   string    `gorm:"type:varchar(32);not null;index"`
	PaymentStatus    string    `gorm:"type:varchar(32);not null;index"`

	RiderID    *uuid.UUID `gorm:"type:uuid"`
	RiderName  *string    `gorm:"type:varchar(255)"`
	RiderEmail *string    `gorm:"type:varchar(255);index"`

	CreationDate time.Time `gorm:"not null;index"`
	Logs         LogDocs   `gorm:"type:jsonb;not null"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// logDoc is the JSON shape of one audit trail entry.
type logDoc struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// LogDocs stores the parcel audit trail as a JSONB document.
type LogDocs []logDoc

// Value implements driver.Valuer for JSONB storage.
func (l LogDocs) Value() (driver.Value, error) {
	if l == nil {
		l = LogDocs{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (l *LogDocs) Scan(value any) error {
	if value == nil {
		*l = LogDocs{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for log documents", value)
	}
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	logs := make(LogDocs, 0, len(aggregate.Logs()))
	for _, entry := range aggregate.Logs() {
		logs = append(logs, logDoc{
			Status:    entry.Status(),
			Note:      entry.Note(),
			Timestamp: entry.Timestamp(),
		})
	}

	dto := ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingID:       aggregate.TrackingID(),
		SenderName:       aggregate.SenderName(),
		SenderEmail:      aggregate.SenderEmail(),
		SenderDistrict:   aggregate.SenderDistrict().Name(),
		ReceiverName:     aggregate.ReceiverName(),
		ReceiverAddress:  aggregate.ReceiverAddress(),
		ReceiverDistrict: aggregate.ReceiverDistrict().Name(),
		Cost:             aggregate.Cost(),
		DeliveryStatus:   aggregate.DeliveryStatus().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		CreationDate:     aggregate.CreationDate(),
		Logs:             logs,
	}

	if rider := aggregate.AssignedRider(); rider != nil {
		riderID := rider.ID.Bytes()
		riderName := rider.Name
		riderEmail := rider.Email
		dto.RiderID = &riderID
		dto.RiderName = &riderName
		dto.RiderEmail = &riderEmail
	}

	return dto
}

// toDomain converts a database DTO back to a parcel aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderDistrict, err := kernel.NewDistrict(dto.SenderDistrict)
	if err != nil {
		return nil, err
	}
	receiverDistrict, err := kernel.NewDistrict(dto.ReceiverDistrict)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := parcel.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var assignedRider *parcel.AssignedRider
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		assignedRider = &parcel.AssignedRider{ID: riderID}
		if dto.RiderName != nil {
			assignedRider.Name = *dto.RiderName
		}
		if dto.RiderEmail != nil {
			assignedRider.Email = *dto.RiderEmail
		}
	}

	logs := make([]parcel.LogEntry, 0, len(dto.Logs))
	for _, doc := range dto.Logs {
		entry, logErr := parcel.NewLogEntry(doc.Status, doc.Note, doc.Timestamp)
		if logErr != nil {
			return nil, logErr
		}
		logs = append(logs, entry)
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingID,
		dto.SenderName,
		dto.SenderEmail,
		senderDistrict,
		dto.ReceiverName,
		dto.ReceiverAddress,
		receiverDistrict,
		dto.Cost,
		deliveryStatus,
		paymentStatus,
		assignedRider,
		dto.CreationDate,
		logs,
	)
}
