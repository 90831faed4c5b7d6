package http

import (
	"time"

	"parcelpilot/internal/core/application/usecases/queries"
)

// Wire DTOs. Read models from the query side are converted one-to-one;
// identifiers travel as canonical UUID strings.

type parcelSummary struct {
	ID               string    `json:"id"`
	TrackingID       string    `json:"trackingId"`
	SenderName       string    `json:"senderName"`
	SenderEmail      string    `json:"senderEmail"`
	SenderDistrict   string    `json:"senderDistrict"`
	ReceiverName     string    `json:"receiverName"`
	ReceiverDistrict string    `json:"receiverDistrict"`
	Cost             float64   `json:"cost"`
	DeliveryStatus   string    `json:"deliveryStatus"`
	PaymentStatus    string    `json:"paymentStatus"`
	RiderName        string    `json:"riderName,omitempty"`
	CreationDate     time.Time `json:"creationDate"`
}

func toParcelSummaries(models []queries.ParcelSummaryResponse) []parcelSummary {
	summaries := make([]parcelSummary, 0, len(models))
	for _, m := range models {
		summaries = append(summaries, parcelSummary{
			ID:               m.ID.String(),
			TrackingID:       m.TrackingID,
			SenderName:       m.SenderName,
			SenderEmail:      m.SenderEmail,
			SenderDistrict:   m.SenderDistrict,
			ReceiverName:     m.ReceiverName,
			ReceiverDistrict: m.ReceiverDistrict,
			Cost:             m.Cost,
			DeliveryStatus:   m.DeliveryStatus,
			PaymentStatus:    m.PaymentStatus,
			RiderName:        m.RiderName,
			CreationDate:     m.CreationDate,
		})
	}
	return summaries
}

type parcelLog struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type parcelDetail struct {
	ID               string      `json:"id"`
	TrackingID       string      `json:"trackingId"`
	SenderName       string      `json:"senderName"`
	SenderEmail      string      `json:"senderEmail"`
	SenderDistrict   string      `json:"senderDistrict"`
	ReceiverName     string      `json:"receiverName"`
	ReceiverAddress  string      `json:"receiverAddress"`
	ReceiverDistrict string      `json:"receiverDistrict"`
	Cost             float64     `json:"cost"`
	DeliveryStatus   string      `json:"deliveryStatus"`
	PaymentStatus    string      `json:"paymentStatus"`
	RiderName        string      `json:"riderName,omitempty"`
	RiderEmail       string      `json:"riderEmail,omitempty"`
	CreationDate     time.Time   `json:"creationDate"`
	Logs             []parcelLog `json:"logs"`
}

func toParcelDetail(m queries.ParcelDetailResponse) parcelDetail {
	logs := make([]parcelLog, 0, len(m.Logs))
	for _, l := range m.Logs {
		logs = append(logs, parcelLog{Status: l.Status, Note: l.Note, Timestamp: l.Timestamp})
	}

	return parcelDetail{
		ID:               m.ID.String(),
		TrackingID:       m.TrackingID,
		SenderName:       m.SenderName,
		SenderEmail:      m.SenderEmail,
		SenderDistrict:   m.SenderDistrict,
		ReceiverName:     m.ReceiverName,
		ReceiverAddress:  m.ReceiverAddress,
		ReceiverDistrict: m.ReceiverDistrict,
		Cost:             m.Cost,
		DeliveryStatus:   m.DeliveryStatus,
		PaymentStatus:    m.PaymentStatus,
		RiderName:        m.RiderName,
		RiderEmail:       m.RiderEmail,
		CreationDate:     m.CreationDate,
		Logs:             logs,
	}
}

type riderProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	District   string  `json:"district,omitempty"`
	Status     string  `json:"status"`
	WorkStatus string  `json:"workStatus"`
	Earnings   float64 `json:"earnings"`
}

func toRiderProfile(m queries.RiderResponse) riderProfile {
	return riderProfile{
		ID:         m.ID.String(),
		Name:       m.Name,
		Email:      m.Email,
		District:   m.District,
		Status:     m.Status,
		WorkStatus: m.WorkStatus,
		Earnings:   m.Earnings,
	}
}

func toRiderProfiles(models []queries.RiderResponse) []riderProfile {
	profiles := make([]riderProfile, 0, len(models))
	for _, m := range models {
		profiles = append(profiles, toRiderProfile(m))
	}
	return profiles
}

type cashoutRecord struct {
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type riderSummary struct {
	RiderEmail     string          `json:"riderEmail"`
	TotalEarned    float64         `json:"totalEarned"`
	TotalCashout   float64         `json:"totalCashout"`
	CurrentBalance float64         `json:"currentBalance"`
	Cashouts       []cashoutRecord `json:"cashouts"`
}

func toRiderSummary(m queries.RiderSummaryResponse) riderSummary {
	cashouts := make([]cashoutRecord, 0, len(m.Cashouts))
	for _, c := range m.Cashouts {
		cashouts = append(cashouts, cashoutRecord{Amount: c.Amount, Timestamp: c.Timestamp})
	}

	return riderSummary{
		RiderEmail:     m.RiderEmail,
		TotalEarned:    m.TotalEarned,
		TotalCashout:   m.TotalCashout,
		CurrentBalance: m.CurrentBalance,
		Cashouts:       cashouts,
	}
}

type userRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

func toUserRecords(models []queries.UserResponse) []userRecord {
	users := make([]userRecord, 0, len(models))
	for _, m := range models {
		users = append(users, userRecord{
			ID:          m.ID.String(),
			Name:        m.Name,
			Email:       m.Email,
			Role:        m.Role,
			CreatedAt:   m.CreatedAt,
			LastLoginAt: m.LastLoginAt,
		})
	}
	return users
}

type paymentRecord struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	TrackingID    string    `json:"trackingId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PayerEmail    string    `json:"payerEmail"`
	TransactionID string    `json:"transactionId"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
}

func toPaymentRecord(m queries.PaymentResponse) paymentRecord {
	return paymentRecord{
		ID:            m.ID.String(),
		ParcelID:      m.ParcelID.String(),
		TrackingID:    m.TrackingID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		PayerEmail:    m.PayerEmail,
		TransactionID: m.TransactionID,
		Method:        m.Method,
		PaidAt:        m.PaidAt,
	}
}

func toPaymentRecords(models []queries.PaymentResponse) []paymentRecord {
	payments := make([]paymentRecord, 0, len(models))
	for _, m := range models {
		payments = append(payments, toPaymentRecord(m))
	}
	return payments
}

type trackingEntry struct {
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Location   string    `json:"location,omitempty"`
	UpdatedBy  string    `json:"updatedBy"`
	Timestamp  time.Time `json:"timestamp"`
}

func toTrackingEntries(models []queries.TrackingEntryResponse) []trackingEntry {
	entries := make([]trackingEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, trackingEntry{
			TrackingID: m.TrackingID,
			Status:     m.Status,
			Location:   m.Location,
			UpdatedBy:  m.UpdatedBy,
			Timestamp:  m.Timestamp,
		})
	}
	return entries
}
