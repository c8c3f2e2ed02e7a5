package schema

import (
	"time"
)

// NotificationResponse is the response state of a hospital notification.
// A record moves from pending to exactly one terminal value.
type NotificationResponse string

const (
	ResponsePending   NotificationResponse = "pending"
	ResponseAccepted  NotificationResponse = "accepted"
	ResponseRejected  NotificationResponse = "rejected"
	ResponseCancelled NotificationResponse = "cancelled"
)

// NotificationRecord tracks one hospital's involvement in a case. Records
// are embedded in the case document; the dispatcher creates at most one
// per (case, hospital) pair.
type NotificationRecord struct {
	HospitalID  string               `json:"hospital_id" bson:"hospital_id"`
	NotifiedAt  time.Time            `json:"notified_at" bson:"notified_at"`
	RespondedAt *time.Time           `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
	Response    NotificationResponse `json:"response" bson:"response"`
	Reason      RejectionReason      `json:"reason,omitempty" bson:"reason,omitempty"`
	ReasonNote  string               `json:"reason_note,omitempty" bson:"reason_note,omitempty"`
	Score       int                  `json:"score" bson:"score"`
	Rank        int                  `json:"rank" bson:"rank"`
}
