package entities

// NotificationKind identifies the logical event being announced.

type NotificationKind string

const (
	NotificationKindEstimateProposed NotificationKind = "estimate.proposed"
	NotificationKindEstimateAccepted NotificationKind = "estimate.accepted"
)

// Notification is the logical event handed to the outbound delivery
// collaborator after a state transition commits. Delivery is best effort:
// the engine never rolls back a committed transition over a publish failure.
type Notification struct {
	RecipientID string           `json:"recipient_id"`
	Kind        NotificationKind `json:"kind"`
	RequestID   string           `json:"request_id"`
}
