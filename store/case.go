package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-inc/dispatch-api/schema"
)

var (
	ErrCaseNotFound           = fmt.Errorf("case not found")
	ErrCaseAlreadyAccepted    = fmt.Errorf("case has already been accepted by another hospital")
	ErrNotificationNotPending = fmt.Errorf("no pending notification for this hospital")
	ErrCaseNotEscalatable     = fmt.Errorf("case is not awaiting responses")
	ErrOverrideAlreadyUsed    = fmt.Errorf("override has already been used for this case")
	ErrOverrideNotAllowed     = fmt.Errorf("override requires an escalated case")
	ErrInvalidTransition      = fmt.Errorf("invalid case status transition")
)

// CaseOperator covers every case mutation of the dispatch workflow. All
// state-changing operations are conditional single-document updates: the
// filter re-reads the current status, so concurrent writers race on the
// database's atomicity instead of ours.
type CaseOperator interface {
	CreateCase(c *schema.EmergencyCase) error
	GetCase(id string) (*schema.EmergencyCase, error)
	TransitionCase(id string, to schema.CaseStatus) error
	ListCasesByStatus(status schema.CaseStatus) ([]schema.EmergencyCase, error)

	AppendNotifications(caseID string, records []schema.NotificationRecord) (int, error)
	MarkAwaitingResponse(caseID string, at time.Time) error
	AcceptCase(caseID, hospitalID string, at time.Time) (*schema.EmergencyCase, []string, error)
	RejectNotification(caseID, hospitalID string, reason schema.RejectionReason, note string, at time.Time) (*schema.EmergencyCase, error)
	MarkEscalated(caseID, reason string) error
	ConfirmOverride(caseID, hospitalID string, at time.Time) error
}

func (m *mongoDB) cases() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.CaseCollection)
}

// CreateCase inserts a new case document.
func (m *mongoDB) CreateCase(c *schema.EmergencyCase) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = schema.CaseCreated
	}
	if c.HospitalNotifications == nil {
		c.HospitalNotifications = []schema.NotificationRecord{}
	}

	_, err := m.cases().InsertOne(ctx, c)
	return err
}

// GetCase loads one case aggregate.
func (m *mongoDB) GetCase(id string) (*schema.EmergencyCase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var c schema.EmergencyCase
	err := m.cases().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// TransitionCase moves a case along the lifecycle table. The source
// states are part of the filter, making an illegal transition a no-op
// rather than a lost update.
func (m *mongoDB) TransitionCase(id string, to schema.CaseStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	sources := schema.TransitionSources(to)
	if len(sources) == 0 {
		return ErrInvalidTransition
	}

	result, err := m.cases().UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": sources}},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		if _, err := m.GetCase(id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	return nil
}

// ListCasesByStatus returns every case currently in one status. The
// escalation scanner polls awaiting_response through this.
func (m *mongoDB) ListCasesByStatus(status schema.CaseStatus) ([]schema.EmergencyCase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.cases().Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cases := []schema.EmergencyCase{}
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// AppendNotifications adds notification records, at most one per hospital
// per case regardless of concurrent dispatch attempts: the filter refuses
// the push when a record for that hospital already exists. Returns how
// many records were actually created.
func (m *mongoDB) AppendNotifications(caseID string, records []schema.NotificationRecord) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	appended := 0
	for _, r := range records {
		result, err := m.cases().UpdateOne(ctx,
			bson.M{
				"_id":                                caseID,
				"hospital_notifications.hospital_id": bson.M{"$ne": r.HospitalID},
			},
			bson.M{
				"$push": bson.M{"hospital_notifications": r},
				"$set":  bson.M{"updated_at": time.Now()},
			},
		)
		if err != nil {
			return appended, err
		}
		if result.MatchedCount == 0 {
			// either the case is gone or the hospital was already
			// notified; only the former is an error
			if _, err := m.GetCase(caseID); err != nil {
				return appended, err
			}
			continue
		}
		appended++
	}
	return appended, nil
}

// MarkAwaitingResponse stamps the response clock on the first notification
// round only. Later rounds leave awaiting_response_since untouched so the
// escalation timeout keeps measuring from the first ask.
func (m *mongoDB) MarkAwaitingResponse(caseID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.cases().UpdateOne(ctx,
		bson.M{
			"_id": caseID,
			"status": bson.M{"$in": []schema.CaseStatus{
				schema.CaseCreated, schema.CaseTriaged, schema.CaseDispatched,
			}},
		},
		bson.M{"$set": bson.M{
			"status":                  schema.CaseAwaitingResponse,
			"awaiting_response_since": at,
			"updated_at":              at,
		}},
	)
	return err
}

// AcceptCase is the accept-vs-accept race arbiter. The filter demands the
// case is still acceptable AND this hospital's notification is still
// pending; mongo's single-document atomicity guarantees exactly one
// winner. On success every other pending notification flips to cancelled
// and the cancelled hospital ids are returned.
func (m *mongoDB) AcceptCase(caseID, hospitalID string, at time.Time) (*schema.EmergencyCase, []string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	acceptable := []schema.CaseStatus{
		schema.CaseAwaitingResponse,
		schema.CaseEscalationRequired,
		schema.CaseDispatcherOverride,
	}

	result, err := m.cases().UpdateOne(ctx,
		bson.M{
			"_id":                  caseID,
			"status":               bson.M{"$in": acceptable},
			"accepted_hospital_id": "",
			"hospital_notifications": bson.M{"$elemMatch": bson.M{
				"hospital_id": hospitalID,
				"response":    schema.ResponsePending,
			}},
		},
		bson.M{"$set": bson.M{
			"status":                                schema.CaseAccepted,
			"accepted_hospital_id":                  hospitalID,
			"accepted_at":                           at,
			"updated_at":                            at,
			"hospital_notifications.$.response":     schema.ResponseAccepted,
			"hospital_notifications.$.responded_at": at,
		}},
	)
	if err != nil {
		return nil, nil, err
	}
	if result.ModifiedCount == 0 {
		c, err := m.GetCase(caseID)
		if err != nil {
			return nil, nil, err
		}
		if c.AcceptedHospitalID != "" || c.Status == schema.CaseAccepted {
			return nil, nil, ErrCaseAlreadyAccepted
		}
		return nil, nil, ErrNotificationNotPending
	}

	// the winner is decided; everything still pending gets cancelled
	c, err := m.GetCase(caseID)
	if err != nil {
		return nil, nil, err
	}
	cancelled := []string{}
	for _, n := range c.HospitalNotifications {
		if n.Response == schema.ResponsePending {
			cancelled = append(cancelled, n.HospitalID)
		}
	}

	if len(cancelled) > 0 {
		_, err = m.cases().UpdateOne(ctx,
			bson.M{"_id": caseID},
			bson.M{"$set": bson.M{
				"hospital_notifications.$[pending].response":     schema.ResponseCancelled,
				"hospital_notifications.$[pending].responded_at": at,
			}},
			options.Update().SetArrayFilters(options.ArrayFilters{
				Filters: []interface{}{bson.M{"pending.response": schema.ResponsePending}},
			}),
		)
		if err != nil {
			return nil, nil, err
		}
	}

	return m.getCaseNoErrMap(ctx, caseID)
}

func (m *mongoDB) getCaseNoErrMap(ctx context.Context, caseID string) (*schema.EmergencyCase, []string, error) {
	var c schema.EmergencyCase
	if err := m.cases().FindOne(ctx, bson.M{"_id": caseID}).Decode(&c); err != nil {
		return nil, nil, err
	}
	cancelled := []string{}
	for _, n := range c.HospitalNotifications {
		if n.Response == schema.ResponseCancelled {
			cancelled = append(cancelled, n.HospitalID)
		}
	}
	return &c, cancelled, nil
}

// RejectNotification terminates one pending notification with a mandatory
// reason and bumps the case's rejection counter. Calling it twice for the
// same record cannot double-increment: the pending-element filter fails
// the second time.
func (m *mongoDB) RejectNotification(caseID, hospitalID string, reason schema.RejectionReason, note string, at time.Time) (*schema.EmergencyCase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.cases().UpdateOne(ctx,
		bson.M{
			"_id": caseID,
			"hospital_notifications": bson.M{"$elemMatch": bson.M{
				"hospital_id": hospitalID,
				"response":    schema.ResponsePending,
			}},
		},
		bson.M{
			"$set": bson.M{
				"hospital_notifications.$.response":     schema.ResponseRejected,
				"hospital_notifications.$.reason":       reason,
				"hospital_notifications.$.reason_note":  note,
				"hospital_notifications.$.responded_at": at,
				"updated_at":                            at,
			},
			"$inc": bson.M{"rejection_count": 1},
		},
	)
	if err != nil {
		return nil, err
	}
	if result.ModifiedCount == 0 {
		if _, err := m.GetCase(caseID); err != nil {
			return nil, err
		}
		return nil, ErrNotificationNotPending
	}

	return m.GetCase(caseID)
}

// MarkEscalated is the one-way escalation transition. The status filter
// makes it idempotent: rejection handlers and the periodic scanner can
// both fire, only one mutates.
func (m *mongoDB) MarkEscalated(caseID, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.cases().UpdateOne(ctx,
		bson.M{"_id": caseID, "status": schema.CaseAwaitingResponse},
		bson.M{"$set": bson.M{
			"status":            schema.CaseEscalationRequired,
			"escalation_reason": reason,
			"updated_at":        time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		if _, err := m.GetCase(caseID); err != nil {
			return err
		}
		return ErrCaseNotEscalatable
	}
	return nil
}

// ConfirmOverride commits a dispatcher override exactly once per case.
func (m *mongoDB) ConfirmOverride(caseID, hospitalID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.cases().UpdateOne(ctx,
		bson.M{
			"_id":           caseID,
			"status":        schema.CaseEscalationRequired,
			"override_used": false,
		},
		bson.M{"$set": bson.M{
			"status":               schema.CaseDispatcherOverride,
			"override_used":        true,
			"accepted_hospital_id": hospitalID,
			"updated_at":           at,
		}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		c, err := m.GetCase(caseID)
		if err != nil {
			return err
		}
		if c.OverrideUsed {
			return ErrOverrideAlreadyUsed
		}
		return ErrOverrideNotAllowed
	}
	return nil
}
