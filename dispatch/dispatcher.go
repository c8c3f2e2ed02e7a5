package dispatch

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lifeline-inc/dispatch-api/schema"
)

var (
	ErrNoCandidates   = fmt.Errorf("no qualified hospitals left to notify")
	ErrCaseDispatched = fmt.Errorf("case already has an accepted hospital")
)

const (
	// parallelDispatchAcuity is the acuity level that fans the request
	// out to the top two hospitals at once.
	parallelDispatchAcuity = 1
	parallelFanout         = 2
)

// CaseStore is the subset of the case store the workflow engine mutates.
type CaseStore interface {
	GetCase(id string) (*schema.EmergencyCase, error)
	AppendNotifications(caseID string, records []schema.NotificationRecord) (int, error)
	MarkAwaitingResponse(caseID string, at time.Time) error
	AcceptCase(caseID, hospitalID string, at time.Time) (*schema.EmergencyCase, []string, error)
	RejectNotification(caseID, hospitalID string, reason schema.RejectionReason, note string, at time.Time) (*schema.EmergencyCase, error)
	MarkEscalated(caseID, reason string) error
	ConfirmOverride(caseID, hospitalID string, at time.Time) error
	ListCasesByStatus(status schema.CaseStatus) ([]schema.EmergencyCase, error)
}

// Dispatcher runs notification rounds: it decides which ranked hospitals
// to ask and writes their notification records.
type Dispatcher struct {
	store    CaseStore
	notifier Notifier
}

func NewDispatcher(store CaseStore, notifier Notifier) *Dispatcher {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Dispatcher{store: store, notifier: notifier}
}

// DispatchRound notifies the next hospitals for a case. The most severe
// cases (acuity 1) go to the top two qualified hospitals in parallel;
// everything else proceeds sequentially, one hospital per round.
// Hospitals already notified for this case are skipped, so re-running a
// round after a rejection moves down the ranking instead of re-asking.
func (d *Dispatcher) DispatchRound(c *schema.EmergencyCase, ranked []schema.ScoreResult) ([]schema.NotificationRecord, error) {
	if c.AcceptedHospitalID != "" {
		return nil, ErrCaseDispatched
	}

	fanout := 1
	if c.AcuityLevel == parallelDispatchAcuity {
		fanout = parallelFanout
	}

	now := time.Now()
	records := []schema.NotificationRecord{}
	for rank, r := range ranked {
		if len(records) == fanout {
			break
		}
		if r.Disqualified {
			break // disqualified results sort after all qualified ones
		}
		if c.NotificationFor(r.HospitalID) != nil {
			continue
		}
		records = append(records, schema.NotificationRecord{
			HospitalID: r.HospitalID,
			NotifiedAt: now,
			Response:   schema.ResponsePending,
			Score:      r.SuitabilityScore,
			Rank:       rank + 1,
		})
	}

	if len(records) == 0 {
		return nil, ErrNoCandidates
	}

	appended, err := d.store.AppendNotifications(c.ID, records)
	if err != nil {
		return nil, err
	}
	if appended == 0 {
		// lost a concurrent dispatch race wholesale; nothing new to track
		return nil, ErrNoCandidates
	}

	// only the first round stamps the response clock
	if err := d.store.MarkAwaitingResponse(c.ID, now); err != nil {
		return nil, err
	}

	for _, r := range records {
		d.notifier.NotificationSent(c.ID, r)
		log.WithField("prefix", "dispatch").
			WithField("case", c.ID).
			WithField("hospital", r.HospitalID).
			Info("hospital notified")
	}

	return records, nil
}
