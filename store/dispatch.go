package store

import (
	"github.com/jinzhu/gorm"

	"github.com/lifeline-inc/dispatch-api/schema"
)

// DispatchCore is the main datastore of the dispatch engine: the mongo
// case/hospital store plus the relational audit log.
type DispatchCore interface {
	Ping() error

	// Audit
	RecordAuditEvent(e *schema.AuditEvent) error
	ListAuditEvents(caseID string) ([]schema.AuditEvent, error)
}

// DispatchStore is an implementation of DispatchCore
type DispatchStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewDispatchStore(ormDB *gorm.DB, mongo MongoStore) *DispatchStore {
	return &DispatchStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *DispatchStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
