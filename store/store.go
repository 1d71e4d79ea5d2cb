// Package store is the session-scoped interface over the persistent record
// store. Each logical operation (create source, record submission,
// authenticate) constructs its own Session; cross-operation consistency is
// delegated to the database's transactional isolation, not locking here.
package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/openwhistle/tipline/model"
	"github.com/openwhistle/tipline/utils"
	. "github.com/openwhistle/tipline/utils/log"
)

var (
	// ErrNotFound classifies a by-unique-key lookup that matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrIntegrityConflict classifies a by-unique-key lookup that matched
	// more than one row. That is a data-integrity bug, surfaced loudly and
	// never resolved by picking the first match.
	ErrIntegrityConflict = errors.New("multiple records matched a unique query")
)

// IsNotFound reports whether err represents ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsIntegrityConflict reports whether err represents ErrIntegrityConflict.
func IsIntegrityConflict(err error) bool { return errors.Is(err, ErrIntegrityConflict) }

// Session is one request-scoped handle on the record store.
type Session struct {
	db *gorm.DB
}

// NewSession binds a session to the shared database handle. Concurrent
// logical operations each get their own Session.
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// DB exposes the underlying handle for callers composing their own queries.
func (s *Session) DB() *gorm.DB {
	return s.db
}

// Create inserts a record transactionally. A failed insert leaves no partial
// effect visible to subsequent reads.
func (s *Session) Create(record interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// Update persists the record's current state in place.
func (s *Session) Update(record interface{}) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(record).Error
	})
}

// Find loads every record of dest's kind matching query into dest.
func (s *Session) Find(dest interface{}, query string, args ...interface{}) error {
	return s.db.Where(query, args...).Find(dest).Error
}

// LoadSubmissions fills source.Submissions in insertion order. The database
// returns rows in unspecified order without an ORDER BY, so every load of
// the submission relationship goes through here.
func (s *Session) LoadSubmissions(source *model.Source) error {
	return s.db.Where("source_id = ?", source.Id).
		Order("created_at, id").
		Find(&source.Submissions).Error
}

// Transact runs fn inside one transaction on this session; an error from fn
// rolls the whole thing back.
func (s *Session) Transact(fn utils.GormTransaction) error {
	return s.db.Transaction(fn)
}

// ExactlyOne scans the single row of dest's kind matching query into dest.
// Every by-unique-key lookup goes through this chokepoint: zero matches
// classify as ErrNotFound, more than one as ErrIntegrityConflict, both
// logged with the offending query.
func (s *Session) ExactlyOne(dest interface{}, query string, args ...interface{}) error {
	var matches int64
	if err := s.db.Model(dest).Where(query, args...).Count(&matches).Error; err != nil {
		return errors.Wrapf(err, "executing %q", query)
	}
	if matches == 0 {
		Log.Error("found none when one was expected: ", query)
		return errors.Wrapf(ErrNotFound, "query %q", query)
	}
	if matches > 1 {
		Log.Error("found ", matches, " while executing ", query, " when one was expected")
		return errors.Wrapf(ErrIntegrityConflict, "query %q matched %d", query, matches)
	}
	if err := s.db.Where(query, args...).First(dest).Error; err != nil {
		return errors.Wrapf(err, "loading %q", query)
	}
	return nil
}
