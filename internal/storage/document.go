package storage

import (
	"encoding/json"
	"time"

	"github.com/shepherd-cli/shepherd/internal/logging"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// StateKey is the database key holding the serialized application state.
const StateKey = "state:document"

// Document is the single persisted record holding every collection of the
// organizer. Date fields serialize as RFC 3339 strings and are reconstituted
// into time values on load.
type Document struct {
	Members        []*model.Member       `json:"members"`
	Sermons        []*model.Sermon       `json:"sermons"`
	Visits         []*model.Visit        `json:"visits"`
	Events         []*model.Event        `json:"events"`
	Activities     []*model.Activity     `json:"activities"`
	Notifications  []*model.Notification `json:"notifications"`
	WeeklyCalls    []*model.WeeklyCall   `json:"weeklyCalls"`
	WeekIdentifier string                `json:"weekIdentifier"`
	LastSaved      time.Time             `json:"lastSaved"`
}

// NewDocument returns an empty document. The empty week identifier forces a
// call-list regeneration on first use.
func NewDocument() *Document {
	return &Document{
		Members:       []*model.Member{},
		Sermons:       []*model.Sermon{},
		Visits:        []*model.Visit{},
		Events:        []*model.Event{},
		Activities:    []*model.Activity{},
		Notifications: []*model.Notification{},
		WeeklyCalls:   []*model.WeeklyCall{},
	}
}

// normalize replaces nil collections with empty ones so loaded documents
// behave like fresh ones.
func (doc *Document) normalize() {
	if doc.Members == nil {
		doc.Members = []*model.Member{}
	}
	if doc.Sermons == nil {
		doc.Sermons = []*model.Sermon{}
	}
	if doc.Visits == nil {
		doc.Visits = []*model.Visit{}
	}
	if doc.Events == nil {
		doc.Events = []*model.Event{}
	}
	if doc.Activities == nil {
		doc.Activities = []*model.Activity{}
	}
	if doc.Notifications == nil {
		doc.Notifications = []*model.Notification{}
	}
	if doc.WeeklyCalls == nil {
		doc.WeeklyCalls = []*model.WeeklyCall{}
	}
}

// StateStore persists the application document as one blob under StateKey.
type StateStore struct {
	db *DB
}

// NewStateStore creates a state store over the given database.
func NewStateStore(db *DB) *StateStore {
	return &StateStore{db: db}
}

// Save serializes the document and writes it. The LastSaved stamp is updated
// before writing.
func (s *StateStore) Save(doc *Document) error {
	doc.LastSaved = time.Now()
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.db.SetBytes(StateKey, data)
}

// Load reads the persisted document. A missing document (first run) or a
// document that fails to parse yields a fresh empty one; parse failures are
// logged, never propagated.
func (s *StateStore) Load() (*Document, error) {
	data, err := s.db.GetBytes(StateKey)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return NewDocument(), nil
		}
		return nil, err
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logging.L().Warn("discarding malformed state document", "error", err)
		return NewDocument(), nil
	}
	doc.normalize()
	return doc, nil
}

// Clear removes the persisted document.
func (s *StateStore) Clear() error {
	err := s.db.Delete(StateKey)
	if err != nil && !IsErrKeyNotFound(err) {
		return err
	}
	return nil
}
