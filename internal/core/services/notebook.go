package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
	"github.com/custodia-labs/notekeeper/internal/logger"
)

// Ensure NotebookService implements the interface.
var _ driving.NotebookService = (*NotebookService)(nil)

const maxIDAttempts = 5

// NotebookService owns the notebook document and all mutations to it.
//
// It holds no copy of the document between calls: each operation loads the
// full document from the medium, mutates it and saves it back, so writes
// made by other processes are picked up on the next call. Concurrent
// writers are not detected; the last full write wins.
type NotebookService struct {
	kv    driven.KeyValueStore
	ids   driven.IDGenerator
	key   string
	clock func() time.Time
}

// Option configures the notebook service.
type Option func(*NotebookService)

// WithKey sets the key the document is stored under.
func WithKey(key string) Option {
	return func(s *NotebookService) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator sets the identifier source for new notebooks and notes.
func WithIDGenerator(ids driven.IDGenerator) Option {
	return func(s *NotebookService) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithClock sets the time source used for note timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *NotebookService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewNotebookService creates a notebook service backed by the given medium.
func NewNotebookService(kv driven.KeyValueStore, opts ...Option) *NotebookService {
	s := &NotebookService{
		kv:    kv,
		key:   domain.DefaultDocumentKey,
		clock: time.Now,
	}
	s.ids = NewTimestampIDGenerator(nil)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Key returns the storage key of the document.
func (s *NotebookService) Key() string {
	return s.key
}

// Init makes sure a document exists in the medium.
func (s *NotebookService) Init(ctx context.Context) error {
	_, err := s.Load(ctx)
	return err
}

// Load reads the full document. If the medium has no document yet, an empty
// one is written first so a defined document always exists.
func (s *NotebookService) Load(ctx context.Context) (domain.Document, error) {
	if s.kv == nil {
		return domain.Document{}, domain.ErrNotImplemented
	}

	data, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading document %q: %w", s.key, err)
	}

	if !found {
		logger.Debug("document %q absent, writing empty document", s.key)
		doc := domain.NewDocument()
		if err := s.Save(ctx, doc); err != nil {
			return domain.Document{}, err
		}
		return doc, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("parsing document %q: %v: %w", s.key, err, domain.ErrCorruptDocument)
	}
	doc.Normalise()

	if err := doc.Validate(); err != nil {
		return domain.Document{}, fmt.Errorf("validating document %q: %w", s.key, err)
	}
	if dups := doc.DuplicateIDs(); len(dups) > 0 {
		logger.Warn("document %q has duplicate ids %v; operations act on the first match", s.key, dups)
	}

	logger.Debug("loaded document %q: %d notebooks, %d notes", s.key, len(doc.Notebooks), doc.NoteCount())
	return doc, nil
}

// Save writes the full document, replacing whatever is stored.
func (s *NotebookService) Save(ctx context.Context, doc domain.Document) error {
	if s.kv == nil {
		return domain.ErrNotImplemented
	}
	defer logger.Timed("save document")()

	doc.Normalise()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("writing document %q: %w", s.key, err)
	}

	logger.Debug("saved document %q (%d bytes)", s.key, len(data))
	return nil
}

// CreateNotebook appends a new notebook with no notes.
func (s *NotebookService) CreateNotebook(ctx context.Context, name string) (domain.Notebook, error) {
	name, err := cleanName(name)
	if err != nil {
		return domain.Notebook{}, err
	}

	doc, err := s.Load(ctx)
	if err != nil {
		return domain.Notebook{}, err
	}

	id, err := s.newID(&doc)
	if err != nil {
		return domain.Notebook{}, err
	}

	nb := domain.Notebook{
		ID:    id,
		Name:  name,
		Notes: []domain.Note{},
	}
	doc.Notebooks = append(doc.Notebooks, nb)

	if err := s.Save(ctx, doc); err != nil {
		return domain.Notebook{}, err
	}

	logger.Debug("created notebook %s %q", nb.ID, nb.Name)
	return nb, nil
}

// ListNotebooks returns all notebooks in creation order.
func (s *NotebookService) ListNotebooks(ctx context.Context) ([]domain.Notebook, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Notebooks, nil
}

// RenameNotebook sets a new display name on the notebook.
func (s *NotebookService) RenameNotebook(ctx context.Context, notebookID, name string) (domain.Notebook, error) {
	name, err := cleanName(name)
	if err != nil {
		return domain.Notebook{}, err
	}

	doc, err := s.Load(ctx)
	if err != nil {
		return domain.Notebook{}, err
	}

	nb, ok := doc.FindNotebook(notebookID)
	if !ok {
		return domain.Notebook{}, notebookNotFound(notebookID)
	}
	nb.Name = name
	result := nb.Clone()

	if err := s.Save(ctx, doc); err != nil {
		return domain.Notebook{}, err
	}

	logger.Debug("renamed notebook %s to %q", notebookID, name)
	return result, nil
}

// DeleteNotebook removes the notebook together with its notes.
func (s *NotebookService) DeleteNotebook(ctx context.Context, notebookID string) error {
	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}

	i := doc.NotebookIndex(notebookID)
	if i < 0 {
		return notebookNotFound(notebookID)
	}
	removed := len(doc.Notebooks[i].Notes)
	doc.Notebooks = append(doc.Notebooks[:i], doc.Notebooks[i+1:]...)

	if err := s.Save(ctx, doc); err != nil {
		return err
	}

	logger.Debug("deleted notebook %s and %d notes", notebookID, removed)
	return nil
}

// CreateNote puts a new note at the front of the notebook's notes.
func (s *NotebookService) CreateNote(
	ctx context.Context,
	notebookID string,
	fields domain.NoteFields,
) (domain.Note, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	nb, ok := doc.FindNotebook(notebookID)
	if !ok {
		return domain.Note{}, notebookNotFound(notebookID)
	}

	id, err := s.newID(&doc)
	if err != nil {
		return domain.Note{}, err
	}

	note := domain.Note{
		ID:         id,
		NotebookID: notebookID,
		PostedOn:   s.clock().UnixMilli(),
	}
	fields.Merge(&note)

	nb.Notes = append([]domain.Note{note}, nb.Notes...)

	if err := s.Save(ctx, doc); err != nil {
		return domain.Note{}, err
	}

	logger.Debug("created note %s in notebook %s", note.ID, notebookID)
	return note, nil
}

// ListNotes returns the notebook's notes in stored order (newest first).
func (s *NotebookService) ListNotes(ctx context.Context, notebookID string) ([]domain.Note, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	nb, ok := doc.FindNotebook(notebookID)
	if !ok {
		return nil, notebookNotFound(notebookID)
	}
	return nb.Notes, nil
}

// GetNote returns the current state of a note from any notebook.
func (s *NotebookService) GetNote(ctx context.Context, noteID string) (domain.Note, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	note, ok := doc.FindNote(noteID)
	if !ok {
		return domain.Note{}, noteNotFound(noteID)
	}
	return *note, nil
}

// UpdateNote merges the set fields into the note. The owning notebook is
// found by scanning every notebook.
func (s *NotebookService) UpdateNote(
	ctx context.Context,
	noteID string,
	fields domain.NoteFields,
) (domain.Note, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	note, ok := doc.FindNote(noteID)
	if !ok {
		return domain.Note{}, noteNotFound(noteID)
	}
	fields.Merge(note)
	result := *note

	if err := s.Save(ctx, doc); err != nil {
		return domain.Note{}, err
	}

	logger.Debug("updated note %s", noteID)
	return result, nil
}

// DeleteNote removes the note and returns what is left in its notebook.
func (s *NotebookService) DeleteNote(ctx context.Context, notebookID, noteID string) ([]domain.Note, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	nb, ok := doc.FindNotebook(notebookID)
	if !ok {
		return nil, notebookNotFound(notebookID)
	}

	i := nb.NoteIndex(noteID)
	if i < 0 {
		return nil, fmt.Errorf("note %q in notebook %q: %w", noteID, notebookID, domain.ErrNotFound)
	}
	nb.Notes = append(nb.Notes[:i], nb.Notes[i+1:]...)
	remaining := nb.Clone().Notes

	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}

	logger.Debug("deleted note %s from notebook %s, %d left", noteID, notebookID, len(remaining))
	return remaining, nil
}

// newID draws identifiers until one is unused in doc. Another process may
// have written an entity with the same timestamp id since our last load.
func (s *NotebookService) newID(doc *domain.Document) (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		if !doc.HasID(id) {
			return id, nil
		}
		logger.Debug("id %s already in use, drawing another", id)
	}
	return "", fmt.Errorf("no unused id after %d attempts: %w", maxIDAttempts, domain.ErrInvalidInput)
}

// cleanName trims a notebook name and rejects blank names.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("notebook name is empty: %w", domain.ErrInvalidInput)
	}
	return name, nil
}

func notebookNotFound(id string) error {
	return fmt.Errorf("notebook %q: %w", id, domain.ErrNotFound)
}

func noteNotFound(id string) error {
	return fmt.Errorf("note %q: %w", id, domain.ErrNotFound)
}
