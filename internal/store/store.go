// Package store orchestrates reads and writes against the settings document:
// environment gating, path policy, the exclusive write section, and the
// load-mutate-persist-reload-audit cycle.
//
// Every operation returns a result.Result; expected failures (gate, policy,
// not-found, parse errors) never cross the boundary as Go panics or errors.
package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/devconf/devconf/internal/document"
	"github.com/devconf/devconf/internal/environment"
	"github.com/devconf/devconf/internal/errors"
	"github.com/devconf/devconf/internal/log"
	"github.com/devconf/devconf/internal/policy"
	"github.com/devconf/devconf/internal/result"
	"github.com/devconf/devconf/internal/tree"
)

// Recorder receives a notification for every successful mutation. Failures
// must be absorbed by the implementation; the store never checks them.
type Recorder interface {
	Record(path, value string)
}

// Store is the configuration store. All writes are serialized through a
// single exclusive section held for the whole load-mutate-persist-reload
// cycle; reads are not serialized and may observe pre- or post-write state.
type Store struct {
	gate     environment.Gate
	recorder Recorder

	// writeMu is the exclusive write section.
	writeMu sync.Mutex

	// snapshot is the live configuration view, refreshed synchronously after
	// every successful persist so writers immediately observe their own write.
	snapMu   sync.RWMutex
	snapshot document.Document
}

// New creates a store over the given environment gate and change recorder.
func New(gate environment.Gate, recorder Recorder) *Store {
	return &Store{gate: gate, recorder: recorder}
}

// Current returns the live configuration snapshot, or nil before the first
// successful write. The returned document must not be mutated.
func (s *Store) Current() document.Document {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

// GetAll returns the full configuration tree with hidden subtrees pruned.
func (s *Store) GetAll() (res result.Result[*tree.Tree]) {
	defer recoverToFailure(&res)

	if !s.gate.IsAllowed() {
		return result.FailErr[*tree.Tree](s.environmentError())
	}

	doc, err := document.Load(s.gate.SettingsFilePath())
	if err != nil {
		return result.FailErr[*tree.Tree](err)
	}

	t, err := tree.Build(doc)
	if err != nil {
		return result.FailErr[*tree.Tree](err)
	}

	return result.Ok(t)
}

// GetByPath resolves a single configuration value by its colon-delimited path.
func (s *Store) GetByPath(path string) (res result.Result[*tree.Item]) {
	defer recoverToFailure(&res)

	if !s.gate.IsAllowed() {
		return result.FailErr[*tree.Item](s.environmentError())
	}
	if strings.TrimSpace(path) == "" {
		return result.FailErr[*tree.Item](errors.NewPathEmptyError("path must not be empty"))
	}
	if policy.IsHidden(path) {
		return result.FailErr[*tree.Item](errors.NewPathHiddenError(path))
	}

	doc, err := document.Load(s.gate.SettingsFilePath())
	if err != nil {
		return result.FailErr[*tree.Item](err)
	}

	value, found := document.Lookup(doc, strings.Split(path, document.PathSeparator))
	if !found {
		return result.FailErr[*tree.Item](errors.NewNotFoundError(path))
	}
	if value == nil {
		return result.FailErr[*tree.Item](errors.NewNullValueError(path))
	}

	rendered, err := document.Render(value)
	if err != nil {
		return result.FailErr[*tree.Item](errors.NewMutationError("failed to render value", err))
	}

	return result.Ok(tree.NewItem(path, rendered))
}

// Update sets a single configuration value, persisting the whole document.
func (s *Store) Update(path, value string) (res result.Result[*tree.Item]) {
	defer recoverToFailure(&res)

	if strings.TrimSpace(path) == "" {
		return result.FailErr[*tree.Item](errors.NewPathEmptyError("path must not be empty"))
	}
	if !s.gate.IsAllowed() {
		return result.FailErr[*tree.Item](s.environmentError())
	}
	if policy.IsRestricted(path) {
		return result.FailErr[*tree.Item](errors.NewPathRestrictedError(path))
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc, err := document.Load(s.gate.SettingsFilePath())
	if err != nil {
		return result.FailErr[*tree.Item](err)
	}

	if err := document.SetPath(doc, strings.Split(path, document.PathSeparator), value); err != nil {
		return result.FailErr[*tree.Item](err)
	}

	if err := doc.Write(s.gate.SettingsFilePath()); err != nil {
		return result.FailErr[*tree.Item](errors.NewConfigError("failed to persist settings file", err))
	}

	s.reload(doc)
	s.recorder.Record(path, value)

	log.Infof("Configuration updated: %s", path)
	return result.Ok(tree.NewItem(path, value))
}

// BulkUpdate applies a batch of updates under one exclusive section with one
// load and at most one persist. Individual item failures are reported inside
// the returned payload, never as a top-level failure.
func (s *Store) BulkUpdate(updates []ConfigurationUpdate) (res result.Result[*BulkUpdateResult]) {
	defer recoverToFailure(&res)

	if len(updates) == 0 {
		return result.FailErr[*BulkUpdateResult](errors.NewPathEmptyError("no updates supplied"))
	}
	if !s.gate.IsAllowed() {
		return result.FailErr[*BulkUpdateResult](s.environmentError())
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc, err := document.Load(s.gate.SettingsFilePath())
	if err != nil {
		return result.FailErr[*BulkUpdateResult](err)
	}

	outcome := &BulkUpdateResult{}
	for _, update := range updates {
		if err := s.applyOne(doc, update); err != nil {
			outcome.FailedUpdates = append(outcome.FailedUpdates, FailedUpdate{
				Update: update,
				Error:  err.Error(),
			})
			continue
		}
		outcome.SuccessfulUpdates = append(outcome.SuccessfulUpdates, tree.NewItem(update.Path, update.Value))
	}

	if outcome.SuccessCount() > 0 {
		if err := doc.Write(s.gate.SettingsFilePath()); err != nil {
			return result.FailErr[*BulkUpdateResult](errors.NewConfigError("failed to persist settings file", err))
		}
		s.reload(doc)
		for _, item := range outcome.SuccessfulUpdates {
			s.recorder.Record(item.Path, item.Value)
		}
	}

	log.Infof("Bulk configuration update: %d applied, %d rejected",
		outcome.SuccessCount(), outcome.FailureCount())
	return result.Ok(outcome)
}

// applyOne validates and applies a single bulk item to the shared working copy.
func (s *Store) applyOne(doc document.Document, update ConfigurationUpdate) error {
	if strings.TrimSpace(update.Path) == "" {
		return errors.NewPathEmptyError("path must not be empty")
	}
	if policy.IsRestricted(update.Path) {
		return errors.NewPathRestrictedError(update.Path)
	}
	return document.SetPath(doc, strings.Split(update.Path, document.PathSeparator), update.Value)
}

// reload refreshes the live snapshot from the just-persisted file. A reload
// failure keeps the in-memory copy so the caller still observes its write.
func (s *Store) reload(fallback document.Document) {
	doc, err := document.Load(s.gate.SettingsFilePath())
	if err != nil {
		log.Warnf("Failed to reload settings after persist: %v", err)
		doc = fallback
	}

	s.snapMu.Lock()
	s.snapshot = doc
	s.snapMu.Unlock()
}

func (s *Store) environmentError() error {
	name := s.gate.Name()
	if name == "" {
		name = "unset"
	}
	return errors.NewEnvironmentError(fmt.Sprintf(
		"configuration editing is not allowed in environment %q", name))
}

func recoverToFailure[T any](res *result.Result[T]) {
	if r := recover(); r != nil {
		log.Errorf("Recovered from panic in store operation: %v", r)
		*res = result.Fail[T](fmt.Sprintf("internal error: %v", r))
	}
}
