package storage

import (
	"github.com/manav03panchal/spanset/internal/model"
)

// UndoRepo provides operations for the UndoState singleton.
type UndoRepo struct {
	db *DB
}

// NewUndoRepo creates a new undo repository.
func NewUndoRepo(db *DB) *UndoRepo {
	return &UndoRepo{db: db}
}

// Get retrieves the current undo state, or nil if there is none.
func (r *UndoRepo) Get() (*model.UndoState, error) {
	state := &model.UndoState{}
	if err := r.db.Get(model.KeyUndo, state); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return state, nil
}

// Set saves the undo state.
func (r *UndoRepo) Set(state *model.UndoState) error {
	state.Key = model.KeyUndo
	return r.db.Set(state)
}

// Clear removes the undo state.
func (r *UndoRepo) Clear() error {
	return r.db.Delete(model.KeyUndo)
}
