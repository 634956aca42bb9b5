package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tunebot/internal/domain"
)

func TestStore_GetCreatesDefaultSession(t *testing.T) {
	store := NewStore()

	sess := store.Get(1)

	assert.Equal(t, domain.LangEN, sess.Language)
	assert.Nil(t, sess.Edit)
	assert.False(t, store.IsEditing(1))
}

func TestStore_SetLanguage(t *testing.T) {
	store := NewStore()

	store.SetLanguage(1, domain.LangFA)

	assert.Equal(t, domain.LangFA, store.Get(1).Language)
	// Other users are unaffected
	assert.Equal(t, domain.LangEN, store.Get(2).Language)
}

func TestStore_SetLanguageKeepsEditState(t *testing.T) {
	store := NewStore()
	store.BeginEdit(1, "temp/edit_1_1_song.mp3", "song.mp3")

	// The /start reset path: language changes, edit session survives
	store.SetLanguage(1, domain.LangEN)

	assert.True(t, store.IsEditing(1))
	assert.Equal(t, "song.mp3", store.Get(1).Edit.FileName)
}

func TestStore_StartEdit(t *testing.T) {
	store := NewStore()

	store.StartEdit(1)

	sess := store.Get(1)
	assert.True(t, store.IsEditing(1))
	assert.NotNil(t, sess.Edit)
	assert.Empty(t, sess.Edit.FilePath)
}

func TestStore_BeginEditOverwritesPending(t *testing.T) {
	store := NewStore()

	store.BeginEdit(1, "temp/a.mp3", "a.mp3")
	store.BeginEdit(1, "temp/b.mp3", "b.mp3")

	sess := store.Get(1)
	assert.Equal(t, "temp/b.mp3", sess.Edit.FilePath)
	assert.Equal(t, "b.mp3", sess.Edit.FileName)
}

func TestStore_EndEdit(t *testing.T) {
	store := NewStore()
	store.BeginEdit(1, "temp/a.mp3", "a.mp3")

	store.EndEdit(1)

	assert.False(t, store.IsEditing(1))
	assert.Nil(t, store.Get(1).Edit)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.BeginEdit(1, "temp/a.mp3", "a.mp3")

	sess := store.Get(1)
	sess.Edit.FilePath = "mutated"

	assert.Equal(t, "temp/a.mp3", store.Get(1).Edit.FilePath)
}
