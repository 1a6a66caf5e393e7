package notify

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ queued []string }

func (m *memStore) AddFlash(_ http.ResponseWriter, _ *http.Request, v string) error {
	m.queued = append(m.queued, v)
	return nil
}

func (m *memStore) Flashes(_ http.ResponseWriter, _ *http.Request) []string {
	out := m.queued
	m.queued = nil
	return out
}

func TestAddAndPop(t *testing.T) {
	st := &memStore{}
	n := New(st, nil)
	w, r := httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)

	n.Success(w, r, "Folio updated.")
	n.Add(w, r, Error, "<b>Room</b> is   occupied")
	n.Add(w, r, Info, "   ")

	got := n.Pop(w, r)
	require.Len(t, got, 2)
	assert.Equal(t, Notice{Level: Success, Message: "Folio updated."}, got[0])
	assert.Equal(t, Notice{Level: Error, Message: "Room is occupied"}, got[1])
	assert.Equal(t, "notice notice-error", got[1].Class())
	assert.Empty(t, n.Pop(w, r))
}

func TestDecode_UnknownLevelBecomesInfo(t *testing.T) {
	nt, ok := decode("loud|hello")
	require.True(t, ok)
	assert.Equal(t, Info, nt.Level)

	_, ok = decode("no separator")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	apiErr := &backend.APIError{Status: 409, Body: "Room 12 has an open folio"}
	assert.Equal(t, "Could not save folio: Room 12 has an open folio", Describe("Could not save folio", apiErr))

	plain := &backend.APIError{Status: 500, StatusText: "Internal Server Error"}
	assert.Equal(t, "Internal Server Error", Describe("", plain))

	assert.Equal(t, "Could not load guests: Something went wrong. Please try again.",
		Describe("Could not load guests", errors.New("boom")))
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	w, r := httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)
	n.BackendError(w, r, "ignored", errors.New("boom"))
	assert.Nil(t, n.Pop(w, r))
}
