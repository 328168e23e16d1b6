package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostgREST serves the users and sensor tables with the subset of
// PostgREST query syntax the store uses.
type fakePostgREST struct {
	key      string
	users    []string
	readings int
	fail     bool
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Header.Get("apikey") != f.key || r.Header.Get("Authorization") != "Bearer "+f.key {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid API key"})
		return
	}
	if f.fail {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"code": "42P01", "message": `relation "public.sensor" does not exist`})
		return
	}

	q := r.URL.Query()
	switch r.URL.Path {
	case "/rest/v1/users":
		want := strings.TrimPrefix(q.Get("email"), "eq.")
		out := []map[string]string{}
		for _, u := range f.users {
			if u == want {
				out = append(out, map[string]string{"email": u})
			}
		}
		json.NewEncoder(w).Encode(out)

	case "/rest/v1/sensor":
		if q.Get("order") != "id.desc" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		offset, _ := strconv.Atoi(q.Get("offset"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		out := []map[string]any{}
		for id := f.readings - offset; id >= 1 && len(out) < limit; id-- {
			out = append(out, map[string]any{
				"id":          id,
				"timestamp":   "2024-01-01T00:00:00+00:00",
				"temperature": 21.5,
			})
		}
		json.NewEncoder(w).Encode(out)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestSupabase(t *testing.T, fake *fakePostgREST) *SupabaseStore {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return NewSupabaseStore(srv.URL+"/", fake.key, 5*time.Second)
}

func TestSupabaseFindByEmail(t *testing.T) {
	s := newTestSupabase(t, &fakePostgREST{key: "k", users: []string{"alice@example.com"}})

	user, err := s.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = s.FindByEmail(context.Background(), "mallory@example.com")
	assert.True(t, errors.Is(err, ErrUserNotFound), "got %v", err)
}

func TestSupabaseLatest(t *testing.T) {
	s := newTestSupabase(t, &fakePostgREST{key: "k", readings: 10})

	r, err := s.Latest(context.Background())
	require.NoError(t, err)
	id, ok := r.ID()
	require.True(t, ok)
	assert.Equal(t, int64(10), id)
	assert.Equal(t, json.Number("21.5"), r["temperature"])
}

func TestSupabaseLatestEmpty(t *testing.T) {
	s := newTestSupabase(t, &fakePostgREST{key: "k"})

	_, err := s.Latest(context.Background())
	assert.True(t, errors.Is(err, ErrNoReadings), "got %v", err)
}

func TestSupabaseHistory(t *testing.T) {
	s := newTestSupabase(t, &fakePostgREST{key: "k", readings: 40})

	readings, err := s.History(context.Background())
	require.NoError(t, err)
	got := ids(t, readings)
	require.Len(t, got, HistorySize)
	assert.Equal(t, int64(39), got[0])
	assert.Equal(t, int64(16), got[len(got)-1])
}

func TestSupabaseAPIError(t *testing.T) {
	s := newTestSupabase(t, &fakePostgREST{key: "k", fail: true})

	_, err := s.History(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, `relation "public.sensor" does not exist`, err.Error())
}

func TestSupabaseWrongKey(t *testing.T) {
	fake := &fakePostgREST{key: "right"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s := NewSupabaseStore(srv.URL, "wrong", time.Second)
	_, err := s.FindByEmail(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.Equal(t, "Invalid API key", err.Error())
}

func TestSupabaseUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := NewSupabaseStore(url, "k", time.Second)
	_, err := s.Latest(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoReadings))
}

func TestAPIErrorWithoutMessage(t *testing.T) {
	err := &APIError{Status: http.StatusBadGateway}
	assert.Equal(t, "supabase request failed with status 502", err.Error())
}
