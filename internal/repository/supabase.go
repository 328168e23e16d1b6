package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/probox/probox-api/internal/model"
)

// APIError is an error reported by the PostgREST endpoint.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("supabase request failed with status %d", e.Status)
}

// SupabaseStore reads tables through the Supabase REST (PostgREST) API.
type SupabaseStore struct {
	baseURL string
	key     string
	client  *http.Client
}

// NewSupabaseStore creates a SupabaseStore for the project at baseURL.
func NewSupabaseStore(baseURL, key string, timeout time.Duration) *SupabaseStore {
	return &SupabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		client:  &http.Client{Timeout: timeout},
	}
}

// Close releases idle connections.
func (s *SupabaseStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// FindByEmail retrieves a user by exact email match.
func (s *SupabaseStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := url.Values{}
	q.Set("select", "email")
	q.Set("email", "eq."+email)
	q.Set("limit", "1")

	var users []model.User
	if err := s.get(ctx, "users", q, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

// Latest retrieves the sensor row with the highest id.
func (s *SupabaseStore) Latest(ctx context.Context) (model.Reading, error) {
	readings, err := s.window(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}
	return readings[0], nil
}

// History retrieves the HistorySize rows preceding the newest one, newest first.
func (s *SupabaseStore) History(ctx context.Context) ([]model.Reading, error) {
	return s.window(ctx, historyOffset, HistorySize)
}

func (s *SupabaseStore) window(ctx context.Context, offset, limit int) ([]model.Reading, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "id.desc")
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	readings := []model.Reading{}
	if err := s.get(ctx, "sensor", q, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

func (s *SupabaseStore) get(ctx context.Context, table string, q url.Values, out any) error {
	endpoint := s.baseURL + "/rest/v1/" + table + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(body, apiErr)
		return apiErr
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", table, err)
	}
	return nil
}
