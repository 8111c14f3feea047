package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"cinema-manager/internal/data/entity"
)

// fakeStore is a minimal in-memory mock store speaking the flat-JSON
// dialect: bare payloads on success, {"error": ...} on failure.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]map[string]json.RawMessage
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]map[string]json.RawMessage{}, nextID: 1}
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	resource := parts[0]
	collection := s.records[resource]
	if collection == nil {
		collection = map[string]json.RawMessage{}
		s.records[resource] = collection
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items := []json.RawMessage{}
		for _, raw := range collection {
			items = append(items, raw)
		}
		json.NewEncoder(w).Encode(items)

	case len(parts) == 1 && r.Method == http.MethodPost:
		var doc map[string]any
		json.NewDecoder(r.Body).Decode(&doc)
		id := "id-" + strconv.Itoa(s.nextID)
		s.nextID++
		doc["id"] = id
		raw, _ := json.Marshal(doc)
		collection[id] = raw
		w.WriteHeader(http.StatusCreated)
		w.Write(raw)

	case len(parts) == 2:
		id := parts[1]
		existing, ok := collection[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Registro não encontrado"}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			w.Write(existing)
		case http.MethodPatch:
			var doc map[string]any
			json.Unmarshal(existing, &doc)
			json.NewDecoder(r.Body).Decode(&doc)
			doc["id"] = id
			raw, _ := json.Marshal(doc)
			collection[id] = raw
			w.Write(raw)
		case http.MethodDelete:
			delete(collection, id)
			w.Write([]byte(`{}`))
		}

	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Rota não encontrada"}`))
	}
}

func TestRestTransport_CreateThenGetByID(t *testing.T) {
	server := httptest.NewServer(newFakeStore())
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))
	ctx := context.Background()

	created, err := api.Movies.Create(ctx, entity.Movie{Title: "Cidade de Deus", Genre: "Drama"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if created.Title != "Cidade de Deus" {
		t.Fatalf("unexpected created movie: %+v", created)
	}

	fetched, err := api.Movies.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.ID != created.ID || fetched.Title != created.Title {
		t.Fatalf("round trip mismatch: %+v != %+v", fetched, created)
	}
}

func TestRestTransport_GetAllReflectsWrites(t *testing.T) {
	server := httptest.NewServer(newFakeStore())
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))
	ctx := context.Background()

	movies, err := api.Movies.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("expected empty list, got %d", len(movies))
	}

	if _, err := api.Movies.Create(ctx, entity.Movie{Title: "Central do Brasil"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	movies, err = api.Movies.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}
}

func TestRestTransport_GetAllIdempotentWithoutWrites(t *testing.T) {
	server := httptest.NewServer(newFakeStore())
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))
	ctx := context.Background()

	if _, err := api.Movies.Create(ctx, entity.Movie{Title: "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := api.Movies.Create(ctx, entity.Movie{Title: "B"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := api.Movies.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	second, err := api.Movies.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}

	byID := func(movies []entity.Movie) map[string]entity.Movie {
		m := make(map[string]entity.Movie, len(movies))
		for _, movie := range movies {
			m[movie.ID] = movie
		}
		return m
	}
	if len(first) != len(second) {
		t.Fatalf("result size changed: %d != %d", len(first), len(second))
	}
	firstSet, secondSet := byID(first), byID(second)
	for id, movie := range firstSet {
		if secondSet[id] != movie {
			t.Fatalf("record %s changed between reads: %+v != %+v", id, movie, secondSet[id])
		}
	}
}

func TestRestTransport_UpdateMergesPartialDocument(t *testing.T) {
	server := httptest.NewServer(newFakeStore())
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))
	ctx := context.Background()

	created, err := api.Rooms.Create(ctx, entity.Room{Name: "Sala 1", Capacity: 80, Type: entity.RoomType2D})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := api.Rooms.Update(ctx, created.ID, map[string]any{"capacidade": 100})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Capacity != 100 {
		t.Fatalf("expected capacity 100, got %d", updated.Capacity)
	}
	if updated.Name != "Sala 1" || updated.Type != entity.RoomType2D {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestRestTransport_DeleteMissingIsNotFound(t *testing.T) {
	server := httptest.NewServer(newFakeStore())
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))

	err := api.Movies.Delete(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRestTransport_ErrorCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	api := New(NewRest(server.URL, server.Client()))

	_, err := api.Movies.GetAll(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("body missing from error: %v", err)
	}
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected APIError with 500, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatal("500 must not classify as not found")
	}
}

func TestRestTransport_TrailingSlashBase(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	api := New(NewRest(server.URL+"/", server.Client()))
	if _, err := api.Showtimes.GetAll(context.Background()); err != nil {
		t.Fatalf("get all: %v", err)
	}
	if gotPath != "/sessoes" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}
