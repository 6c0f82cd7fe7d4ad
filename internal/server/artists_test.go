package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
	tu "github.com/desertthunder/backstage/internal/testing"
)

// envelope mirrors [APIResponse] with a raw payload for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Source  string          `json:"source"`
}

func newTestServer() *httptest.Server {
	engine := directory.NewEngine(directory.EngineOpts{Cache: tu.NewMemStore()})

	router := NewBasicRouter()
	router.Use(RequestLogger(shared.NewLogger(nil)))
	router.Handler(NewArtistHandler(engine, nil))

	return httptest.NewServer(router)
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}
	return resp, env
}

func TestArtistEndpoints(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	t.Run("get profile resolves through the tier chain", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/artists/nova-era", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}
		if !env.Success || env.Source != "baseline" {
			t.Errorf("Expected a baseline-sourced success, got %+v", env)
		}

		var profile models.ArtistProfile
		if err := json.Unmarshal(env.Data, &profile); err != nil {
			t.Fatalf("Failed to decode profile: %v", err)
		}
		if profile.Name != "Nova Era" {
			t.Errorf("Expected Nova Era, got %s", profile.Name)
		}

		_, env = doRequest(t, http.MethodGet, ts.URL+"/api/artists/nova-era", "")
		if env.Source != "cache" {
			t.Errorf("Expected the second read from cache, got %q", env.Source)
		}
	})

	t.Run("get unknown profile returns 404", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/artists/ghost", "")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", resp.StatusCode)
		}
		if env.Success || env.Error == "" {
			t.Errorf("Expected an error envelope, got %+v", env)
		}
	})

	t.Run("patch updates the provided fields", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodPatch, ts.URL+"/api/artists/june-harbor",
			`{"bio": "Tour dates soon.", "id": "hijack", "email": "evil@example.com"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var profile models.ArtistProfile
		if err := json.Unmarshal(env.Data, &profile); err != nil {
			t.Fatalf("Failed to decode profile: %v", err)
		}
		if profile.Bio != "Tour dates soon." {
			t.Errorf("Expected updated bio, got %q", profile.Bio)
		}
		if profile.ID != "june-harbor" || profile.Email != "june@backstage.fm" {
			t.Error("Expected identity fields to be untouched")
		}

		_, env = doRequest(t, http.MethodGet, ts.URL+"/api/artists/june-harbor", "")
		if err := json.Unmarshal(env.Data, &profile); err != nil {
			t.Fatalf("Failed to decode profile: %v", err)
		}
		if profile.Bio != "Tour dates soon." {
			t.Error("Expected the update to be visible on subsequent reads")
		}
	})

	t.Run("patch with no usable fields returns 400", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPatch, ts.URL+"/api/artists/nova-era", `{"plays": 999}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("patch with malformed body returns 400", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPatch, ts.URL+"/api/artists/nova-era", `not json`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("stats projects the aggregates", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/artists/mc-vela/stats", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var stats models.ArtistStats
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			t.Fatalf("Failed to decode stats: %v", err)
		}
		if stats.Plays != 623000 {
			t.Errorf("Expected 623000 plays, got %d", stats.Plays)
		}
	})

	t.Run("catalog generates the track list", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/artists/nova-era/catalog", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var tracks []models.CatalogTrack
		if err := json.Unmarshal(env.Data, &tracks); err != nil {
			t.Fatalf("Failed to decode tracks: %v", err)
		}
		if len(tracks) != 10 {
			t.Errorf("Expected 10 tracks, got %d", len(tracks))
		}
	})

	t.Run("similar rejects a malformed top parameter", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, ts.URL+"/api/artists/nova-era/similar?top=abc", "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("similar returns recommendations", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/artists/ada-quinn/similar", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var results []models.SimilarityResult
		if err := json.Unmarshal(env.Data, &results); err != nil {
			t.Fatalf("Failed to decode results: %v", err)
		}
		for _, r := range results {
			if r.Artist.ID == "ada-quinn" {
				t.Error("Query artist appeared in its own recommendations")
			}
		}
	})

	t.Run("popular chart honors the limit", func(t *testing.T) {
		resp, env := doRequest(t, http.MethodGet, ts.URL+"/api/charts/popular?limit=2", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var listing []models.PublicProfile
		if err := json.Unmarshal(env.Data, &listing); err != nil {
			t.Fatalf("Failed to decode listing: %v", err)
		}
		if len(listing) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(listing))
		}
		if listing[0].Plays < listing[1].Plays {
			t.Error("Expected the listing sorted by plays descending")
		}
	})

	t.Run("popular chart rejects a malformed limit", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, ts.URL+"/api/charts/popular?limit=-3", "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestRouterMethodFiltering(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/artists/nova-era", nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}
