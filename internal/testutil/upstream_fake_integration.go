//go:build integration

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakeUpstream - внешний API клоакинга в миниатюре: справочники, потоки, ошибки по запросу.
type FakeUpstream struct {
	Server *httptest.Server
	APIKey string

	mu     sync.Mutex
	hits   map[string]int
	failed map[string]int // endpoint -> HTTP-статус, которым отвечать
}

// StartFakeUpstream - сервер на случайном порту; закрывается через Close.
func StartFakeUpstream(apiKey string) *FakeUpstream {
	f := &FakeUpstream{APIKey: apiKey, hits: map[string]int{}, failed: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeUpstream) URL() string { return f.Server.URL }

func (f *FakeUpstream) Close() { f.Server.Close() }

// Hits - сколько раз вызывали endpoint.
func (f *FakeUpstream) Hits(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[endpoint]
}

// FailWith - endpoint начинает отвечать статусом status; 0 снимает сбой.
func (f *FakeUpstream) FailWith(endpoint string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.failed, endpoint)
		return
	}
	f.failed[endpoint] = status
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	status := f.failed[r.URL.Path]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("api_key") != f.APIKey {
		writeUpstream(w, map[string]any{"status": "error", "msg": "invalid api key", "code": 401})
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/references/"):
		name := strings.TrimPrefix(r.URL.Path, "/references/")
		writeUpstream(w, map[string]any{"status": "success", "data": []map[string]any{{"id": 1, "name": name}}})
	case r.URL.Path == "/flows/get" && r.PostForm.Get("id") == "404":
		writeUpstream(w, map[string]any{"status": "error", "msg": "flow not found", "code": 404})
	case r.URL.Path == "/flows/create":
		writeUpstream(w, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": 100, "name": r.PostForm.Get("name")},
			"msg":    "flow created",
		})
	default:
		writeUpstream(w, map[string]any{"status": "success", "data": []any{}})
	}
}

func writeUpstream(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
