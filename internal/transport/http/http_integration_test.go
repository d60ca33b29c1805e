//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/cloak_gw/internal/auth"
	cachemem "github.com/Gunvolt24/cloak_gw/internal/cache/memory"
	"github.com/Gunvolt24/cloak_gw/internal/domain"
	pgrepo "github.com/Gunvolt24/cloak_gw/internal/repo/postgres"
	"github.com/Gunvolt24/cloak_gw/internal/testutil"
	rest "github.com/Gunvolt24/cloak_gw/internal/transport/http"
	"github.com/Gunvolt24/cloak_gw/internal/upstream"
	"github.com/Gunvolt24/cloak_gw/internal/usecase"
	"github.com/Gunvolt24/cloak_gw/pkg/logger"
	"github.com/Gunvolt24/cloak_gw/pkg/validate"
)

const operatorToken = "itest-operator"

type server struct {
	ts  *httptest.Server
	api *testutil.FakeUpstream
}

// newServer - весь стек: Postgres-журнал, фейковый внешний API, gin-роутер.
func newServer(t *testing.T) *server {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	api := testutil.StartFakeUpstream("itest-key")
	t.Cleanup(api.Close)

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	store := cachemem.NewStore()
	client := upstream.NewClient(upstream.Config{BaseURL: api.URL(), APIKey: "itest-key", BackoffStep: 10 * time.Millisecond}, nil, logg)
	fetcher := usecase.NewReferenceFetcher(client, store, time.Minute, logg)
	scheduler := usecase.NewRefreshScheduler(fetcher, domain.ReferenceJobs(30*time.Second), 4, logg)
	gateway := usecase.NewGatewayService(client, pgrepo.NewCallLogRepository(pg.Pool), logg)

	h := rest.NewHandler(rest.Services{
		Reference: usecase.NewReferenceService(store, fetcher, scheduler, logg),
		Admin:     usecase.NewCacheAdmin(store, scheduler, validate.NewCommandValidator(), logg),
		Gateway:   gateway,
		Calls:     gateway,
		Auth:      auth.NewStaticToken(operatorToken),
	}, logg, 10*time.Second)

	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)
	return &server{ts: ts, api: api}
}

func (s *server) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.ts.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// 1) Справочник: первый запрос прогревает кэш, повторный не ходит в API
func TestHTTP_Reference_ServedFromCache_TC(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/reference/countries", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"success","data":[{"id":1,"name":"countries"}]}`, string(body))

	_, _ = s.do(t, http.MethodGet, "/api/reference/countries", "")
	require.Equal(t, 1, s.api.Hits("/references/countries"))
	require.Equal(t, 1, s.api.Hits("/references/connection-types"))

	resp, body = s.do(t, http.MethodGet, "/api/cache/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		Entries []domain.CacheStat `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	require.Len(t, stats.Entries, 7)
}

// 2) Очистка + недоступный API: мягкая ошибка, ничего не кэшируется
func TestHTTP_Reference_SoftErrorAfterClear_TC(t *testing.T) {
	s := newServer(t)

	resp, _ := s.do(t, http.MethodPost, "/api/cache/warmup", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/cache/clear", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"cleared":7}`, string(body))

	s.api.FailWith("/references/devices", http.StatusBadRequest)
	resp, body = s.do(t, http.MethodGet, "/api/reference/devices", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"error","data":[],"message":"failed to fetch devices data"}`, string(body))
}

// 3) Потоки: ответ API ретранслируется, вызовы пишутся в журнал
func TestHTTP_Flows_RelayAndCallLog_TC(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/flows", `{"name":"promo","filter_countries":[1,2]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"success","data":{"id":100,"name":"promo"},"message":"flow created"}`, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/flows/404", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"status":"error","data":null,"message":"flow not found","code":404}`, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/logs?limit=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []domain.CallLog
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 2)
	require.Equal(t, domain.EndpointFlowsGet, logs[0].Endpoint)
	require.Equal(t, domain.OutcomeRejected, logs[0].Outcome)
	require.Equal(t, domain.EndpointFlowsCreate, logs[1].Endpoint)
	require.Equal(t, domain.OutcomeSuccess, logs[1].Outcome)
	require.NotEmpty(t, logs[1].RequestID)
}

// 4) Исчерпанные ретраи 5xx -> 502 и запись failed в журнале
func TestHTTP_Flows_UpstreamDown_502_TC(t *testing.T) {
	s := newServer(t)
	s.api.FailWith(domain.EndpointFlowsList, http.StatusServiceUnavailable)

	resp, body := s.do(t, http.MethodGet, "/api/flows?"+url.Values{"search": {"promo"}}.Encode(), "")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.JSONEq(t, `{"status":"error","data":[],"message":"upstream request failed"}`, string(body))
	require.Equal(t, 5, s.api.Hits(domain.EndpointFlowsList))

	_, body = s.do(t, http.MethodGet, "/api/logs", "")
	var logs []domain.CallLog
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 1)
	require.Equal(t, domain.OutcomeFailed, logs[0].Outcome)
}

// 5) /ping, /metrics, 404 и 401 без токена
func TestHTTP_Health_Metrics_Auth_TC(t *testing.T) {
	s := newServer(t)

	resp, err := http.Get(s.ts.URL + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(body))

	resp, err = http.Get(s.ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body)

	resp, err = http.Get(s.ts.URL + "/api/cache/stats")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/no/such/route", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"route not found"}`, string(body))
}
