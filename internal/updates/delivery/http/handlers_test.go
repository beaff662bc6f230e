package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	updatesHTTP "daily-updates/internal/updates/delivery/http"
	"daily-updates/internal/updates/usecase"
	pkgLog "daily-updates/pkg/log"
	"daily-updates/pkg/response"
	"daily-updates/pkg/slackhook"
)

// ── Test Helpers ───────────────────────────────────────────────────────────

type webhookRecorder struct {
	mu       sync.Mutex
	payloads []map[string]interface{}
	status   int
}

func (r *webhookRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var payload map[string]interface{}
	json.NewDecoder(req.Body).Decode(&payload)

	r.mu.Lock()
	r.payloads = append(r.payloads, payload)
	status := r.status
	r.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func (r *webhookRecorder) calls() []map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]interface{}(nil), r.payloads...)
}

func newTestEngine(t *testing.T, token string) (*gin.Engine, *webhookRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := &webhookRecorder{}
	ts := httptest.NewServer(rec)
	t.Cleanup(ts.Close)

	l := pkgLog.NewNop()
	client := slackhook.NewClient(ts.URL, time.Second)
	uc := usecase.New(l, client, "")
	h := updatesHTTP.New(l, uc, updatesHTTP.SecurityConfig{Token: token})

	engine := gin.New()
	updatesHTTP.RegisterRoutes(engine, h)
	return engine, rec
}

func postForm(engine *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/updates", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestPostUpdate_Success(t *testing.T) {
	engine, rec := newTestEngine(t, "")

	w := postForm(engine, url.Values{
		"user_name":    {"alice"},
		"text":         {"t: wrote spec\ny: reviewed PR\nb: blocked on review\nrandom line"},
		"channel_name": {"general"},
		"team_id":      {"T0001"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	calls := rec.calls()
	require.Len(t, calls, 1)
	msg := calls[0]
	assert.Equal(t, "Updates: alice", msg["username"])
	assert.Equal(t, "#general", msg["channel"])
	assert.NotEmpty(t, msg["icon_url"])

	atts := msg["attachments"].([]interface{})
	require.Len(t, atts, 3)
	for i, want := range []struct{ title, text string }{
		{"Today", "- wrote spec"},
		{"Yesterday", "- reviewed PR"},
		{"Blockers", "- blocked on review"},
	} {
		att := atts[i].(map[string]interface{})
		assert.Equal(t, want.title, att["title"])
		assert.Equal(t, want.text, att["text"])
	}

	raw, _ := json.Marshal(msg)
	assert.NotContains(t, string(raw), "random line")
}

func TestPostUpdate_QueryParams(t *testing.T) {
	engine, rec := newTestEngine(t, "")

	q := url.Values{"user_name": {"bob"}, "text": {"t: pairing"}, "channel_name": {"#general"}}
	req := httptest.NewRequest(http.MethodPost, "/updates?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	calls := rec.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "#general", calls[0]["channel"])
}

func TestPostUpdate_NoChannel(t *testing.T) {
	engine, rec := newTestEngine(t, "")

	w := postForm(engine, url.Values{"user_name": {"bob"}, "text": {"t: pairing"}})

	assert.Equal(t, http.StatusOK, w.Code)
	calls := rec.calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0], "channel")
}

func TestPostUpdate_EmptyTextStillPosts(t *testing.T) {
	engine, rec := newTestEngine(t, "")

	w := postForm(engine, url.Values{"user_name": {"bob"}, "text": {""}})

	assert.Equal(t, http.StatusOK, w.Code)
	calls := rec.calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0], "attachments")
}

func TestPostUpdate_MissingFields(t *testing.T) {
	tests := map[string]url.Values{
		"missing text":      {"user_name": {"alice"}},
		"missing user_name": {"text": {"t: x"}},
		"empty user_name":   {"user_name": {""}, "text": {"t: x"}},
		"empty body":        {},
	}

	for name, form := range tests {
		t.Run(name, func(t *testing.T) {
			engine, rec := newTestEngine(t, "")

			w := postForm(engine, form)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, response.ErrorCodeBadRequest, resp.ErrorCode)
			assert.Empty(t, rec.calls(), "no outbound call")
		})
	}
}

func TestPostUpdate_Token(t *testing.T) {
	base := url.Values{"user_name": {"alice"}, "text": {"t: x"}}

	t.Run("wrong token", func(t *testing.T) {
		engine, rec := newTestEngine(t, "secret")
		form := url.Values{"token": {"wrong"}}
		for k, v := range base {
			form[k] = v
		}

		w := postForm(engine, form)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, rec.calls())
	})

	t.Run("missing token", func(t *testing.T) {
		engine, rec := newTestEngine(t, "secret")

		w := postForm(engine, base)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, rec.calls())
	})

	t.Run("missing token and fields", func(t *testing.T) {
		engine, rec := newTestEngine(t, "secret")

		w := postForm(engine, url.Values{})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, rec.calls())
	})

	t.Run("matching token", func(t *testing.T) {
		engine, rec := newTestEngine(t, "secret")
		form := url.Values{"token": {"secret"}}
		for k, v := range base {
			form[k] = v
		}

		w := postForm(engine, form)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, rec.calls(), 1)
	})

	t.Run("token ignored when not configured", func(t *testing.T) {
		engine, rec := newTestEngine(t, "")
		form := url.Values{"token": {"anything"}}
		for k, v := range base {
			form[k] = v
		}

		w := postForm(engine, form)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, rec.calls(), 1)
	})
}

func TestPostUpdate_WebhookFailureStillOK(t *testing.T) {
	engine, rec := newTestEngine(t, "")
	rec.status = http.StatusInternalServerError

	w := postForm(engine, url.Values{"user_name": {"alice"}, "text": {"b: prod is down"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Len(t, rec.calls(), 1, "single attempt, no retry")
}
