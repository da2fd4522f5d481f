package middleware

// Тесты мидлваров HTTP-слоя:
//  - порядок применения Chain;
//  - генерация и прокидывание X-Request-Id;
//  - Authenticate/RequireAuth (анонимный проход, валидный и битый токен);
//  - Timeout (установка deadline, уважение родительского);
//  - Recover (паника -> 500 с конвертом ошибки);
//  - Logging (статус/байты/request_id в записи);
//  - statusWriter (неявный 200, подсчёт байт).

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

// logCapture — slog.Handler, складывающий последнюю запись в map,
// включая атрибуты, накопленные через Logger.With(...). Без I/O.
type logCapture struct {
	withAttrs []slog.Attr
	message   string
	attrs     map[string]any
	records   int
}

func (c *logCapture) Enabled(context.Context, slog.Level) bool { return true }

func (c *logCapture) Handle(_ context.Context, rec slog.Record) error {
	got := make(map[string]any, len(c.withAttrs)+8)
	for _, a := range c.withAttrs {
		got[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		got[a.Key] = a.Value.Any()
		return true
	})

	c.records++
	c.message = rec.Message
	c.attrs = got
	return nil
}

func (c *logCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	c.withAttrs = append(c.withAttrs, attrs...)
	return c
}

func (c *logCapture) WithGroup(string) slog.Handler { return c }

func getRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "127.0.0.1:12345"
	return req
}

type errEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// stubValidator — детерминированный TokenValidator для тестов.
type stubValidator struct {
	identity service.Identity
	err      error
}

func (v stubValidator) ValidateAccessToken(string) (service.Identity, error) {
	return v.identity, v.err
}

func TestChain_Order(t *testing.T) {
	var trace []string

	named := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name+">")
				next.ServeHTTP(w, r)
				trace = append(trace, "<"+name)
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	Chain(final, named("outer"), named("inner")).ServeHTTP(rr, getRequest("/chain"))

	require.Equal(t, []string{"outer>", "inner>", "handler", "<inner", "<outer"}, trace)
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	var seenID string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Chain(h, RequestID()).ServeHTTP(rr, getRequest("/rid"))

	respID := rr.Header().Get("X-Request-Id")
	require.NotEmpty(t, respID)
	require.Len(t, respID, 32) // 16 байт -> 32 hex-символа
	require.Equal(t, respID, seenID)
}

func TestRequestID_UseExisting(t *testing.T) {
	const given = "abc123-existing-id"
	var seenID string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := getRequest("/rid2")
	req.Header.Set("X-Request-Id", given)
	Chain(h, RequestID()).ServeHTTP(rr, req)

	require.Equal(t, given, rr.Header().Get("X-Request-Id"))
	require.Equal(t, given, seenID)
}

func TestAuthenticate_AnonymousWithoutHeader(t *testing.T) {
	var found bool

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Chain(h, Authenticate(stubValidator{})).ServeHTTP(rr, getRequest("/anon"))

	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, found)
}

func TestAuthenticate_ValidToken_PopulatesIdentity(t *testing.T) {
	want := service.Identity{
		UserID:   uuid.New(),
		Username: "alice",
		Role:     models.RoleAuthor,
	}

	var got service.Identity
	var found bool

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := getRequest("/auth")
	req.Header.Set("Authorization", "Bearer token-123")
	Chain(h, Authenticate(stubValidator{identity: want})).ServeHTTP(rr, req)

	require.True(t, found)
	require.Equal(t, want, got)
}

func TestAuthenticate_RejectsMalformedHeader(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})
	chain := Chain(h, Authenticate(stubValidator{}))

	for _, header := range []string{"Basic aaa", "Bearer ", "Bearer"} {
		rr := httptest.NewRecorder()
		req := getRequest("/auth-bad")
		req.Header.Set("Authorization", header)
		chain.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code, header)
	}
}

func TestAuthenticate_RejectsInvalidToken(t *testing.T) {
	chain := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}),
		Authenticate(stubValidator{err: service.ErrTokenExpired}),
	)

	rr := httptest.NewRecorder()
	req := getRequest("/auth-expired")
	req.Header.Set("Authorization", "Bearer stale")
	chain.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "token_expired", env.Error.Code)
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	chain := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		RequireAuth(),
	)

	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, getRequest("/protected"))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	ident := service.Identity{UserID: uuid.New(), Username: "bob", Role: models.RoleReader}

	chain := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		Authenticate(stubValidator{identity: ident}),
		RequireAuth(),
	)

	rr := httptest.NewRecorder()
	req := getRequest("/protected2")
	req.Header.Set("Authorization", "Bearer ok")
	chain.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestTimeout_SetsDeadline_WhenAbsent(t *testing.T) {
	var hasDeadline bool
	var left time.Duration

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dl, ok := r.Context().Deadline()
		hasDeadline = ok
		if ok {
			left = time.Until(dl)
		}
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Chain(h, Timeout(50*time.Millisecond)).ServeHTTP(rr, getRequest("/timeout"))

	require.True(t, hasDeadline)
	require.Greater(t, left, time.Duration(0))
}

func TestTimeout_DoesNotOverrideExistingDeadline(t *testing.T) {
	var childDL time.Time

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dl, _ := r.Context().Deadline()
		childDL = dl
		w.WriteHeader(http.StatusOK)
	})

	parent, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := getRequest("/timeout2").WithContext(parent)

	rr := httptest.NewRecorder()
	Chain(h, Timeout(time.Second)).ServeHTTP(rr, req) // дольше родителя

	parentDL, _ := parent.Deadline()
	require.WithinDuration(t, parentDL, childDL, time.Millisecond)
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	Chain(panicking, Recover()).ServeHTTP(rr, getRequest("/panic"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "internal", env.Error.Code)
	require.NotEmpty(t, env.Error.Message)
}

func TestLogging_WritesRecord_WithStatusDurBytesAndRequestID(t *testing.T) {
	capture := &logCapture{}
	logger := slog.New(capture)

	const rid = "rid-456"
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// WriteHeader не вызывается: статус должен стать 200 после Write.
		_, _ = w.Write([]byte("0123456789"))
	})

	// RequestID раньше Logging, иначе id не попадёт в запись.
	handler := Chain(final, RequestID(), Logging(logger))

	rr := httptest.NewRecorder()
	req := getRequest("/log")
	req.Header.Set("X-Request-Id", rid)
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, capture.records)
	require.Equal(t, "http", capture.message)

	method, _ := capture.attrs["method"].(string)
	path, _ := capture.attrs["path"].(string)
	status, _ := capture.attrs["status"].(int64) // числа в slog — int64
	bytes, _ := capture.attrs["bytes"].(int64)
	ridAttr, _ := capture.attrs["request_id"].(string)

	require.Equal(t, http.MethodGet, method)
	require.Equal(t, "/log", path)
	require.EqualValues(t, http.StatusOK, status)
	require.EqualValues(t, 10, bytes)
	require.Equal(t, rid, ridAttr)

	_, hasDur := capture.attrs["dur"]
	require.True(t, hasDur)
}

func TestStatusWriter_CountsBytes_AndDefaultStatus200(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := newStatusWriter(rr)

	_, _ = sw.Write([]byte("abcd"))

	require.Equal(t, http.StatusOK, sw.status)
	require.Equal(t, 4, sw.count)
}

var errSentinel = errors.New("sentinel")

// stubValidator обязан отдавать ошибку как есть — на этом строятся
// негативные сценарии выше.
func TestStubValidator_PropagatesError(t *testing.T) {
	_, err := stubValidator{err: errSentinel}.ValidateAccessToken("x")
	require.ErrorIs(t, err, errSentinel)
}
