package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/internal/http/middleware"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

type stubAuth struct {
	validateFn func(ctx context.Context, sessionID int64) (*model.Caller, error)
}

func (s *stubAuth) GetAuthorizationURL(string) (string, error) { return "", nil }

func (s *stubAuth) HandleCallback(context.Context, string) (*model.User, *model.Session, error) {
	return nil, nil, nil
}

func (s *stubAuth) ValidateSession(ctx context.Context, sessionID int64) (*model.Caller, error) {
	return s.validateFn(ctx, sessionID)
}

func (s *stubAuth) Logout(context.Context, int64) error { return nil }

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, observation{method: method, route: route, status: status})
}

var _ = Describe("RequireSession", func() {
	var (
		router *gin.Engine
		auth   *stubAuth
		seen   *model.Caller
	)

	BeforeEach(func() {
		seen = nil
		auth = &stubAuth{validateFn: func(_ context.Context, sessionID int64) (*model.Caller, error) {
			return &model.Caller{UserID: sessionID * 10}, nil
		}}
		router = gin.New()
		router.GET("/private", middleware.RequireSession(auth), func(c *gin.Context) {
			seen = middleware.GetCaller(c)
			c.Status(http.StatusNoContent)
		})
	})

	It("resolves the caller from the session cookie", func() {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "4"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen).NotTo(BeNil())
		Expect(seen.UserID).To(Equal(int64(40)))
	})

	It("falls back to the session header", func() {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeaderName, "5")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen.UserID).To(Equal(int64(50)))
	})

	It("rejects requests without a session", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(seen).To(BeNil())
	})

	It("clears the cookie of an expired session", func() {
		auth.validateFn = func(context.Context, int64) (*model.Caller, error) {
			return nil, service.ErrSessionExpired
		}
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "4"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "="))
	})

	It("returns 500 when the session store fails", func() {
		auth.validateFn = func(context.Context, int64) (*model.Caller, error) {
			return nil, errors.New("db down")
		}
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeaderName, "4")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("RequestID", func() {
	var (
		router   *gin.Engine
		loggedID string
	)

	BeforeEach(func() {
		loggedID = ""
		router = gin.New()
		router.Use(middleware.RequestID())
		router.GET("/ping", func(c *gin.Context) {
			if f := logger.GetLogFields(c.Request.Context()); f.RequestID != nil {
				loggedID = *f.RequestID
			}
			c.Status(http.StatusOK)
		})
	})

	It("keeps an incoming request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-123"))
		Expect(loggedID).To(Equal("req-123"))
	})

	It("mints one when absent", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		Expect(id).To(HaveLen(36))
		Expect(loggedID).To(Equal(id))
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500", func() {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(*gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("internal server error"))
	})
})

var _ = Describe("Metrics", func() {
	It("labels observations with the route template", func() {
		observer := &fakeObserver{}
		router := gin.New()
		router.Use(middleware.Metrics(observer))
		router.GET("/submissions/:submissionId/queries", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/100/queries", nil))

		Expect(observer.seen).To(ConsistOf(observation{
			method: http.MethodGet,
			route:  "/submissions/:submissionId/queries",
			status: http.StatusOK,
		}))
	})
})
