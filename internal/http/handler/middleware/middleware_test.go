package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"receiptchain/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w         *httptest.ResponseRecorder
		req       *http.Request
		seenID    string
		inner     http.Handler
		core      zapcore.Core
		observed  *observer.ObservedLogs
		logger    *zap.SugaredLogger
		chainUnit http.Handler
	)

	BeforeEach(func() {
		seenID = ""
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/receiptchain/dashboard", nil)
		inner = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
		core, observed = observer.New(zapcore.InfoLevel)
		logger = zap.New(core).Sugar()

		chainUnit = middleware.NewLoggingMiddleware(logger).Logging(inner)
		chainUnit = middleware.NewRequestIDMiddleware().RequestID(chainUnit)
	})

	JustBeforeEach(func() {
		chainUnit.ServeHTTP(w, req)
	})

	When("the caller sends no request id", func() {
		It("generates one and echoes it back", func() {
			_, err := uuid.Parse(seenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("logs the handled request", func() {
			Expect(observed.Len()).To(Equal(1))
			fields := observed.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("method", "GET"))
			Expect(fields).To(HaveKeyWithValue("path", "/receiptchain/dashboard"))
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("request_id", seenID))
		})
	})

	When("the caller sends a request id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
		})

		It("keeps it", func() {
			Expect(seenID).To(Equal("abc-123"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		})
	})
})
