package session_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"msgboard/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var (
		manager *session.Manager
		secret  []byte
	)

	// carry moves the cookies set on rec into a fresh request.
	carry := func(rec *httptest.ResponseRecorder) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		return req
	}

	BeforeEach(func() {
		secret = []byte("0123456789abcdef0123456789abcdef")
		manager = session.NewManager(secret, time.Hour, false)
	})

	Describe("Save and Token", func() {
		It("should round trip the token through the cookie", func() {
			rec := httptest.NewRecorder()
			Expect(manager.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), "signed.token")).To(Succeed())

			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(session.CookieName))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].Value).NotTo(ContainSubstring("signed.token"))

			token, err := manager.Token(carry(rec))
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("signed.token"))
		})

		It("should report no token without a cookie", func() {
			_, err := manager.Token(httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(err).To(MatchError(session.ErrNoToken))
		})

		It("should reject cookies signed with another secret", func() {
			rec := httptest.NewRecorder()
			other := session.NewManager([]byte("another-secret-another-secret!!!"), time.Hour, false)
			Expect(other.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), "signed.token")).To(Succeed())

			_, err := manager.Token(carry(rec))
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(session.ErrNoToken))
		})
	})

	Describe("Clear", func() {
		It("should drop the token", func() {
			rec := httptest.NewRecorder()
			Expect(manager.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), "signed.token")).To(Succeed())

			cleared := httptest.NewRecorder()
			Expect(manager.Clear(cleared, carry(rec))).To(Succeed())

			_, err := manager.Token(carry(cleared))
			Expect(err).To(MatchError(session.ErrNoToken))
		})
	})

	Describe("Flashes", func() {
		It("should return added flashes once", func() {
			rec := httptest.NewRecorder()
			Expect(manager.AddFlash(rec, httptest.NewRequest(http.MethodPost, "/", nil), "registered")).To(Succeed())

			read := httptest.NewRecorder()
			flashes, err := manager.Flashes(read, carry(rec))
			Expect(err).NotTo(HaveOccurred())
			Expect(flashes).To(Equal([]string{"registered"}))

			flashes, err = manager.Flashes(httptest.NewRecorder(), carry(read))
			Expect(err).NotTo(HaveOccurred())
			Expect(flashes).To(BeEmpty())
		})
	})
})
