package cmd_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"msgboard/cmd"
	"msgboard/internal/config"
	"msgboard/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Board app", func() {
	var (
		app    *cmd.App
		ts     *httptest.Server
		client *http.Client
	)

	post := func(path string, values url.Values) *http.Response {
		resp, err := client.PostForm(ts.URL+path, values)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	body := func(resp *http.Response) string {
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return string(b)
	}

	register := func(username, email, password, confirm string) *http.Response {
		return post("/register", url.Values{
			"username":          {username},
			"email":             {email},
			"password":          {password},
			"approved_password": {confirm},
		})
	}

	login := func(username, password string) *http.Response {
		return post("/", url.Values{"username": {username}, "password": {password}})
	}

	signedIn := func() bool {
		resp, err := client.Get(ts.URL + "/user")
		Expect(err).NotTo(HaveOccurred())
		return strings.Contains(body(resp), "Signed in as")
	}

	BeforeEach(func() {
		cfg := config.App{
			Port:            "0",
			DBDriver:        config.DriverSQLite,
			DBConnectionURL: filepath.Join(GinkgoT().TempDir(), "board.db"),
			SessionSecret:   "0123456789abcdef0123456789abcdef",
			SessionTTL:      time.Hour,
			BcryptCost:      bcrypt.MinCost,
			LogLevel:        "info",
		}

		var err error
		app, err = cmd.NewApp(zap.NewNop().Sugar(), cfg)
		Expect(err).NotTo(HaveOccurred())
		ts = httptest.NewServer(app.Handler)

		jar, err := cookiejar.New(nil)
		Expect(err).NotTo(HaveOccurred())
		client = &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		DeferCleanup(func() {
			ts.Close()
			Expect(app.Close()).To(Succeed())
		})
	})

	It("should register and then log in with the same credentials", func() {
		resp := register("alice", "a@x.com", "pw123", "pw123")
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/"))

		resp, err := client.Get(ts.URL + "/")
		Expect(err).NotTo(HaveOccurred())
		Expect(body(resp)).To(ContainSubstring("Registration successful"))

		resp = login("alice", "pw123")
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/user"))
		Expect(resp.Cookies()).To(ContainElement(HaveField("Name", session.CookieName)))

		resp, err = client.Get(ts.URL + "/user")
		Expect(err).NotTo(HaveOccurred())
		Expect(body(resp)).To(ContainSubstring("Signed in as <strong>alice</strong>"))
	})

	It("should keep a wrong password on the login page without a session", func() {
		body(register("alice", "a@x.com", "pw123", "pw123"))

		resp := login("alice", "wrong")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body(resp)).To(ContainSubstring("Invalid username or password."))
		Expect(signedIn()).To(BeFalse())
	})

	It("should reject a username that is already registered", func() {
		body(register("alice", "a@x.com", "pw123", "pw123"))

		resp := register("alice", "other@x.com", "pw456", "pw456")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body(resp)).To(ContainSubstring("That username already exists"))

		resp = login("alice", "pw456")
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should reject mismatched passwords", func() {
		resp := register("bob", "b@x.com", "pw123", "pw124")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body(resp)).To(ContainSubstring("passwords need to match"))

		resp = login("bob", "pw123")
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should reject a password bcrypt cannot hash as a form error", func() {
		long := strings.Repeat("p", 73)
		resp := register("carol", "c@x.com", long, long)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body(resp)).To(ContainSubstring("no more than 72 bytes"))

		resp = login("carol", long)
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should fail when a message title is reused", func() {
		resp := post("/user", url.Values{"title": {"Hi"}, "message": {"first"}, "category": {"one"}})
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusFound))

		resp = post("/user", url.Values{"title": {"Hi"}, "message": {"second"}, "category": {"two"}})
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("should clear the session on logout", func() {
		body(register("alice", "a@x.com", "pw123", "pw123"))
		body(login("alice", "pw123"))
		Expect(signedIn()).To(BeTrue())

		resp, err := client.Get(ts.URL + "/logout")
		Expect(err).NotTo(HaveOccurred())
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusFound))

		Expect(signedIn()).To(BeFalse())
	})

	It("should expose prometheus metrics", func() {
		body(register("alice", "a@x.com", "pw123", "pw123"))

		resp, err := client.Get(ts.URL + "/metrics")
		Expect(err).NotTo(HaveOccurred())
		out := body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(out).To(ContainSubstring("register_success_total 1"))
		Expect(out).To(ContainSubstring("http_request_duration_seconds"))
	})

	It("should answer unsupported methods with 405", func() {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/user", nil)
		Expect(err).NotTo(HaveOccurred())
		resp, err := client.Do(req)
		Expect(err).NotTo(HaveOccurred())
		body(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
	})
})
