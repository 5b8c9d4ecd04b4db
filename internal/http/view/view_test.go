package view_test

import (
	"bytes"

	"msgboard/internal/http/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Templates", func() {
	var (
		templates *view.Templates
		buf       *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		templates, err = view.NewTemplates()
		Expect(err).NotTo(HaveOccurred())
		buf = new(bytes.Buffer)
	})

	It("should render the login form", func() {
		err := templates.Render(buf, view.LoginPage, view.Page{Title: "Log In"})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`<form method="post" action="/">`))
		Expect(buf.String()).To(ContainSubstring(`name="password"`))
	})

	It("should render field errors and keep submitted values", func() {
		err := templates.Render(buf, view.RegisterPage, view.Page{
			Errors: map[string]string{"username": "That username already exists."},
			Form:   map[string]string{"username": "alice", "email": "a@x.com"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("That username already exists."))
		Expect(buf.String()).To(ContainSubstring(`value="a@x.com"`))
	})

	It("should escape user supplied text", func() {
		err := templates.Render(buf, view.UserPage, view.Page{
			Username: "<script>",
			Flashes:  []string{"Message posted"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("&lt;script&gt;"))
		Expect(buf.String()).To(ContainSubstring("Message posted"))
	})

	It("should fail on unknown pages", func() {
		Expect(templates.Render(buf, "missing", view.Page{})).To(MatchError(ContainSubstring("unknown page")))
	})
})
