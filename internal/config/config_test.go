package config_test

import (
	"os"
	"path/filepath"
	"time"

	"msgboard/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		cfg  config.App
		err  error
		vars map[string]string
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	BeforeEach(func() {
		config.DotEnvFile = filepath.Join(GinkgoT().TempDir(), ".env")
		vars = map[string]string{
			"SESSION_SECRET": "0123456789abcdef0123",
		}
		for _, key := range []string{"API_PORT", "DB_DRIVER", "DB_CONNECTION_URL", "SESSION_TTL", "BCRYPT_COST", "LOG_LEVEL", "SESSION_SECURE_COOKIE"} {
			prev, had := os.LookupEnv(key)
			if had {
				os.Unsetenv(key)
				DeferCleanup(os.Setenv, key, prev)
			}
		}
	})

	JustBeforeEach(func() {
		for k, v := range vars {
			setEnv(k, v)
		}
		cfg, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("should fill in defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("5000"))
			Expect(cfg.DBDriver).To(Equal(config.DriverSQLite))
			Expect(cfg.DBConnectionURL).To(Equal("database.db"))
			Expect(cfg.SessionTTL).To(Equal(24 * time.Hour))
			Expect(cfg.BcryptCost).To(Equal(10))
			Expect(cfg.SecureCookie).To(BeFalse())
			Expect(cfg.LogLevel).To(Equal("info"))
		})
	})

	When("overrides are provided", func() {
		BeforeEach(func() {
			vars["API_PORT"] = "8080"
			vars["DB_DRIVER"] = "postgres"
			vars["DB_CONNECTION_URL"] = "postgres://u:p@localhost/board"
			vars["SESSION_TTL"] = "30m"
			vars["SESSION_SECURE_COOKIE"] = "true"
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.DBDriver).To(Equal(config.DriverPostgres))
			Expect(cfg.SessionTTL).To(Equal(30 * time.Minute))
			Expect(cfg.SecureCookie).To(BeTrue())
		})
	})

	When("the session secret is missing", func() {
		BeforeEach(func() {
			delete(vars, "SESSION_SECRET")
			prev, had := os.LookupEnv("SESSION_SECRET")
			if had {
				os.Unsetenv("SESSION_SECRET")
				DeferCleanup(os.Setenv, "SESSION_SECRET", prev)
			}
		})

		It("should fail", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})

	When("the driver is unknown", func() {
		BeforeEach(func() {
			vars["DB_DRIVER"] = "mysql"
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("validate config")))
		})
	})

	When("a .env file is present", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(config.DotEnvFile, []byte("API_PORT=9090\n"), 0o600)).To(Succeed())
			DeferCleanup(os.Unsetenv, "API_PORT")
		})

		It("should load it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("9090"))
		})
	})
})
