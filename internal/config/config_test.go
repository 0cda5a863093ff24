package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/ccpadmin/internal/config"
	"github.com/zhulik/ccpadmin/internal/core"
)

var _ = Describe("Config", Serial, func() {
	restore := func(key string) {
		old, had := os.LookupEnv(key)

		DeferCleanup(func() {
			if had {
				os.Setenv(key, old) //nolint:errcheck
			} else {
				os.Unsetenv(key) //nolint:errcheck
			}
		})
	}

	setEnv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
	}

	BeforeEach(func() {
		for _, key := range []string{
			"CCP_ADMIN_ORIGIN", "CCP_ADMIN_USERNAME", "CCP_ADMIN_API_KEY", "CCP_ADMIN_AUTH",
			"CCP_ADMIN_API_URL", "CCP_ADMIN_ASSETS", "HTTP_PORT", "LOG_LEVEL",
		} {
			restore(key)
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	Describe("Load", func() {
		Context("when no environment is set", func() {
			It("returns defaults", func() {
				cfg, err := config.Load()

				Expect(err).ToNot(HaveOccurred())
				Expect(cfg).To(Equal(config.Default()))
			})
		})

		Context("when the backend is overridden", func() {
			It("uses the override", func() {
				setEnv("CCP_ADMIN_API_URL", "http://ccp:63030")

				cfg, err := config.Load()

				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.BackendURL()).To(Equal("http://ccp:63030"))
			})
		})

		Context("when auth is disabled", func() {
			It("does not require credentials", func() {
				setEnv("CCP_ADMIN_AUTH", "false")

				cfg, err := config.Load()

				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.AuthEnabled()).To(BeFalse())
			})
		})

		Context("when the port is not a number", func() {
			It("returns an error", func() {
				setEnv("HTTP_PORT", "eighty")

				_, err := config.Load()

				Expect(err).To(MatchError(core.ErrInvalidConfig))
			})
		})
	})

	Describe("Validate", func() {
		It("rejects an unknown log level", func() {
			cfg := config.Default()
			cfg.Loglevel = "loud"

			Expect(config.Validate(cfg)).To(MatchError(core.ErrInvalidConfig))
		})

		It("rejects an origin that is not a URL", func() {
			cfg := config.Default()
			cfg.OriginURL = "admin"

			Expect(config.Validate(cfg)).To(MatchError(core.ErrInvalidConfig))
		})

		It("requires credentials when auth is enabled", func() {
			cfg := config.Default()
			cfg.Key = ""

			Expect(config.Validate(cfg)).To(MatchError(core.ErrInvalidConfig))
		})
	})
})
