package location_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/ccpadmin/internal/location"
)

var _ = Describe("Location", func() {
	Describe("Parse", func() {
		It("splits the origin like a browser does", func() {
			loc, err := location.Parse("https://admin.example.org:8443/")

			Expect(err).ToNot(HaveOccurred())
			Expect(loc).To(Equal(location.Location{
				Protocol: "https:",
				Hostname: "admin.example.org",
				Port:     "8443",
			}))
		})

		It("leaves the port empty when the scheme default is used", func() {
			loc, err := location.Parse("http://localhost/some/page")

			Expect(err).ToNot(HaveOccurred())
			Expect(loc.Port).To(BeEmpty())
		})

		It("keeps IPv6 hosts bracketed", func() {
			loc, err := location.Parse("http://[::1]:8080/")

			Expect(err).ToNot(HaveOccurred())
			Expect(loc.BaseURL()).To(Equal("http://[::1]:8080/api"))
		})

		It("rejects relative URLs", func() {
			_, err := location.Parse("/admin")

			Expect(err).To(MatchError(location.ErrInvalidOrigin))
		})

		It("rejects malformed URLs", func() {
			_, err := location.Parse("http://[::1")

			Expect(err).To(MatchError(location.ErrInvalidOrigin))
		})
	})

	DescribeTable("BaseURL",
		func(loc location.Location, expected string) {
			Expect(loc.BaseURL()).To(Equal(expected))
		},
		Entry("https with explicit port",
			location.Location{Protocol: "https:", Hostname: "admin.example.org", Port: "8443"},
			"https://admin.example.org:8443/api"),
		Entry("http on loopback",
			location.Location{Protocol: "http:", Hostname: "127.0.0.1", Port: "8080"},
			"http://127.0.0.1:8080/api"),
		Entry("default port is kept verbatim",
			location.Location{Protocol: "https:", Hostname: "example.org"},
			"https://example.org:/api"),
	)

	It("derives the base URL from a parsed page location", func() {
		loc, err := location.Parse("https://admin.example.org:8443/")

		Expect(err).ToNot(HaveOccurred())
		Expect(loc.BaseURL()).To(Equal("https://admin.example.org:8443/api"))
	})
})
