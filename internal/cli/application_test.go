package cli_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/zhulik/ccpadmin/internal/admin"
	ccpcli "github.com/zhulik/ccpadmin/internal/cli"
	"github.com/zhulik/ccpadmin/internal/codec"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/testhelpers"
)

var _ = Describe("Application", Serial, func() {
	var (
		backend *ghttp.Server
		out     *bytes.Buffer
	)

	procedure := func(method string) string {
		return core.APIPathPrefix + "/" + admin.ServiceName + "/" + method
	}

	run := func(args ...string) error {
		cmd := ccpcli.NewCommand()
		cmd.Writer = out
		cmd.ErrWriter = io.Discard

		return cmd.Run(context.Background(), append([]string{"ccpadmin", "--origin", backend.URL()}, args...))
	}

	BeforeEach(func() {
		backend = ghttp.NewServer()
		DeferCleanup(backend.Close)

		out = &bytes.Buffer{}

		for _, name := range []string{"CCP_ADMIN_ORIGIN", "CCP_ADMIN_USERNAME", "CCP_ADMIN_API_KEY", "CCP_ADMIN_AUTH", "CCP_ADMIN_PROFILE"} {
			value, ok := os.LookupEnv(name)
			Expect(os.Unsetenv(name)).To(Succeed())

			if ok {
				DeferCleanup(os.Setenv, name, value)
			}
		}
	})

	Describe("packages", func() {
		It("lists active packages with the default credentials", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodListActivePackages)),
				ghttp.VerifyHeaderKV(core.HeaderAuthorization, "ApiKey test:test"),
				ghttp.VerifyJSON(`{}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":["a","b"]}`),
			))

			Expect(run("packages")).To(Succeed())

			result, err := codec.Decode[admin.ListActivePackagesResponse](out.Bytes())
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Value).To(Equal([]string{"a", "b"}))
		})

		It("uses the credentials from the flags", func() {
			Expect(os.Setenv("CCP_ADMIN_USERNAME", "env")).To(Succeed())
			DeferCleanup(os.Unsetenv, "CCP_ADMIN_USERNAME")

			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV(core.HeaderAuthorization, "ApiKey flag:secret"),
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":[]}`),
			))

			Expect(run("--username", "flag", "--api-key", "secret", "packages")).To(Succeed())
		})

		It("uses the credentials from the environment", func() {
			Expect(os.Setenv("CCP_ADMIN_USERNAME", "env")).To(Succeed())
			DeferCleanup(os.Unsetenv, "CCP_ADMIN_USERNAME")

			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV(core.HeaderAuthorization, "ApiKey env:test"),
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":[]}`),
			))

			Expect(run("packages")).To(Succeed())
		})

		It("does not send the Authorization header with --no-auth", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				func(_ http.ResponseWriter, r *http.Request) {
					Expect(r.Header.Values(core.HeaderAuthorization)).To(BeEmpty())
				},
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":[]}`),
			))

			Expect(run("--no-auth", "packages")).To(Succeed())
		})

		It("reads the connection settings from a profile", func() {
			path := filepath.Join(GinkgoT().TempDir(), "profile.yaml")
			Expect(os.WriteFile(path, []byte("username: profile\napiKey: key\n"), 0o600)).To(Succeed())

			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV(core.HeaderAuthorization, "ApiKey profile:key"),
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":[]}`),
			))

			Expect(run("--profile", path, "packages")).To(Succeed())
		})

		It("returns the server error", func() {
			backend.AppendHandlers(testhelpers.RespondWithJSON(http.StatusForbidden, `{"code":"permission_denied","message":"nope"}`))

			err := run("packages")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("nope"))
		})
	})

	Describe("package", func() {
		It("reads a package", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodReadPackage)),
				ghttp.VerifyJSON(`{"id":"pkg-1"}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{"pkg":{"id":"pkg-1","name":"images"}}`),
			))

			Expect(run("package", "pkg-1")).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`"images"`))
		})

		It("requires an id", func() {
			Expect(run("package")).To(MatchError(core.ErrInvalidRequest))
			Expect(backend.ReceivedRequests()).To(BeEmpty())
		})
	})

	Describe("submit", func() {
		It("creates a package", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodCreatePackage)),
				ghttp.VerifyJSON(`{"name":"images","type":"TRANSFER_TYPE_ZIP_FILE","path":["/a","/b"],"autoApprove":true}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{"id":"pkg-1"}`),
			))

			Expect(run("submit", "--name", "images", "--path", "/a", "--path", "/b", "--type", "zip-file", "--auto-approve")).
				To(Succeed())
			Expect(out.String()).To(ContainSubstring(`"pkg-1"`))
		})

		It("rejects unknown transfer types", func() {
			err := run("submit", "--name", "images", "--path", "/a", "--type", "floppy")
			Expect(err).To(MatchError(admin.ErrUnknownTransferType))
			Expect(backend.ReceivedRequests()).To(BeEmpty())
		})
	})

	Describe("approve", func() {
		It("approves a transfer", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodApproveTransfer)),
				ghttp.VerifyJSON(`{"type":"TRANSFER_TYPE_STANDARD","directory":"images"}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{"id":"pkg-1"}`),
			))

			Expect(run("approve", "--directory", "images")).To(Succeed())
		})
	})

	Describe("resolve", func() {
		It("resolves a decision", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodResolveAwaitingDecision)),
				ghttp.VerifyJSON(`{"id":"d-1","choiceId":2}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{}`),
			))

			Expect(run("resolve", "d-1", "2")).To(Succeed())
		})

		It("rejects a non numeric choice", func() {
			Expect(run("resolve", "d-1", "two")).To(MatchError(core.ErrInvalidRequest))
		})
	})

	Describe("decisions", func() {
		It("lists awaiting decisions", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodListAwaitingDecisions)),
				testhelpers.RespondWithJSON(http.StatusOK, `{"value":[{"id":"d-1","name":"Approve?"}]}`),
			))

			Expect(run("decisions")).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`"Approve?"`))
		})
	})

	Describe("call", func() {
		It("forwards the raw message", func() {
			backend.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, procedure(admin.MethodApprovePartialReingest)),
				ghttp.VerifyJSON(`{"id":"x"}`),
				testhelpers.RespondWithJSON(http.StatusOK, `{"id":"x","status":"ok"}`),
			))

			Expect(run("call", admin.MethodApprovePartialReingest, `{"id":"x"}`)).To(Succeed())
			Expect(out.String()).To(MatchJSON(`{"id":"x","status":"ok"}`))
		})

		It("rejects unknown methods", func() {
			Expect(run("call", "DropDatabase")).To(MatchError(core.ErrUnknownMethod))
		})

		It("rejects malformed JSON", func() {
			Expect(run("call", admin.MethodReadPackage, "{")).To(MatchError(core.ErrInvalidRequest))
		})
	})

	Describe("serve", func() {
		It("rejects an invalid backend", func() {
			Expect(run("serve", "--backend", "not a url")).To(MatchError(core.ErrInvalidConfig))
		})
	})
})
