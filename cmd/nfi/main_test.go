package main

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/logandonley/nerd-font-installer/internal/platform"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func zipOf(files map[string]string) []byte {
	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)
	for name, content := range files {
		f, err := zipWriter.Create(name)
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Write([]byte(content))
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(zipWriter.Close()).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("nfi", func() {
	var (
		assets  map[string][]byte
		server  *httptest.Server
		home    string
		fontDir string
		stdin   string
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
	)

	run := func(args ...string) error {
		opts := options{
			releaseURL: server.URL,
			client:     server.Client(),
			os:         platform.Linux,
			dirs: platform.Dirs{
				HomeDir: func() (string, error) { return home, nil },
				DataDir: func() (string, error) { return home, nil },
			},
			tempDir: GinkgoT().TempDir(),
		}

		cmd := newRootCmd(opts)
		cmd.SetArgs(args)
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		return cmd.ExecuteContext(context.Background())
	}

	BeforeEach(func() {
		assets = map[string][]byte{}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, ok := assets[path.Base(r.URL.Path)]
			if !ok {
				http.Error(w, "gone", http.StatusInternalServerError)
				return
			}
			_, _ = w.Write(data)
		}))
		DeferCleanup(server.Close)

		home = GinkgoT().TempDir()
		fontDir = filepath.Join(home, ".local", "share", "fonts")
		stdin = ""
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)

		assets["FiraCode.zip"] = zipOf(map[string]string{
			"FiraCode.ttf": "fira",
			"LICENSE":      "license",
		})
	})

	Describe("list", func() {
		It("should print numbered names", func() {
			Expect(run("list")).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("Available Nerd Fonts:\n  1. FiraCode Nerd Font\n  2. Hack Nerd Font\n"))
			Expect(stdout.String()).NotTo(ContainSubstring("Description"))
		})

		It("should print details", func() {
			Expect(run("list", "--details")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("1. FiraCode Nerd Font\n   Description: Monospaced font with programming ligatures\n   Size: 2.1 MB\n   Variants: Regular, Bold, Light\n"))
			Expect(stdout.String()).To(ContainSubstring("7. Meslo Nerd Font"))
		})
	})

	Describe("install", func() {
		It("should install a named font without prompting", func() {
			Expect(run("install", "FiraCode", "--yes")).To(Succeed())

			files, err := os.ReadDir(fontDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(HaveLen(1))
			Expect(files[0].Name()).To(Equal("FiraCode.ttf"))

			Expect(stdout.String()).To(ContainSubstring("Detected OS: Linux"))
			Expect(stdout.String()).To(ContainSubstring("[1/1] Installing FiraCode Nerd Font..."))
			Expect(stdout.String()).To(ContainSubstring("Downloading from: " + server.URL + "/FiraCode.zip"))
			Expect(stdout.String()).To(ContainSubstring("1/1 succeeded"))
		})

		It("should continue after a failed download and report the failure", func() {
			err := run("install", "fira", "hack", "-y")
			Expect(err).To(MatchError("some fonts failed to install"))

			Expect(filepath.Join(fontDir, "FiraCode.ttf")).To(BeAnExistingFile())
			Expect(stdout.String()).To(ContainSubstring("1/2 succeeded"))
			Expect(stdout.String()).To(ContainSubstring("  - Hack Nerd Font"))
			Expect(stderr.String()).To(ContainSubstring("Failed to install 'Hack Nerd Font'"))
			Expect(stderr.String()).To(ContainSubstring("500"))
		})

		Context("with --refresh-cache", func() {
			BeforeEach(func() {
				oldPath := os.Getenv("PATH")
				Expect(os.Setenv("PATH", "")).To(Succeed())
				DeferCleanup(os.Setenv, "PATH", oldPath)
			})

			It("should only warn when the font cache cannot be refreshed", func() {
				Expect(run("install", "fira", "--yes", "--refresh-cache")).To(Succeed())

				Expect(stderr.String()).To(ContainSubstring("Warning: failed to update font cache"))
				Expect(stderr.String()).To(ContainSubstring("fc-cache"))
				Expect(stdout.String()).To(ContainSubstring("1/1 succeeded"))
				Expect(filepath.Join(fontDir, "FiraCode.ttf")).To(BeAnExistingFile())
			})

			It("should not refresh when nothing was installed", func() {
				delete(assets, "FiraCode.zip")

				Expect(run("install", "fira", "--yes", "--refresh-cache")).To(HaveOccurred())
				Expect(stderr.String()).NotTo(ContainSubstring("font cache"))
			})
		})

		It("should warn about names matching no font", func() {
			Expect(run("install", "comic", "--yes")).To(Succeed())
			Expect(stderr.String()).To(ContainSubstring(`Warning: no font matches "comic"`))
			Expect(stdout.String()).To(ContainSubstring("No fonts selected for installation."))
			Expect(fontDir).NotTo(BeADirectory())
		})

		Context("with confirmation", func() {
			It("should install after a yes", func() {
				stdin = "Y\n"
				Expect(run("install", "firacode")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("• FiraCode Nerd Font (2.1 MB)"))
				Expect(stdout.String()).To(ContainSubstring("Continue with installation? [y/N]:"))
				Expect(filepath.Join(fontDir, "FiraCode.ttf")).To(BeAnExistingFile())
			})

			It("should cancel on anything else", func() {
				stdin = "nope\n"
				Expect(run("install", "firacode")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("Installation cancelled."))
				Expect(fontDir).NotTo(BeADirectory())
			})

			It("should cancel at end of input", func() {
				Expect(run("install", "firacode")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("Installation cancelled."))
			})
		})

		Context("interactively", func() {
			It("should install the picked fonts", func() {
				stdin = "1\ny\n"
				Expect(run("install")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("No fonts specified. Available Nerd Fonts:"))
				Expect(stdout.String()).To(ContainSubstring("1/1 succeeded"))
				Expect(filepath.Join(fontDir, "FiraCode.ttf")).To(BeAnExistingFile())
			})

			It("should stop when nothing valid was picked", func() {
				stdin = "99,abc\n"
				Expect(run("install")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("No fonts selected for installation."))
			})
		})

		Context("with a selection file", func() {
			var file string

			BeforeEach(func() {
				file = filepath.Join(GinkgoT().TempDir(), "fonts.yaml")
				Expect(os.WriteFile(file, []byte("fonts:\n  - FiraCode\n"), 0644)).To(Succeed())
			})

			It("should install the listed fonts", func() {
				Expect(run("install", "-f", file, "--yes")).To(Succeed())
				Expect(stdout.String()).To(ContainSubstring("1/1 succeeded"))
				Expect(filepath.Join(fontDir, "FiraCode.ttf")).To(BeAnExistingFile())
			})

			It("should reject additional arguments", func() {
				err := run("install", "-f", file, "hack")
				Expect(err).To(MatchError(ContainSubstring("no additional arguments")))
			})

			It("should fail for a missing file", func() {
				err := run("install", "-f", filepath.Join(home, "missing.yaml"))
				Expect(err).To(MatchError(ContainSubstring("opening selection file")))
			})
		})
	})

	Describe("placeholders", func() {
		It("should explain that update is not implemented", func() {
			Expect(run("update")).To(Succeed())
			Expect(stdout.String()).To(Equal("Update functionality not yet implemented.\n"))
		})

		It("should echo the fonts remove would remove", func() {
			Expect(run("remove", "FiraCode", "Hack")).To(Succeed())
			Expect(stdout.String()).To(Equal("Font removal not yet implemented.\n  Would remove: FiraCode\n  Would remove: Hack\n"))
		})

		It("should explain that info is not implemented", func() {
			Expect(run("info")).To(Succeed())
			Expect(stdout.String()).To(Equal("Installed font detection not yet implemented.\n"))
		})
	})
})
