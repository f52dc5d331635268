package gcdtab

import (
	"context"
	"net"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/wirepair/gcd"
)

var startupFlags = []string{
	"--enable-automation",
	"--test-type",
	"--disable-client-side-phishing-detection",
	"--disable-component-update",
	"--disable-infobars",
	"--disable-sync",
	"--disable-default-apps",
	"--disable-popup-blocking",
	"--disable-extensions",
	"--disable-gpu",
	"--disable-dev-shm-usage",
	"--no-sandbox",
	"--no-first-run",
	"--window-size=1024,768",
	"--password-store=basic",
}

// FindChrome on the FS, returns the binary and a temp dir for profiles.
// CHROME_PATH overrides the binary.
func FindChrome() (string, string) {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p, os.TempDir()
	}
	switch runtime.GOOS {
	case "windows":
		return "C:\\Program Files (x86)\\Google\\Chrome\\Application\\chrome.exe", "C:\\Temp\\gcd\\"
	case "darwin":
		return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome", "/tmp/gcd/"
	case "linux":
		return "/usr/bin/chromium-browser", "/tmp/gcd/"
	}
	return "", os.TempDir()
}

func randPort() string {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		log.Warn().Err(err).Msg("unable to get port using default 9022")
		return "9022"
	}
	_, port, _ := net.SplitHostPort(l.Addr().String())
	l.Close()
	return port
}

// Launch a Chrome process and open a tab in it. Closing the tab exits the
// process and deletes its profile.
func Launch(ctx context.Context, headless bool) (*Tab, error) {
	chrome, tmp := FindChrome()
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating profile root")
	}
	profileDir, err := os.MkdirTemp(tmp, "gcd")
	if err != nil {
		return nil, errors.Wrap(err, "creating profile dir")
	}

	b := gcd.NewChromeDebugger()
	b.DeleteProfileOnExit()
	flags := append([]string{}, startupFlags...)
	if headless {
		flags = append(flags, "--headless")
	}
	b.AddFlags(append(flags, "about:blank"))

	port := randPort()
	if err := b.StartProcess(chrome, profileDir, port); err != nil {
		return nil, errors.Wrap(err, "starting chrome")
	}
	log.Ctx(ctx).Info().Str("chrome", chrome).Str("port", port).Msg("chrome started")

	target, err := b.NewTab()
	if err != nil {
		b.ExitProcess()
		return nil, errors.Wrap(err, "opening tab")
	}
	t := New(target)
	t.g = b
	return t, nil
}
