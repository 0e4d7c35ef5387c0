package rod

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// Profile is the static launch configuration of the local browser session.
type Profile struct {
	Headless     bool
	UserDataDir  string
	WindowWidth  int
	WindowHeight int
	UserAgent    string
	// DisabledFeatures go into a single --disable-features switch. Chromium
	// honours only the last occurrence of that switch.
	DisabledFeatures []string
	Switches         []string
}

func DefaultProfile(baseDir string) Profile {
	return Profile{
		Headless:     false,
		UserDataDir:  filepath.Join(baseDir, "browser_profile"),
		WindowWidth:  1366,
		WindowHeight: 768,
		UserAgent:    defaultUserAgent,
		DisabledFeatures: []string{
			"PreconnectToOrigins",
			"PrefetchPrivacyChanges",
			"DnsOverHttps",
			"AsyncDns",
			"VizDisplayCompositor",
		},
		Switches: []string{
			"disable-quic",
			"dns-prefetch-disable",
			"disable-variations",
		},
	}
}

// Launcher turns the profile into a rod launcher without starting a process.
func (p Profile) Launcher() *launcher.Launcher {
	l := launcher.New().
		Headless(p.Headless).
		Delete("use-mock-keychain")

	if p.UserDataDir != "" {
		l = l.UserDataDir(p.UserDataDir)
	}
	if p.WindowWidth > 0 && p.WindowHeight > 0 {
		l = l.Set("window-size", fmt.Sprintf("%d,%d", p.WindowWidth, p.WindowHeight))
	}
	if p.UserAgent != "" {
		l = l.Set("user-agent", p.UserAgent)
	}
	for _, s := range p.Switches {
		l = l.Set(flags.Flag(strings.TrimPrefix(s, "--")))
	}
	if len(p.DisabledFeatures) > 0 {
		l = l.Set("disable-features", p.DisabledFeatures...)
	}
	return l
}
