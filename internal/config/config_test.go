package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every GG_* variable so the host environment does not
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"GG_TICKET_PATTERN", "GG_DEFAULT_TICKET", "GG_TICKET_REQUIRED",
		"GG_SMART_COMMIT", "GG_MAIN_BRANCH", "GG_REMOTE",
	} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// writeConfigFile points XDG_CONFIG_HOME at a temp dir containing the
// given config file content.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if content == "" {
		return
	}
	path := filepath.Join(dir, "gg", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TicketPattern != DefaultTicketPattern {
		t.Errorf("TicketPattern = %q, want %q", cfg.TicketPattern, DefaultTicketPattern)
	}
	if cfg.DefaultTicket != "" {
		t.Errorf("DefaultTicket = %q, want empty", cfg.DefaultTicket)
	}
	if cfg.TicketRequired {
		t.Error("TicketRequired = true, want false")
	}
	if !cfg.SmartCommit {
		t.Error("SmartCommit = false, want true")
	}
	if cfg.MainBranch != "main" || cfg.Remote != "origin" {
		t.Errorf("MainBranch/Remote = %q/%q, want main/origin", cfg.MainBranch, cfg.Remote)
	}

	for _, opt := range cfg.Options() {
		if opt.Source != SourceDefault {
			t.Errorf("option %s source = %q, want default", opt.Name, opt.Source)
		}
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `
ticket_pattern = "CORE-[0-9]+"
smart_commit = false
main_branch = "trunk"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TicketPattern != "CORE-[0-9]+" {
		t.Errorf("TicketPattern = %q, want file value", cfg.TicketPattern)
	}
	if cfg.SmartCommit {
		t.Error("SmartCommit = true, want false from file")
	}
	if cfg.MainBranch != "trunk" {
		t.Errorf("MainBranch = %q, want trunk", cfg.MainBranch)
	}
	// Untouched keys keep their defaults
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want origin", cfg.Remote)
	}

	sources := map[string]string{}
	for _, opt := range cfg.Options() {
		sources[opt.Name] = opt.Source
	}
	if sources["ticket_pattern"] != SourceFile {
		t.Errorf("ticket_pattern source = %q, want file", sources["ticket_pattern"])
	}
	if sources["remote"] != SourceDefault {
		t.Errorf("remote source = %q, want default", sources["remote"])
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `main_branch = "trunk"`)
	t.Setenv("GG_MAIN_BRANCH", "develop")
	t.Setenv("GG_TICKET_REQUIRED", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MainBranch != "develop" {
		t.Errorf("MainBranch = %q, want env value develop", cfg.MainBranch)
	}
	if !cfg.TicketRequired {
		t.Error("TicketRequired = false, want true from env")
	}

	for _, opt := range cfg.Options() {
		if opt.Name == "main_branch" && opt.Source != SourceEnv {
			t.Errorf("main_branch source = %q, want env", opt.Source)
		}
	}
}

func TestLoadInvalidBool(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "")
	t.Setenv("GG_SMART_COMMIT", "maybe")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid boolean, got nil")
	}
	if !strings.Contains(err.Error(), "GG_SMART_COMMIT") {
		t.Errorf("error = %q, want it to name the variable", err)
	}
}

func TestLoadInvalidBoolKeepsFileValues(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `
main_branch = "trunk"
ticket_pattern = "CORE-[0-9]+"
`)
	t.Setenv("GG_SMART_COMMIT", "maybe")
	t.Setenv("GG_REMOTE", "upstream")

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid boolean, got nil")
	}
	if !strings.Contains(err.Error(), "GG_SMART_COMMIT") {
		t.Errorf("error = %q, want it to name the variable", err)
	}

	// One bad variable must not reset the options the file and the valid
	// environment variables already applied.
	if cfg.MainBranch != "trunk" {
		t.Errorf("MainBranch = %q, want file value trunk", cfg.MainBranch)
	}
	if cfg.TicketPattern != "CORE-[0-9]+" {
		t.Errorf("TicketPattern = %q, want file value", cfg.TicketPattern)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want env value upstream", cfg.Remote)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "ticket_pattern = [broken")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file, got nil")
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"1", true, false},
		{"0", false, false},
		{"true", true, false},
		{"FALSE", false, false},
		{"Yes", true, false},
		{"no", false, false},
		{" true ", true, false},
		{"2", false, true},
		{"", false, true},
		{"on", false, true},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompileTicketPattern(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if _, err := cfg.CompileTicketPattern(); err != nil {
		t.Errorf("default pattern should compile: %v", err)
	}

	cfg.TicketPattern = "[unclosed"
	if _, err := cfg.CompileTicketPattern(); err == nil {
		t.Error("expected error for invalid pattern, got nil")
	}
}

func TestInit(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Second init without force fails
	if _, err := Init(false); err == nil {
		t.Error("expected error when config exists, got nil")
	}

	// Force overwrites
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) failed: %v", err)
	}
}
