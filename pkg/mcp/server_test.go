package mcp

import (
	"testing"

	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
)

func TestNewServer(t *testing.T) {
	tmpDir := t.TempDir()
	server := NewServer(tmpDir)

	if server == nil {
		t.Fatal("NewServer returned nil")
	}

	if server.workdir != tmpDir {
		t.Errorf("workdir = %q, want %q", server.workdir, tmpDir)
	}

	if server.routesDir != "routes" {
		t.Errorf("routesDir = %q, want routes", server.routesDir)
	}

	if server.mcpServer == nil {
		t.Error("mcpServer should not be nil")
	}
}

func TestServer_Workdir(t *testing.T) {
	tests := []struct {
		name    string
		workdir string
	}{
		{"absolute path", "/srv/app"},
		{"relative path", "./my-project"},
		{"current dir", "."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(tt.workdir)

			if server.workdir != tt.workdir {
				t.Errorf("workdir = %q, want %q", server.workdir, tt.workdir)
			}
		})
	}
}

func TestServer_Setters(t *testing.T) {
	server := NewServer(t.TempDir())

	server.SetRoutesDir("")
	if server.routesDir != "routes" {
		t.Errorf("empty SetRoutesDir changed routesDir to %q", server.routesDir)
	}
	server.SetRoutesDir("app/routes")
	if server.routesDir != "app/routes" {
		t.Errorf("routesDir = %q, want app/routes", server.routesDir)
	}

	server.SetPrefixRules(scanner.PrefixRules{{Contains: "routes/admin.php", Global: "admin"}})
	if len(server.rules) != 1 {
		t.Errorf("rules = %v, want one rule", server.rules)
	}
	server.SetPrefixRules(nil)
	if len(server.rules) != len(scanner.DefaultPrefixRules) {
		t.Errorf("nil rules should restore the defaults, got %v", server.rules)
	}
}
