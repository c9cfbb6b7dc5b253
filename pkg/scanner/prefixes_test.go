package scanner

import "testing"

func TestPrefixesForFile(t *testing.T) {
	tests := []struct {
		path       string
		wantGlobal string
		wantFile   string
	}{
		{"/srv/app/routes/api.php", "api", ""},
		{"/srv/app/routes/api_v1.php", "api", "v1"},
		{"/srv/app/routes/web.php", "", ""},
		{"/srv/app/routes/console.php", "", ""},
		{`C:\code\app\routes\api_v1.php`, "api", "v1"},
		{"routes/api.php", "api", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			global, file := PrefixesForFile(tt.path)
			if global != tt.wantGlobal || file != tt.wantFile {
				t.Errorf("PrefixesForFile(%q) = (%q, %q), want (%q, %q)", tt.path, global, file, tt.wantGlobal, tt.wantFile)
			}
		})
	}
}

func TestPrefixRules_Match(t *testing.T) {
	rules := PrefixRules{
		{Contains: "routes/admin.php", Global: "admin"},
		{Contains: "routes/api.php", Global: "api", File: "v2"},
	}.WithDefaults()

	tests := []struct {
		path       string
		wantGlobal string
		wantFile   string
	}{
		{"routes/admin.php", "admin", ""},
		{"routes/api.php", "api", "v2"},
		{"routes/api_v1.php", "api", "v1"},
		{"routes/channels.php", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			global, file := rules.Match(tt.path)
			if global != tt.wantGlobal || file != tt.wantFile {
				t.Errorf("Match(%q) = (%q, %q), want (%q, %q)", tt.path, global, file, tt.wantGlobal, tt.wantFile)
			}
		})
	}
}

func TestPrefixRules_EmptyContainsNeverMatches(t *testing.T) {
	rules := PrefixRules{{Contains: "", Global: "everything"}}

	if global, _ := rules.Match("routes/web.php"); global != "" {
		t.Errorf("Match() global = %q, want empty", global)
	}
}

func TestIsRouteFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/srv/app/routes/api.php", true},
		{"routes/admin/panel.php", true},
		{`C:\app\routes\web.php`, true},
		{"/srv/app/app/Http/Kernel.php", false},
		{"/srv/app/routes/README.md", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsRouteFile(tt.path); got != tt.want {
				t.Errorf("IsRouteFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
