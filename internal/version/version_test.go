package version

import "testing"

func TestGetVersion(t *testing.T) {
	// Default version should be "dev"
	v := GetVersion()
	if v == "" {
		t.Error("GetVersion() should not return empty string")
	}

	if v != Version {
		t.Errorf("GetVersion() = %q, want %q", v, Version)
	}
}

func TestGetVersion_Modified(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v1.2.3"
	if v := GetVersion(); v != "v1.2.3" {
		t.Errorf("GetVersion() = %q, want v1.2.3", v)
	}
}

func TestString(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"no commit", "v0.3.0", "", "v0.3.0"},
		{"short commit", "v0.3.0", "abc12", "v0.3.0 (abc12)"},
		{"full commit", "v0.3.0", "0123456789abcdef", "v0.3.0 (0123456)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
