package scanner

import (
	"testing"
)

func TestMatchRouteDecl(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantMethod string
		wantPath   string
		wantOK     bool
	}{
		{"get", `Route::get('/users', [UserController::class, 'index']);`, MethodGet, "/users", true},
		{"spaced call", `Route::post ( "/users" , [UserController::class, 'store']);`, MethodPost, "/users", true},
		{"upper case", `ROUTE::PUT('/users/{id}', fn () => 1);`, MethodPut, "/users/{id}", true},
		{"api resource", `Route::apiResource('photos', PhotoController::class);`, MethodResource, "photos", true},
		{"lower case resource", `Route::apiresource('photos', PhotoController::class);`, MethodResource, "photos", true},
		{"root", `Route::any('/', fn () => 1);`, MethodAny, "/", true},
		{"variable path", `Route::get($uri, fn () => 1);`, "", "", false},
		{"concatenated path", `Route::get($base . '/x', fn () => 1);`, "", "", false},
		{"redirect", `Route::redirect('/here', '/there');`, "", "", false},
		{"comment text", `// see the users endpoint`, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, path, ok := matchRouteDecl(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("matchRouteDecl(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if method != tt.wantMethod {
				t.Errorf("matchRouteDecl(%q) method = %q, want %q", tt.line, method, tt.wantMethod)
			}
			if path != tt.wantPath {
				t.Errorf("matchRouteDecl(%q) path = %q, want %q", tt.line, path, tt.wantPath)
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"no segments", nil, "/"},
		{"only empty segments", []string{"", "/", "//"}, "/"},
		{"single", []string{"users"}, "/users"},
		{"trims each segment", []string{"/api/", "/v1", "users/"}, "/api/v1/users"},
		{"skips empty", []string{"api", "", "users"}, "/api/users"},
		{"collapses inner runs", []string{"api", "a///b"}, "/api/a/b"},
		{"keeps placeholders", []string{"users", "{user}", "{post?}"}, "/users/{user}/{post?}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinPath(tt.segments...); got != tt.want {
				t.Errorf("JoinPath(%q) = %q, want %q", tt.segments, got, tt.want)
			}
		})
	}
}

func TestCollapseSlashes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", "/"},
		{"//", "/"},
		{"a///b//c", "a/b/c"},
	}

	for _, tt := range tests {
		if got := collapseSlashes(tt.in); got != tt.want {
			t.Errorf("collapseSlashes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupOpenersOrder(t *testing.T) {
	want := []string{
		"array-group",
		"chained-prefix-group",
		"builder-prefix-group",
		"controller-group",
		"prefix-group",
	}

	if len(groupOpeners) != len(want) {
		t.Fatalf("len(groupOpeners) = %d, want %d", len(groupOpeners), len(want))
	}
	for i, name := range want {
		if groupOpeners[i].name != name {
			t.Errorf("groupOpeners[%d] = %q, want %q", i, groupOpeners[i].name, name)
		}
	}
}
