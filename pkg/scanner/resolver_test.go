package scanner

import (
	"fmt"
	"strings"
	"testing"
)

func TestResolveLinePrefixes(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty text",
			lines: []string{""},
			want:  []string{""},
		},
		{
			name: "array group closes",
			lines: []string{
				`Route::group(['prefix' => 'admin'], function () {`,
				`    Route::get('/dashboard', [DashboardController::class, 'index']);`,
				`});`,
				`Route::get('/home', [HomeController::class, 'index']);`,
			},
			want: []string{"admin", "admin", "", ""},
		},
		{
			name: "double quoted array group",
			lines: []string{
				`Route::group(["prefix" => "v1", "middleware" => "auth"], function () {`,
				`    Route::get("/me", [MeController::class, "show"]);`,
				`});`,
			},
			want: []string{"v1", "v1", ""},
		},
		{
			name: "nested prefix groups",
			lines: []string{
				`Route::prefix('api')->group(function () {`,
				`    Route::prefix('v2')->group(function () {`,
				`        Route::get('/users', [UserController::class, 'index']);`,
				`    });`,
				`    Route::get('/status', [StatusController::class, 'show']);`,
				`});`,
				`Route::get('/health', [HealthController::class, 'show']);`,
			},
			want: []string{"api", "api/v2", "api/v2", "api", "api", "", ""},
		},
		{
			name: "chained middleware prefix group",
			lines: []string{
				`Route::middleware(['auth:sanctum'])->prefix('account')->group(function () {`,
				`    Route::get('/profile', [ProfileController::class, 'show']);`,
				`});`,
			},
			want: []string{"account", "account", ""},
		},
		{
			name: "controller group",
			lines: []string{
				`Route::controller(OrderController::class)->prefix('orders')->group(function () {`,
				`    Route::get('/{id}', 'show');`,
				`});`,
			},
			want: []string{"orders", "orders", ""},
		},
		{
			name: "slashes around literals are trimmed",
			lines: []string{
				`Route::prefix('/admin/')->group(function () {`,
				`    Route::prefix('/users/')->group(function () {`,
				`        Route::get('/', [UserController::class, 'index']);`,
				`    });`,
				`});`,
			},
			want: []string{"admin", "admin/users", "admin/users", "admin", ""},
		},
		{
			name: "prefix without group is not a scope",
			lines: []string{
				`Route::get('/a', [AController::class, 'index'])->prefix('ignored');`,
				`Route::get('/b', [BController::class, 'index']);`,
			},
			want: []string{"", ""},
		},
		{
			name: "opener split across lines is not recognized",
			lines: []string{
				`Route::prefix('admin')`,
				`    ->group(function () {`,
				`        Route::get('/dashboard', [DashboardController::class, 'index']);`,
				`    });`,
			},
			want: []string{"", "", "", ""},
		},
		{
			name: "sibling groups",
			lines: []string{
				`Route::prefix('a')->group(function () {`,
				`});`,
				`Route::prefix('b')->group(function () {`,
				`    Route::get('/x', fn () => 'x');`,
				`});`,
			},
			want: []string{"a", "", "b", "b", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLinePrefixes(strings.Join(tt.lines, "\n"))
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveLinePrefixes() returned %d lines, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("line %d: prefix = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestResolveLinePrefixes_SingleLineGroupStaysOpen(t *testing.T) {
	// The opening line leaves depth unchanged, so the frame is never popped.
	text := strings.Join([]string{
		`Route::prefix('inline')->group(function () { Route::get('/a', fn () => 'a'); });`,
		`Route::get('/b', fn () => 'b');`,
	}, "\n")

	got := ResolveLinePrefixes(text)
	if got[0] != "inline" || got[1] != "inline" {
		t.Errorf("prefixes = %q, %q, want inline, inline", got[0], got[1])
	}
}

func TestResolveLinePrefixes_BracesInStringsAreCounted(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('admin')->group(function () {`,
		`    $open = '{';`,
		`});`,
		`Route::get('/after', fn () => 'after');`,
	}, "\n")

	got := ResolveLinePrefixes(text)
	for i := 0; i < 4; i++ {
		if got[i] != "admin" {
			t.Errorf("line %d: prefix = %q, want admin", i, got[i])
		}
	}
}

func TestResolveLinePrefixes_UnmatchedClosingBraces(t *testing.T) {
	text := strings.Join([]string{
		`}`,
		`}`,
		`Route::get('/x', fn () => 'x');`,
		`Route::prefix('late')->group(function () {`,
		`    Route::get('/y', fn () => 'y');`,
		`});`,
	}, "\n")

	got := ResolveLinePrefixes(text)
	want := []string{"", "", "", "late", "late", ""}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("line %d: prefix = %q, want %q", i, got[i], w)
		}
	}
}

func TestResolveLinePrefixes_DeepNesting(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			var lines, literals []string
			for i := 0; i < depth; i++ {
				literal := fmt.Sprintf("p%d", i)
				literals = append(literals, literal)
				lines = append(lines, fmt.Sprintf(`Route::prefix('%s')->group(function () {`, literal))
				lines = append(lines, `// unrelated`)
			}
			inner := len(lines)
			lines = append(lines, `Route::get('/leaf', fn () => 'leaf');`)
			for i := 0; i < depth; i++ {
				lines = append(lines, `});`)
			}
			lines = append(lines, `Route::get('/outside', fn () => 'outside');`)

			got := ResolveLinePrefixes(strings.Join(lines, "\n"))
			if want := strings.Join(literals, "/"); got[inner] != want {
				t.Errorf("inner prefix = %q, want %q", got[inner], want)
			}
			if last := got[len(lines)-1]; last != "" {
				t.Errorf("prefix after all groups closed = %q, want empty", last)
			}
		})
	}
}

func TestMatchGroupOpener(t *testing.T) {
	tests := []struct {
		line       string
		wantPrefix string
		wantName   string
		wantOK     bool
	}{
		{`Route::group(['prefix' => 'admin'], function () {`, "admin", "array-group", true},
		{`Route::group( [ "prefix"=>"admin" ], function () {`, "admin", "array-group", true},
		{`Route::middleware('auth')->prefix('admin')->group(function () {`, "admin", "chained-prefix-group", true},
		{`Route::prefix('admin')->group(function () {`, "admin", "prefix-group", true},
		{`Route::prefix("admin")  ->group(function () {`, "admin", "prefix-group", true},
		{`Route::controller(UserController::class)->prefix('users')->group(function () {`, "users", "chained-prefix-group", true},
		{`Route::prefix('')->group(function () {`, "", "", false},
		{`Route::prefix($prefix)->group(function () {`, "", "", false},
		{`Route::group(['middleware' => 'auth'], function () {`, "", "", false},
		{`Route::get('/users', [UserController::class, 'index']);`, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			prefix, name, ok := matchGroupOpener(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("matchGroupOpener() ok = %v, want %v", ok, tt.wantOK)
			}
			if prefix != tt.wantPrefix {
				t.Errorf("matchGroupOpener() prefix = %q, want %q", prefix, tt.wantPrefix)
			}
			if name != tt.wantName {
				t.Errorf("matchGroupOpener() name = %q, want %q", name, tt.wantName)
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	tests := []struct {
		parent  string
		literal string
		want    string
	}{
		{"", "admin", "admin"},
		{"", "/admin/", "admin"},
		{"admin", "users", "admin/users"},
		{"admin", "/users", "admin/users"},
		{"admin", "//users//", "admin/users"},
		{"", "a//b", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.parent+"+"+tt.literal, func(t *testing.T) {
			if got := joinPrefix(tt.parent, tt.literal); got != tt.want {
				t.Errorf("joinPrefix(%q, %q) = %q, want %q", tt.parent, tt.literal, got, tt.want)
			}
		})
	}
}
