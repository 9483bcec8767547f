package url

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "file uri unchanged",
			input: "file:///home/user/proj",
			want:  "file:///home/user/proj",
		},
		{
			name:  "scheme and host lowercased",
			input: "VSCODE-REMOTE://SSH-Remote+Box/home/user",
			want:  "vscode-remote://ssh-remote+box/home/user",
		},
		{
			name:  "userinfo kept, host lowercased",
			input: "vscode-remote://Alice@BOX:22/srv",
			want:  "vscode-remote://Alice@box:22/srv",
		},
		{
			name:  "path case preserved",
			input: "file:///Home/User/Proj",
			want:  "file:///Home/User/Proj",
		},
		{
			name:  "query and fragment dropped",
			input: "file:///a/b?x=1#frag",
			want:  "file:///a/b",
		},
		{
			name:  "trailing slash kept",
			input: "file:///a/",
			want:  "file:///a/",
		},
		{
			name:  "absolute path promoted",
			input: "/tmp/project",
			want:  "file:///tmp/project",
		},
		{
			name:  "spaces escaped consistently",
			input: "/tmp/my project",
			want:  "file:///tmp/my%20project",
		},
		{
			name:  "escaped uri matches raw path",
			input: "file:///tmp/my%20project",
			want:  "file:///tmp/my%20project",
		},
		{
			name:  "opaque uri",
			input: "untitled:Untitled-1",
			want:  "untitled:Untitled-1",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  file:///a  ",
			want:  "file:///a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.input); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := FromPath("sub/dir")
	if err != nil {
		t.Fatalf("FromPath returned error: %v", err)
	}
	want := "file://" + filepath.ToSlash(filepath.Join(cwd, "sub", "dir"))
	if got != want {
		t.Errorf("FromPath(relative) = %q, want %q", got, want)
	}

	got, err = FromPath("file:///x/y")
	if err != nil {
		t.Fatalf("FromPath returned error: %v", err)
	}
	if got != "file:///x/y" {
		t.Errorf("FromPath(uri) = %q, want file:///x/y", got)
	}

	got, err = FromPath("   ")
	if err != nil || got != "" {
		t.Errorf("FromPath(blank) = %q, %v; want empty", got, err)
	}
}

func TestToPath(t *testing.T) {
	if got := ToPath("file:///tmp/my%20project"); got != filepath.FromSlash("/tmp/my project") {
		t.Errorf("ToPath = %q", got)
	}
	if got := ToPath("vscode-remote://box/a"); got != "vscode-remote://box/a" {
		t.Errorf("ToPath(non-file) = %q", got)
	}
}

func TestHasScheme(t *testing.T) {
	tests := map[string]bool{
		"file:///a":           true,
		"untitled:Untitled-1": true,
		"/abs/path":           false,
		"C:\\Users":           false,
		"relative/dir":        false,
		"1abc:foo":            false,
	}
	for input, want := range tests {
		if got := HasScheme(input); got != want {
			t.Errorf("HasScheme(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestBasename(t *testing.T) {
	tests := map[string]string{
		"file:///home/user/proj":  "proj",
		"file:///home/user/proj/": "proj",
		"file:///a/b.code-workspace": "b.code-workspace",
	}
	for input, want := range tests {
		if got := Basename(input); got != want {
			t.Errorf("Basename(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCanonical_DistinctUsersStayDistinct(t *testing.T) {
	alice := Canonical("vscode-remote://alice@box/srv")
	bob := Canonical("vscode-remote://bob@box/srv")

	if alice != "vscode-remote://alice@box/srv" {
		t.Errorf("Canonical(alice) = %q", alice)
	}
	if alice == bob {
		t.Errorf("different users normalized to the same location %q", alice)
	}
}
