package pathutil

import "testing"

func TestToRelative(t *testing.T) {
	tests := []struct {
		name    string
		absPath string
		root    string
		want    string
	}{
		{"inside root", "/home/user/project/src/main.go", "/home/user/project", "src/main.go"},
		{"outside root", "/other/location/file.go", "/home/user/project", "/other/location/file.go"},
		{"already relative", "src/main.go", "/home/user/project", "src/main.go"},
		{"empty path", "", "/home/user/project", ""},
		{"empty root", "/home/user/project/main.go", "", "/home/user/project/main.go"},
		{"exact root", "/home/user/project", "/home/user/project", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRelative(tt.absPath, tt.root)
			if got != tt.want {
				t.Errorf("ToRelative(%q, %q) = %q, want %q", tt.absPath, tt.root, got, tt.want)
			}
		})
	}
}
