package utils

import "testing"

func TestIsAllowedModelExtension(t *testing.T) {
	allowed := []string{"part.glb", "scene.gltf", "mesh.obj", "rig.fbx", "x.dae", "cloud.ply", "print.stl", "old.3ds", "UPPER.GLB"}
	for _, name := range allowed {
		if !IsAllowedModelExtension(name) {
			t.Errorf("%s should be allowed", name)
		}
	}

	rejected := []string{"notes.txt", "model", "archive.zip", "model.glb.exe", "model.st"}
	for _, name := range rejected {
		if IsAllowedModelExtension(name) {
			t.Errorf("%s should be rejected", name)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"model.glb":          "model.glb",
		"../../etc/passwd":   "passwd",
		"dir/sub/model.obj":  "model.obj",
		"name\x00hidden.stl": "namehidden.stl",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@example.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("%s should be valid", email)
		}
	}
	invalid := []string{"", "plain", "missing@tld", "@nohost.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("%s should be invalid", email)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("got %q", got)
	}
}
