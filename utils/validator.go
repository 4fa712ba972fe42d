// utils/validator.go - Input validation
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// allowedModelExtensions is the fixed allow-list for uploaded 3D models.
var allowedModelExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
	".obj":  true,
	".fbx":  true,
	".dae":  true,
	".ply":  true,
	".stl":  true,
	".3ds":  true,
}

// IsAllowedModelExtension checks the filename extension against the 3D
// model allow-list, case-insensitively.
func IsAllowedModelExtension(filename string) bool {
	return allowedModelExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AllowedModelExtensions returns the allow-list for error messages.
func AllowedModelExtensions() []string {
	return []string{".glb", ".gltf", ".obj", ".fbx", ".dae", ".ply", ".stl", ".3ds"}
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// SanitizeFilename strips path separators and other unsafe characters so an
// uploaded filename cannot escape the upload directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\x00", "")
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return replacer.Replace(name)
}
