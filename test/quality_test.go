package test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
// Skipped tests hide failures - tests should either pass or fail, never skip.
func TestNoSkippedTests(t *testing.T) {
	forbiddenPatterns := []string{
		"t.Skip(",
		"t.SkipNow(",
		"testing.Short()",
	}

	projectRoot := getProjectRoot()
	testFiles := []string{}

	err := filepath.Walk(projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip vendor, hidden and underscore-prefixed directories
		if info.IsDir() {
			name := info.Name()
			if path != projectRoot && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}

		// Only check test files
		if strings.HasSuffix(path, "_test.go") {
			// Skip this quality test file itself
			if strings.Contains(path, "quality_test.go") {
				return nil
			}
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}

	violations := []string{}

	for _, testFile := range testFiles {
		f, err := os.Open(testFile)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", testFile, err)
		}

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()

			// Skip comments
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "//") {
				continue
			}

			for _, pattern := range forbiddenPatterns {
				if strings.Contains(line, pattern) {
					violations = append(violations,
						fmt.Sprintf("%s:%d: contains forbidden pattern %q", testFile, lineNum, pattern))
				}
			}
		}
		f.Close()

		if err := scanner.Err(); err != nil {
			t.Fatalf("Error scanning %s: %v", testFile, err)
		}
	}

	if len(violations) > 0 {
		t.Errorf("Found %d test skip violation(s):\n", len(violations))
		for _, v := range violations {
			t.Errorf("  %s", v)
		}
		t.Error("\nTests should not be skipped. Either:")
		t.Error("  1. Fix the issue causing the skip")
		t.Error("  2. Use t.Fatalf() if a required resource is missing")
		t.Error("  3. Remove the test if it's no longer relevant")
	}
}

// TestEveryPackageHasTests ensures each non-main package ships a _test.go file.
func TestEveryPackageHasTests(t *testing.T) {
	projectRoot := getProjectRoot()
	hasSource := map[string]bool{}
	hasTests := map[string]bool{}

	err := filepath.Walk(projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != projectRoot && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata" || name == "cmd") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		dir := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			hasTests[dir] = true
		} else {
			hasSource[dir] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}

	if len(hasSource) == 0 {
		t.Fatal("No packages found - something is wrong with package discovery")
	}

	for dir := range hasSource {
		if !hasTests[dir] {
			rel, _ := filepath.Rel(projectRoot, dir)
			t.Errorf("package %s has no tests", rel)
		}
	}
}
