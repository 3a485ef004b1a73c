package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultDir is the suite directory relative to this package
const DefaultDir = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks dir and loads every test case from its .yaml files,
// ordered by file path and then by position within the file
func LoadAllTests(dir string) ([]LoadedTest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("could not find conformance test directory: %w", err)
	}

	var files []string
	err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Only process .yaml files
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var loaded []LoadedTest
	for _, path := range files {
		// Get relative path for cleaner test names
		relPath, _ := filepath.Rel(abs, path)

		tests, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", relPath, err)
		}

		for _, test := range tests {
			test.File = relPath
			loaded = append(loaded, test)
		}
	}

	return loaded, nil
}

// LoadFile parses a single YAML file and returns all test cases
func LoadFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Base(path))
}

// Parse decodes a YAML suite document. file labels the returned tests.
func Parse(data []byte, file string) ([]LoadedTest, error) {
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			File:  file,
			Suite: suite,
			Test:  test,
		})
	}

	return tests, nil
}
