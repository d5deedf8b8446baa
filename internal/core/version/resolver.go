// Package version provides the version-resolution collaborator the
// descriptor builder depends on. Resolution is an explicit, injected
// dependency rather than a module-level read so the builder stays pure and
// testable.
package version

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Resolver produces the version identifier used to compute the versioned
// documentation content path.
type Resolver interface {
	Resolve() (string, error)
}

// Validate checks that a version identifier is usable in a content path. A
// malformed identifier would otherwise surface only later, as a broken path
// inside the external plugin that reads from it.
func Validate(v string) error {
	if v == "" {
		return fmt.Errorf("version identifier cannot be empty")
	}
	if strings.ContainsAny(v, "/\\") {
		return fmt.Errorf("version identifier %q cannot contain path separators", v)
	}
	if strings.ContainsAny(v, " \t\r\n") {
		return fmt.Errorf("version identifier %q cannot contain whitespace", v)
	}
	return nil
}

// staticResolver returns a fixed version identifier.
type staticResolver struct {
	version string
}

// Static returns a resolver that always yields the given identifier.
func Static(v string) Resolver {
	return staticResolver{version: v}
}

func (r staticResolver) Resolve() (string, error) {
	if err := Validate(r.version); err != nil {
		return "", err
	}
	return r.version, nil
}

// envResolver reads the version identifier from an environment variable.
type envResolver struct {
	key string
}

// FromEnv returns a resolver that reads the named environment variable.
func FromEnv(key string) Resolver {
	return envResolver{key: key}
}

func (r envResolver) Resolve() (string, error) {
	v := os.Getenv(r.key)
	if v == "" {
		return "", fmt.Errorf("environment variable %s is not set", r.key)
	}
	if err := Validate(v); err != nil {
		return "", fmt.Errorf("environment variable %s: %w", r.key, err)
	}
	return v, nil
}

// fileResolver reads the version identifier from the first non-blank line
// of a version file.
type fileResolver struct {
	path string
}

// FromFile returns a resolver that reads a version file.
func FromFile(path string) Resolver {
	return fileResolver{path: path}
}

func (r fileResolver) Resolve() (string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return "", fmt.Errorf("failed to open version file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := Validate(line); err != nil {
			return "", fmt.Errorf("version file %s: %w", r.path, err)
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read version file: %w", err)
	}
	return "", fmt.Errorf("version file %s contains no version identifier", r.path)
}
