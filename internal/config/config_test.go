package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeFile(t, "config.yaml", "quarter: 2025Q1\non_malformed: abort\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Quarter != "2025Q1" {
		t.Errorf("Quarter = %q", c.Quarter)
	}
	if c.OnMalformed != MalformedAbort {
		t.Errorf("OnMalformed = %q", c.OnMalformed)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := writeFile(t, "config.yaml", "quarter: 2024Q4\non_malformed: abort\n")

	c := Config{Quarter: "2025Q2", OnMalformed: MalformedSkip}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Quarter != "2025Q2" || c.OnMalformed != MalformedSkip {
		t.Errorf("flag values overwritten: %+v", c)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_DefaultsPolicy(t *testing.T) {
	c := Config{FilePath: writeFile(t, "data.txt", "")}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.OnMalformed != MalformedSkip {
		t.Errorf("OnMalformed = %q, want %q", c.OnMalformed, MalformedSkip)
	}
}

func TestValidate_BadPolicy(t *testing.T) {
	c := Config{FilePath: writeFile(t, "data.txt", ""), OnMalformed: "retry"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestValidate_Quarter(t *testing.T) {
	file := writeFile(t, "data.txt", "")
	for _, q := range []string{"2025Q1", "1999Q4", ""} {
		c := Config{FilePath: file, Quarter: q}
		if err := c.Validate(); err != nil {
			t.Errorf("quarter %q: unexpected error %v", q, err)
		}
	}
	for _, q := range []string{"2025Q5", "25Q1", "2025-Q1", "Q1"} {
		c := Config{FilePath: file, Quarter: q}
		if err := c.Validate(); err == nil {
			t.Errorf("quarter %q: expected error", q)
		}
	}
}

func TestValidateWithDSN(t *testing.T) {
	c := Config{FilePath: writeFile(t, "data.txt", "")}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
	c.DSN = "postgresql://localhost/rx"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
