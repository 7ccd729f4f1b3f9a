package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunVersionText(t *testing.T) {
	var buf bytes.Buffer
	if err := runVersion(&buf, false); err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}
	if !strings.Contains(buf.String(), "lifeline") {
		t.Errorf("output %q missing product name", buf.String())
	}
}

func TestRunVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runVersion(&buf, true); err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"version", "git_commit", "build_date", "go_version"} {
		if _, ok := got[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}
