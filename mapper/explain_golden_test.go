/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/reason"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable and human-friendly.
// Update golden with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPOverride("system", 503),
		WithGRPCPrefix("external", "*.critical", codes.DeadlineExceeded),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	reasons := []reason.Reason{
		"user.authentication.error", // default prefix
		"caller.input.warning",      // class default
		"system.memory.critical",    // HTTP override, gRPC default
		"external.network.critical", // deeper wildcard wins for gRPC
		"storage.quota.fatal",       // fallback
	}

	var parts []string
	for _, r := range reasons {
		parts = append(parts, m.Explain(r))
	}
	got := strings.Join(parts, "\n---\n") + "\n"

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
