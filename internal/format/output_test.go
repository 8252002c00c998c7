package format

import (
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := WriteJSON(&b, map[string]int{"id": 1}, false); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := b.String(); got != "{\"id\":1}\n" {
		t.Fatalf("compact output = %q", got)
	}

	b.Reset()
	if err := WriteJSON(&b, map[string]int{"id": 1}, true); err != nil {
		t.Fatalf("WriteJSON pretty: %v", err)
	}
	if !strings.Contains(b.String(), "\n  \"id\": 1\n") {
		t.Fatalf("pretty output = %q", b.String())
	}
}
