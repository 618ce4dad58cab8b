package deciphconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/deciph/configs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deciph.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSchema(t *testing.T) {
	path := writeConfig(t, `
timeout_seconds: 30
tape_cells:      200
ook: {
	priority: 0.5
	tokens: {
		right: ["foo.", "foo?"]
	}
}
`)
	loader := configs.NewLoader([]string{path}, schema)

	if n := configs.First[int](loader, "timeout_seconds"); n != 30 {
		t.Fatalf("got %v", n)
	}
	if n := configs.First[int](loader, "tape_cells"); n != 200 {
		t.Fatalf("got %v", n)
	}
	if p := configs.First[float64](loader, "ook.priority"); p != 0.5 {
		t.Fatalf("got %v", p)
	}
	var tokens []string
	if err := loader.AssignFirst("ook.tokens.right", &tokens); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0] != "foo." || tokens[1] != "foo?" {
		t.Fatalf("got %v", tokens)
	}

	// absent value
	if n := configs.First[int](loader, "jobs"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, `
timeout_secs: 30
`)
	loader := configs.NewLoader([]string{path}, schema)
	var n int
	if err := loader.AssignFirst("timeout_secs", &n); err == nil {
		t.Fatal("should fail")
	}
}

func TestSchemaRejectsBadValue(t *testing.T) {
	path := writeConfig(t, `
tape_cells: -1
`)
	loader := configs.NewLoader([]string{path}, schema)
	var n int
	if err := loader.AssignFirst("tape_cells", &n); err == nil {
		t.Fatal("should fail")
	}
}
