package idgen_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/artpar/artistdesk/adapters/idgen"
)

func TestPrefixed_New(t *testing.T) {
	g := idgen.NewPrefixed("usr_")

	id := g.New()
	if !strings.HasPrefix(id, "usr_") {
		t.Errorf("ID %s missing prefix", id)
	}

	hexPart := strings.TrimPrefix(id, "usr_")
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(hexPart) {
		t.Errorf("ID %s is not prefix + 32 hex chars", id)
	}
}

func TestPrefixed_New_Unique(t *testing.T) {
	g := idgen.NewPrefixed("art_")

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.New()
		if seen[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSequential_New(t *testing.T) {
	g := idgen.NewSequential("test_")

	for i, want := range []string{"test_1", "test_2", "test_3"} {
		if id := g.New(); id != want {
			t.Errorf("ID %d = %s, want %s", i, id, want)
		}
	}
}

func TestSequential_Reset(t *testing.T) {
	g := idgen.NewSequential("id_")

	g.New()
	g.New()
	g.Reset()

	if id := g.New(); id != "id_1" {
		t.Errorf("after reset ID = %s, want id_1", id)
	}
}

func TestSequential_ConcurrentAccess(t *testing.T) {
	g := idgen.NewSequential("concurrent_")

	done := make(chan bool)
	ids := make(chan string, 1000)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				ids <- g.New()
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %s", id)
		}
		seen[id] = true
	}
	if len(seen) != 1000 {
		t.Errorf("expected 1000 unique IDs, got %d", len(seen))
	}
}
