package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/acarerdinc/relevia/internal/selector"
	"github.com/acarerdinc/relevia/internal/store"
)

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.Flags().String("strategy", "", "")
	return c
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "relevia.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// buildEngine must wire every collaborator, including the seeded RNG
// behind the selector, without an LLM key in the environment.
func TestBuildEngineWiresCollaborators(t *testing.T) {
	st := openTestStore(t)

	eng, graph, err := buildEngine(context.Background(), testCommand(t), st)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	if eng == nil || graph == nil {
		t.Fatal("expected engine and graph services")
	}
}

func TestBuildEngineStrategyFlag(t *testing.T) {
	tests := []struct {
		strategy string
		wantErr  bool
	}{
		{string(selector.StrategyAdaptive), false},
		{string(selector.StrategyFixed), false},
		{"roulette", true},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			st := openTestStore(t)
			cmd := testCommand(t)
			if err := cmd.Flags().Set("strategy", tt.strategy); err != nil {
				t.Fatalf("set flag: %v", err)
			}

			_, _, err := buildEngine(context.Background(), cmd, st)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for strategy %q", tt.strategy)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("buildEngine: %v", err)
			}
		})
	}
}
