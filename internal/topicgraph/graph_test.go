package topicgraph

import (
	"errors"
	"strings"
	"testing"

	"github.com/acarerdinc/relevia/internal/store"
)

func topic(id, parent, name string, depth int) *store.Topic {
	return &store.Topic{TopicID: id, ParentID: parent, Name: name, Depth: depth}
}

func TestBuildValidTree(t *testing.T) {
	g, err := Build([]*store.Topic{
		topic("ml", "", "Machine Learning", 0),
		topic("supervised", "ml", "Supervised Learning", 1),
		topic("unsupervised", "ml", "Unsupervised Learning", 1),
		topic("regression", "supervised", "Regression", 2),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.Root().TopicID != "ml" {
		t.Errorf("root = %q, want ml", g.Root().TopicID)
	}
	kids := g.Children("ml")
	if len(kids) != 2 {
		t.Fatalf("children of ml: got %d, want 2", len(kids))
	}
	// Children come back ordered by id.
	if kids[0].TopicID != "supervised" || kids[1].TopicID != "unsupervised" {
		t.Errorf("children order = %q, %q", kids[0].TopicID, kids[1].TopicID)
	}
	if !g.HasChildren("supervised") {
		t.Error("supervised should have children")
	}
	if g.HasChildren("regression") {
		t.Error("regression should be a leaf")
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	g, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if g.Root() != nil {
		t.Error("empty graph should have nil root")
	}
}

func TestBuildCollectsAllViolations(t *testing.T) {
	// One input with four distinct problems: a duplicate id, a second
	// root, a missing parent, and a bad depth.
	_, err := Build([]*store.Topic{
		topic("ml", "", "Machine Learning", 0),
		topic("other", "", "Other Root", 0),
		topic("supervised", "ml", "Supervised Learning", 1),
		topic("supervised", "ml", "Supervised Again", 1),
		topic("lost", "ghost", "Lost", 5),
		topic("deep", "ml", "Deep Learning", 3),
	})

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}

	wantFragments := []string{
		`duplicate topic id "supervised"`,
		`multiple roots`,
		`missing parent "ghost"`,
		`depth 3, want parent depth + 1 = 1`,
	}
	joined := se.Error()
	for _, frag := range wantFragments {
		if !strings.Contains(joined, frag) {
			t.Errorf("violations missing %q:\n%s", frag, joined)
		}
	}
}

func TestBuildNoRoot(t *testing.T) {
	_, err := Build([]*store.Topic{
		topic("a", "b", "A", 1),
		topic("b", "a", "B", 2),
	})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}
	if !strings.Contains(se.Error(), "no root topic") {
		t.Errorf("want no-root violation, got: %s", se.Error())
	}
}

func TestBuildUnreachableCycle(t *testing.T) {
	// x and y form a two-node cycle detached from the root.
	_, err := Build([]*store.Topic{
		topic("ml", "", "Machine Learning", 0),
		topic("x", "y", "X", 1),
		topic("y", "x", "Y", 2),
	})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}
	if !strings.Contains(se.Error(), "unreachable topics") {
		t.Errorf("want unreachable violation, got: %s", se.Error())
	}
}

func TestBuildSiblingNameCollision(t *testing.T) {
	_, err := Build([]*store.Topic{
		topic("ml", "", "Machine Learning", 0),
		topic("a", "ml", "Neural Networks", 1),
		topic("b", "ml", "neural networks", 1),
	})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}
	if !strings.Contains(se.Error(), "sibling name collision") {
		t.Errorf("want collision violation, got: %s", se.Error())
	}
}

func TestPath(t *testing.T) {
	g, err := Build([]*store.Topic{
		topic("ml", "", "Machine Learning", 0),
		topic("supervised", "ml", "Supervised Learning", 1),
		topic("regression", "supervised", "Regression", 2),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := g.Path("regression")
	got := make([]string, len(path))
	for i, p := range path {
		got[i] = p.TopicID
	}
	want := []string{"ml", "supervised", "regression"}
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}

	if g.Path("nope") != nil {
		t.Error("path for unknown id should be nil")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Machine Learning", "machine-learning"},
		{"  Neural   Networks  ", "neural-networks"},
		{"K-Means Clustering", "k-means-clustering"},
		{"What's Next?", "what-s-next"},
		{"C++", "c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
