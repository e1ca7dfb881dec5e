package topicgraph

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/acarerdinc/relevia/internal/store"
)

// StructuralError reports tree-invariant violations found on a write or
// during validation. The write that produced it is rejected wholesale.
type StructuralError struct {
	Violations []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("topic graph structural violation:\n  %s",
		strings.Join(e.Violations, "\n  "))
}

// Graph holds the topic tree with precomputed indices. Nodes reference
// each other by id only; the arena map owns every node.
type Graph struct {
	nodes    []*store.Topic
	byID     map[string]*store.Topic
	children map[string][]*store.Topic
	root     *store.Topic
}

// Build constructs a Graph from a flat topic list and validates tree
// invariants. Returns a *StructuralError when the set is not a tree.
func Build(topics []*store.Topic) (*Graph, error) {
	g := &Graph{
		nodes:    topics,
		byID:     make(map[string]*store.Topic, len(topics)),
		children: make(map[string][]*store.Topic),
	}

	var errs []string
	for _, t := range topics {
		if _, dup := g.byID[t.TopicID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate topic id %q", t.TopicID))
			continue
		}
		g.byID[t.TopicID] = t
	}

	for _, t := range topics {
		if t.ParentID == "" {
			if g.root != nil {
				errs = append(errs, fmt.Sprintf("multiple roots: %q and %q", g.root.TopicID, t.TopicID))
				continue
			}
			g.root = t
			continue
		}
		if _, ok := g.byID[t.ParentID]; !ok {
			errs = append(errs, fmt.Sprintf("topic %q references missing parent %q", t.TopicID, t.ParentID))
			continue
		}
		g.children[t.ParentID] = append(g.children[t.ParentID], t)
	}

	if g.root == nil && len(topics) > 0 {
		errs = append(errs, "no root topic (exactly one topic must have an empty parent)")
	}

	for parentID, kids := range g.children {
		sort.Slice(kids, func(i, j int) bool { return kids[i].TopicID < kids[j].TopicID })

		parent := g.byID[parentID]
		names := make(map[string]bool, len(kids))
		for _, c := range kids {
			key := strings.ToLower(c.Name)
			if names[key] {
				errs = append(errs, fmt.Sprintf("sibling name collision under %q: %q", parentID, c.Name))
			}
			names[key] = true
			if c.Depth != parent.Depth+1 {
				errs = append(errs, fmt.Sprintf("topic %q depth %d, want parent depth + 1 = %d",
					c.TopicID, c.Depth, parent.Depth+1))
			}
		}
	}

	if g.root != nil {
		if err := g.checkReachable(&errs); err != nil {
			return nil, err
		}
	}

	if len(errs) > 0 {
		return nil, &StructuralError{Violations: errs}
	}
	return g, nil
}

// checkReachable walks down from the root; any node not visited sits on
// a cycle or a detached island.
func (g *Graph) checkReachable(errs *[]string) error {
	visited := make(map[string]bool, len(g.nodes))
	queue := []string{g.root.TopicID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, c := range g.children[id] {
			queue = append(queue, c.TopicID)
		}
	}

	var orphans []string
	for _, t := range g.nodes {
		if !visited[t.TopicID] {
			orphans = append(orphans, t.TopicID)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		*errs = append(*errs, fmt.Sprintf("unreachable topics (cycle or orphan): %s",
			strings.Join(orphans, ", ")))
	}
	return nil
}

// Root returns the root topic, or nil for an empty graph.
func (g *Graph) Root() *store.Topic {
	return g.root
}

// Get returns a topic by id, or nil if absent.
func (g *Graph) Get(id string) *store.Topic {
	return g.byID[id]
}

// Children returns the direct children of a topic, ordered by id.
func (g *Graph) Children(id string) []*store.Topic {
	return slices.Clone(g.children[id])
}

// HasChildren reports whether the topic has at least one child.
func (g *Graph) HasChildren(id string) bool {
	return len(g.children[id]) > 0
}

// All returns every topic node.
func (g *Graph) All() []*store.Topic {
	return slices.Clone(g.nodes)
}

// Path returns the ancestors of a topic from the root down to and
// including the topic itself. Nil for an unknown id.
func (g *Graph) Path(id string) []*store.Topic {
	t := g.byID[id]
	if t == nil {
		return nil
	}
	var path []*store.Topic
	for t != nil {
		path = append(path, t)
		if t.ParentID == "" {
			break
		}
		t = g.byID[t.ParentID]
	}
	slices.Reverse(path)
	return path
}

// Slugify converts a display name to a stable topic id fragment:
// lowercase, spaces and punctuation collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	prevHyphen := true // trims leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
