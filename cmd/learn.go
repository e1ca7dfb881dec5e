package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/engine"
	"github.com/acarerdinc/relevia/internal/interest"
	"github.com/acarerdinc/relevia/internal/llm"
	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/ontology"
	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/selector"
	"github.com/acarerdinc/relevia/internal/store"
	"github.com/acarerdinc/relevia/internal/topicgraph"
)

var learnCmd = &cobra.Command{
	Use:   "learn [subject]",
	Short: "Start an adaptive learning session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd, args...)
	},
}

func init() {
	learnCmd.Flags().String("strategy", string(selector.StrategyAdaptive),
		"Topic selection strategy: adaptive or fixed")
}

// runLearn opens the store, wires the engine, and drives the
// question-answer loop on stdin.
func runLearn(cmd *cobra.Command, args ...string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, graph, err := buildEngine(ctx, cmd, st)
	if err != nil {
		return err
	}
	defer eng.WaitForExpansions()

	subject := "Machine Learning"
	if len(args) > 0 {
		subject = args[0]
	}
	root, err := graph.EnsureRoot(ctx, subject, "")
	if err != nil {
		return fmt.Errorf("ensure root topic: %w", err)
	}

	userID := resolveUser(cmd)
	fmt.Printf("Learning %s as %s. Answer with 1-4, (s)kip, (t)each me, (e)xpand topic, (q)uit.\n\n", root.Name, userID)

	in := bufio.NewScanner(os.Stdin)
	for {
		turn, err := eng.SelectNext(ctx, userID)
		if err != nil {
			return fmt.Errorf("select next question: %w", err)
		}

		for _, c := range turn.NewSubtopics {
			fmt.Printf("New subtopic unlocked for exploration: %s\n", c.Name)
		}
		fmt.Printf("[%s]  %s\n", turn.Topic.Name, turn.Question.QuestionText)
		for i, opt := range turn.Question.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		input := engine.AnswerInput{
			UserID:     userID,
			QuestionID: turn.Question.QuestionID,
		}
		started := time.Now()

	prompt:
		fmt.Print("> ")
		if !in.Scan() {
			return in.Err()
		}
		switch answer := strings.TrimSpace(in.Text()); answer {
		case "q", "quit":
			return nil
		case "s", "skip":
			input.Action = engine.ActionSkip
		case "t", "teach":
			input.Action = engine.ActionTeachMe
		case "e", "expand":
			eng.RequestSubtopics(userID, turn.Topic.TopicID)
			fmt.Println("Expanding the topic in the background.")
			goto prompt
		default:
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(turn.Question.Options) {
				fmt.Println("Enter an option number, s, t, e, or q.")
				goto prompt
			}
			input.Action = engine.ActionAnswer
			input.Answer = turn.Question.Options[n-1]
		}
		input.TimeMs = int(time.Since(started).Milliseconds())

		out, err := eng.SubmitAnswer(ctx, input)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}
		printOutcome(input.Action, out)
	}
}

func printOutcome(action engine.Action, out *engine.AnswerOutcome) {
	switch action {
	case engine.ActionSkip:
		fmt.Println("Skipped.")
	case engine.ActionTeachMe:
		fmt.Printf("Answer: %s\n%s\n", out.CorrectAnswer, out.Explanation)
	default:
		if out.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. The answer is: %s\n", out.CorrectAnswer)
		}
		if out.Explanation != "" {
			fmt.Println(out.Explanation)
		}
		if out.Mastery != nil && out.Mastery.Advanced {
			fmt.Printf("Mastery advanced: %s -> %s\n", out.Mastery.FromLevel, out.Mastery.ToLevel)
		}
		fmt.Printf("Session accuracy: %.0f%%\n", out.SessionAccuracy*100)
	}
	fmt.Println()
}

// openStore resolves the DB path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// buildEngine wires the services over the store. The topic graph
// service is returned separately so callers can seed the root.
func buildEngine(ctx context.Context, cmd *cobra.Command, st *store.Store) (*engine.Engine, *topicgraph.Service, error) {
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return nil, nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	graph := topicgraph.NewService(st.TopicRepo(), st.ProgressRepo())
	masteries := mastery.NewService(st.TopicRepo(), st.ProgressRepo(), st.EventRepo(), mastery.DefaultConfig())
	interests := interest.NewService(st.InterestRepo(), interest.DefaultConfig())
	guard := diversity.NewGuard(st.ConceptHistoryRepo(), diversity.DefaultConfig())
	gen := questiongen.New(provider, questiongen.DefaultConfig())
	expander := ontology.NewService(graph, masteries, interests, gen, st.ExpansionRepo(), ontology.DefaultConfig())

	sel := selector.New(selector.DefaultConfig(), rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))

	cfg := engine.DefaultConfig()
	if s, _ := cmd.Flags().GetString("strategy"); s != "" {
		switch selector.Strategy(s) {
		case selector.StrategyAdaptive, selector.StrategyFixed:
			cfg.Strategy = selector.Strategy(s)
		default:
			return nil, nil, fmt.Errorf("unknown strategy %q", s)
		}
	}

	eng := engine.New(graph, masteries, interests, guard, sel, gen, expander,
		st.QuestionRepo(), st.EventRepo(), cfg)
	return eng, graph, nil
}
