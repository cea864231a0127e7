package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/promptmatch/internal/client"
)

const defaultContentType = "application/json"

// Result is the outcome of one scenario.
type Result struct {
	Scenario Scenario
	Outcome  *client.Outcome
	Failures []string
	Err      error
}

// Passed reports whether the scenario met every expectation.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("FAIL %s: %v", r.Scenario.Name, r.Err)
	case len(r.Failures) > 0:
		return fmt.Sprintf("FAIL %s: %s", r.Scenario.Name, strings.Join(r.Failures, "; "))
	default:
		return "PASS " + r.Scenario.Name
	}
}

// Run executes scenarios with at most concurrency requests in flight and
// returns results in scenario order. A concurrency below 1 runs serially.
func Run(ctx context.Context, c *client.Client, scenarios []Scenario, concurrency int) []Result {
	results := make([]Result, len(scenarios))

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))

	for i, s := range scenarios {
		g.Go(func() error {
			results[i] = runOne(ctx, c, s)
			return nil
		})
	}
	g.Wait()

	return results
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

func runOne(ctx context.Context, c *client.Client, s Scenario) Result {
	res := Result{Scenario: s}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	body, err := s.body()
	if err != nil {
		res.Err = err
		return res
	}

	contentType := s.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	out, err := c.MatchRaw(ctx, contentType, body)
	if err != nil {
		res.Err = err
		return res
	}

	res.Outcome = out
	res.Failures = s.Expect.check(out)
	return res
}

func (s Scenario) body() ([]byte, error) {
	if s.Body != nil {
		return []byte(*s.Body), nil
	}
	data, err := json.Marshal(s.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return data, nil
}

func (e Expectation) check(out *client.Outcome) []string {
	var failures []string
	if e.Status != 0 && out.Status != e.Status {
		failures = append(failures, fmt.Sprintf("status %d, want %d", out.Status, e.Status))
	}
	if e.Prompt != "" && (!out.Success || out.Prompt != e.Prompt) {
		failures = append(failures, fmt.Sprintf("prompt %q (success=%t), want %q", out.Prompt, out.Success, e.Prompt))
	}
	if e.Error != "" && (out.Success || out.Error != e.Error) {
		failures = append(failures, fmt.Sprintf("error %q (success=%t), want %q", out.Error, out.Success, e.Error))
	}
	return failures
}
