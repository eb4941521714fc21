package filter

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/s0up4200/eventorkit/eventor"
)

var eventForms = []string{"IndSingleDay", "IndMultiDay", "RelaySingleDay"}

// generateTestEvents creates Event records shaped like parsed EventList items
func generateTestEvents(count int) []eventor.Node {
	events := make([]eventor.Node, count)

	for i := range count {
		races := []any{
			map[string]any{"EventRaceId": strconv.Itoa(i * 10)},
		}
		if i%2 == 0 {
			races = append(races, map[string]any{"EventRaceId": strconv.Itoa(i*10 + 1)})
		}

		events[i] = eventor.Node{
			"@eventForm":            eventForms[i%len(eventForms)],
			"EventId":               strconv.Itoa(i),
			"Name":                  fmt.Sprintf("Event %d", i),
			"EventClassificationId": strconv.Itoa(i%6 + 1),
			"StartDate": map[string]any{
				"Date": fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			},
			"EventRace": races,
		}
	}

	return events
}

func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `has("Name")`},
		{"complex", `num("EventClassificationId") <= 2 and date("StartDate.Date") > daysAgo(365) and count("EventRace") > 1`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			compiler := NewExprCompiler()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := compiler.Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompileFilterWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `num("EventClassificationId") <= 2`

	b.ReportAllocs()
	for b.Loop() {
		if _, err := compiler.Compile(expression); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateConcurrent(b *testing.B) {
	events := generateTestEvents(10000)
	filter, err := CompileFilter(`num("EventClassificationId") >= 4 and icontains(Name, "1")`)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	evaluators := []struct {
		name      string
		evaluator *ConcurrentEvaluator
	}{
		{"workers-1", NewConcurrentEvaluator(WithWorkers(1))},
		{"workers-4", NewConcurrentEvaluator(WithWorkers(4))},
		{"workers-default", NewConcurrentEvaluator()},
	}

	for _, tc := range evaluators {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := tc.evaluator.Evaluate(ctx, filter, events); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
