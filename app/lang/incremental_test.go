package lang

import "testing"

func TestIncrementalBasicCaching(t *testing.T) {
	es := &EvalState{}

	lines := []string{"2+3", "10mod4"}
	results := es.EvalAll(lines)

	if results[0].Text != "5" {
		t.Errorf("line 0: got %q, want 5", results[0].Text)
	}
	if results[1].Text != "2" {
		t.Errorf("line 1: got %q, want 2", results[1].Text)
	}

	// Re-evaluate with same lines, should use cache
	results2 := es.EvalAll(lines)
	if results2[0].Text != "5" || results2[1].Text != "2" {
		t.Error("cached results should match")
	}
	hits, misses := es.Stats()
	if hits != 2 || misses != 2 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 2", hits, misses)
	}
}

func TestIncrementalChangedLine(t *testing.T) {
	es := &EvalState{}
	es.EvalAll([]string{"1+1", "2*2"})

	results := es.EvalAll([]string{"1+1", "2*3"})
	if results[1].Text != "6" {
		t.Errorf("line 1: got %q, want 6", results[1].Text)
	}
	hits, misses := es.Stats()
	if hits != 1 || misses != 3 {
		t.Errorf("Stats() = %d hits, %d misses, want 1, 3", hits, misses)
	}
}

func TestIncrementalBlankAndErrorLines(t *testing.T) {
	es := &EvalState{}
	results := es.EvalAll([]string{"", "   ", "5+", "50%"})

	if results[0].Text != "" || results[0].IsErr {
		t.Errorf("blank line: got %+v, want empty non-error", results[0])
	}
	if results[1].Text != "" || results[1].IsErr {
		t.Errorf("whitespace line: got %+v, want empty non-error", results[1])
	}
	if results[2].Text != ErrorText || !results[2].IsErr {
		t.Errorf("dangling operator: got %+v, want Error", results[2])
	}
	if results[3].Text != "0.5" {
		t.Errorf("percentage: got %q, want 0.5", results[3].Text)
	}
}

func TestIncrementalShrinkingPad(t *testing.T) {
	es := &EvalState{}
	es.EvalAll([]string{"1", "2", "3"})
	results := es.EvalAll([]string{"1"})
	if len(results) != 1 || len(es.Lines) != 1 {
		t.Fatalf("got %d results and %d cached lines, want 1 and 1", len(results), len(es.Lines))
	}
}
