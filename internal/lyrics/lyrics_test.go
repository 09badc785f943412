package lyrics

import (
	"math/rand"
	"sort"
	"testing"
)

func sampleLines() []Line {
	return []Line{
		{StartTime: 0, Text: "a"},
		{StartTime: 10, Text: "b"},
		{StartTime: 20, Text: "c"},
	}
}

func TestResolveActive(t *testing.T) {
	lines := sampleLines()

	cases := []struct {
		name     string
		position float64
		want     int
		ok       bool
	}{
		{"before first line", -1, -1, false},
		{"exactly first", 0, 0, true},
		{"between lines", 15, 1, true},
		{"exactly second", 10, 1, true},
		{"past the end", 999, 2, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveActive(lines, tc.position)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ResolveActive(%v) = (%d, %v), want (%d, %v)", tc.position, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestResolveActiveEmpty(t *testing.T) {
	if idx, ok := ResolveActive(nil, 5); ok || idx != -1 {
		t.Errorf("empty lines should resolve to none, got (%d, %v)", idx, ok)
	}
}

func TestResolveActiveTiesPickLatest(t *testing.T) {
	lines := []Line{
		{StartTime: 0, Text: "a"},
		{StartTime: 5, Text: "b1"},
		{StartTime: 5, Text: "b2"},
		{StartTime: 9, Text: "c"},
	}

	idx, ok := ResolveActive(lines, 5)
	if !ok || idx != 2 {
		t.Errorf("expected latest tied line (2), got (%d, %v)", idx, ok)
	}
}

func TestResolveActiveMatchesLinearDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(12)
		lines := make([]Line, n)
		for i := range lines {
			lines[i].StartTime = float64(rng.Intn(30))
		}
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].StartTime < lines[j].StartTime })

		position := float64(rng.Intn(40) - 5)

		want := -1
		for i, line := range lines {
			if line.StartTime <= position {
				want = i
			}
		}

		got, ok := ResolveActive(lines, position)
		if got != want || ok != (want >= 0) {
			t.Fatalf("iteration %d: got (%d, %v), want %d", iter, got, ok, want)
		}
	}
}

func TestNormalizeUnsyncedIsEmpty(t *testing.T) {
	data := Data{Lines: sampleLines(), IsSynced: false}
	if lines := Normalize(data); lines != nil {
		t.Errorf("unsynced lyrics should normalize to nil, got %d lines", len(lines))
	}
}

func TestNormalizeSortsWithoutMutatingInput(t *testing.T) {
	input := []Line{
		{StartTime: 20, Text: "c"},
		{StartTime: 0, Text: "a"},
		{StartTime: 10, Text: "b1"},
		{StartTime: 10, Text: "b2"},
	}

	lines := Normalize(Data{Lines: input, IsSynced: true})

	want := []string{"a", "b1", "b2", "c"}
	for i, text := range want {
		if lines[i].Text != text {
			t.Errorf("line %d: got %q, want %q", i, lines[i].Text, text)
		}
	}

	if input[0].Text != "c" {
		t.Error("Normalize mutated its input")
	}
}
