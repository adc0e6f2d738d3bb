package habit

import "testing"

func TestIsDonePerType(t *testing.T) {
	cases := []struct {
		name    string
		habit   Type
		payload Payload
		want    bool
	}{
		{"book with pages", TypeBook, Payload{PagesRead: 12}, true},
		{"book without pages", TypeBook, Payload{BookTitle: "Dune"}, false},
		{"running with distance", TypeRunning, Payload{Kilometers: 5}, true},
		{"running zero distance", TypeRunning, Payload{}, false},
		{"ai learning completed", TypeAILearning, Payload{Completed: true}, true},
		{"ai learning not completed", TypeAILearning, Payload{}, false},
		{"job search single flag", TypeJobSearch, Payload{UpdatedCV: true}, true},
		{"job search no flags", TypeJobSearch, Payload{}, false},
		{"swimming with hours", TypeSwimming, Payload{Hours: 0.5}, true},
		{"swimming zero hours", TypeSwimming, Payload{}, false},
		{"weight by reading", TypeWeight, Payload{WeightKg: 82.5}, true},
		{"weight by minutes", TypeWeight, Payload{Minutes: 20}, true},
		{"weight empty", TypeWeight, Payload{}, false},
		{"exercise with minutes", TypeExercise, Payload{Minutes: 45}, true},
		{"exercise zero minutes", TypeExercise, Payload{}, false},
		{"instagram with followers", TypeInstagram, Payload{Followers: 310}, true},
		{"instagram zero followers", TypeInstagram, Payload{}, false},
		{"unknown type never done", Type("gardening"), Payload{Minutes: 45, PagesRead: 10}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDone(tc.habit, tc.payload); got != tc.want {
				t.Fatalf("IsDone(%s)=%v, want %v", tc.habit, got, tc.want)
			}
		})
	}
}

func TestContribution(t *testing.T) {
	cases := []struct {
		name    string
		habit   Type
		payload Payload
		want    float64
	}{
		{"book pages", TypeBook, Payload{PagesRead: 30}, 30},
		{"running km", TypeRunning, Payload{Kilometers: 7.5}, 7.5},
		{"ai learning topic", TypeAILearning, Payload{Completed: true}, 1},
		{"ai learning skipped", TypeAILearning, Payload{}, 0},
		{"job search two of three flags", TypeJobSearch, Payload{AppliedForJob: true, SoughtReference: false, UpdatedCV: true}, 2},
		{"job search all flags", TypeJobSearch, Payload{AppliedForJob: true, SoughtReference: true, UpdatedCV: true}, 3},
		{"swimming native hours", TypeSwimming, Payload{Hours: 1.5}, 1.5},
		{"weight minutes", TypeWeight, Payload{Minutes: 25, WeightKg: 80}, 25},
		{"exercise minutes", TypeExercise, Payload{Minutes: 40}, 40},
		{"instagram reading", TypeInstagram, Payload{Followers: 420}, 420},
		{"unknown type", Type("gardening"), Payload{Minutes: 40}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contribution(tc.habit, tc.payload); got != tc.want {
				t.Fatalf("Contribution(%s)=%v, want %v", tc.habit, got, tc.want)
			}
		})
	}
}

func TestMinuteContributionNormalizesSwimming(t *testing.T) {
	if got := MinuteContribution(TypeSwimming, Payload{Hours: 1.5}); got != 90 {
		t.Fatalf("swimming minute contribution=%v, want 90", got)
	}
	if got := MinuteContribution(TypeExercise, Payload{Minutes: 40}); got != 40 {
		t.Fatalf("exercise minute contribution=%v, want 40", got)
	}
	if got := MinuteContribution(TypeRunning, Payload{Kilometers: 5}); got != 5 {
		t.Fatalf("running minute contribution=%v, want 5 (pass-through)", got)
	}
}

func TestGaugeVsCounter(t *testing.T) {
	for _, typ := range Types {
		want := typ == TypeInstagram
		if got := IsGauge(typ); got != want {
			t.Fatalf("IsGauge(%s)=%v, want %v", typ, got, want)
		}
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("  Job_Search "); err != nil || typ != TypeJobSearch {
		t.Fatalf("ParseType(job_search)=%q, %v", typ, err)
	}
	if _, err := ParseType("gardening"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestUnitLabels(t *testing.T) {
	cases := map[Type]string{
		TypeBook:       "pages",
		TypeRunning:    "km",
		TypeAILearning: "topics",
		TypeJobSearch:  "activities",
		TypeSwimming:   "hours",
		TypeWeight:     "minutes",
		TypeExercise:   "minutes",
		TypeInstagram:  "followers",
		Type("nope"):   "",
	}
	for typ, want := range cases {
		if got := Unit(typ); got != want {
			t.Fatalf("Unit(%s)=%q, want %q", typ, got, want)
		}
	}
}
