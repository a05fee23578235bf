package dashboard

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{59.999, Poor},
		{60, Fair},
		{69.999, Fair},
		{70, Good},
		{79.999, Good},
		{80, VeryGood},
		{89.999, VeryGood},
		{90, Excellent},
		{100, Excellent},
		{0, Poor},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Fatalf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	if got := Classify(-20); got != Poor {
		t.Fatalf("Classify(-20) = %v, want Poor", got)
	}
	if got := Classify(250); got != Excellent {
		t.Fatalf("Classify(250) = %v, want Excellent", got)
	}
	if got := Classify(math.NaN()); got != Poor {
		t.Fatalf("Classify(NaN) = %v, want Poor", got)
	}
	if got := Classify(math.Inf(1)); got != Excellent {
		t.Fatalf("Classify(+Inf) = %v, want Excellent", got)
	}
}

func TestClassifyMonotonicAndIdempotent(t *testing.T) {
	prev := Classify(-10)
	for s := -10.0; s <= 110; s += 0.25 {
		got := Classify(s)
		if got < prev {
			t.Fatalf("tier decreased at %v: %v after %v", s, got, prev)
		}
		if again := Classify(s); again != got {
			t.Fatalf("Classify(%v) not stable: %v then %v", s, got, again)
		}
		if got < Poor || got > Excellent {
			t.Fatalf("Classify(%v) = %d outside the tier set", s, got)
		}
		prev = got
	}
}

func TestTierColorsAndLabels(t *testing.T) {
	want := map[Tier][3]string{
		Excellent: {"#10b981", "Excellent", "90+"},
		VeryGood:  {"#3b82f6", "Very Good", "80-89"},
		Good:      {"#8b5cf6", "Good", "70-79"},
		Fair:      {"#f59e0b", "Fair", "60-69"},
		Poor:      {"#ef4444", "Poor", "<60"},
	}
	for tier, w := range want {
		if tier.Color() != w[0] || tier.String() != w[1] || tier.Range() != w[2] {
			t.Fatalf("tier %d: got (%s,%s,%s), want %v", tier, tier.Color(), tier.String(), tier.Range(), w)
		}
	}
	if ColorFor(82) != "#3b82f6" {
		t.Fatalf("ColorFor(82) = %s", ColorFor(82))
	}
}

func TestLegendOrder(t *testing.T) {
	legend := Legend()
	if len(legend) != 5 {
		t.Fatalf("expected 5 legend rows, got %d", len(legend))
	}
	if legend[0].Tier != Excellent || legend[4].Tier != Poor {
		t.Fatalf("legend not best-first: %+v", legend)
	}
}

func TestPointColorDerivedFromScore(t *testing.T) {
	p := NewPoint("GPT-4", 82)
	if p.Color() != VeryGood.Color() || p.Tier() != VeryGood {
		t.Fatalf("unexpected point color/tier: %s %v", p.Color(), p.Tier())
	}
	var zero Point
	zero.Score = 95
	if zero.Color() != Excellent.Color() {
		t.Fatalf("zero-value point should still derive its color, got %s", zero.Color())
	}
}
