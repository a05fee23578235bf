package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderTickCleansLabel(t *testing.T) {
	got := RenderTick("Claude\n3.5\nSonnet", Desktop)
	want := Tick{Text: "Claude 3.5 Sonnet", Angle: -45, Anchor: "end", DY: 20, FontSize: 12, Fill: "#9ca3af"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderTick mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTickMobile(t *testing.T) {
	got := RenderTick("GPT-4", Mobile)
	if got.Text != "GPT-4" || got.DY != 16 || got.FontSize != 10 {
		t.Fatalf("unexpected mobile tick: %+v", got)
	}
	if got.Angle != -45 || got.Anchor != "end" {
		t.Fatalf("rotation must not depend on mode: %+v", got)
	}
	if empty := RenderTick("", Desktop); empty.Text != "" {
		t.Fatalf("expected empty text, got %q", empty.Text)
	}
}

func TestRenderTooltip(t *testing.T) {
	if _, ok := RenderTooltip(false, []Payload{{Value: 82, Color: "#3b82f6"}}, "GPT-4"); ok {
		t.Fatal("inactive tooltip should render nothing")
	}
	if _, ok := RenderTooltip(true, nil, "GPT-4"); ok {
		t.Fatal("nil payload should render nothing")
	}
	if _, ok := RenderTooltip(true, []Payload{}, "GPT-4"); ok {
		t.Fatal("empty payload should render nothing")
	}

	tip, ok := RenderTooltip(true, []Payload{{Value: 82, Color: "#3b82f6"}}, "GPT-4")
	if !ok {
		t.Fatal("expected tooltip")
	}
	want := Tooltip{
		Label:     "GPT-4",
		Value:     82,
		Color:     "#3b82f6",
		Text:      "Score: 82%",
		AriaLabel: "Chart data for GPT-4",
	}
	if diff := cmp.Diff(want, tip); diff != "" {
		t.Fatalf("tooltip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTooltipUsesFirstPayloadAndCleansLabel(t *testing.T) {
	tip, ok := RenderTooltip(true, []Payload{{Value: 82.5}, {Value: 10}}, "GPT-4\nTurbo")
	if !ok {
		t.Fatal("expected tooltip")
	}
	if tip.Label != "GPT-4 Turbo" || tip.Text != "Score: 82.5%" {
		t.Fatalf("unexpected tooltip: %+v", tip)
	}
}
