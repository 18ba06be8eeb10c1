package viewer

import (
	"strings"
	"testing"

	"github.com/muurk/flashdeck/internal/deck"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		card  deck.Card
		want  Layout
	}{
		{
			name:  "untitled short card on 80x24",
			frame: NewFrame(80, 24),
			card:  deck.NewCard("", []string{strings.Repeat("a", 10), strings.Repeat("b", 20)}, 1),
			want: Layout{
				AnchorX: 10, AnchorY: 8, EstimatedHeight: 4,
				WrapWidth: 36, TitleOffset: 0, RuleRow: 8, RuleWidth: 60, NumberRow: 10,
			},
		},
		{
			name:  "titled card shifts content two rows",
			frame: NewFrame(80, 24),
			card:  deck.NewCard("# Title", []string{strings.Repeat("x", 72)}, 1),
			want: Layout{
				AnchorX: 10, AnchorY: 4, EstimatedHeight: 8,
				WrapWidth: 36, TitleOffset: 2, RuleRow: 5, RuleWidth: 60, NumberRow: 10,
			},
		},
		{
			name:  "narrow frame clamps wrap width",
			frame: NewFrame(4, 24),
			card:  deck.NewCard("", []string{"abc"}, 1),
			want: Layout{
				AnchorX: 0, AnchorY: 5, EstimatedHeight: 7,
				WrapWidth: 1, TitleOffset: 0, RuleRow: 5, RuleWidth: 3, NumberRow: 10,
			},
		},
		{
			name:  "tall card pinned to top",
			frame: NewFrame(80, 10),
			card:  deck.NewCard("# Long", []string{strings.Repeat("z", 500)}, 1),
			want: Layout{
				AnchorX: 10, AnchorY: 0, EstimatedHeight: 19,
				WrapWidth: 36, TitleOffset: 2, RuleRow: 1, RuleWidth: 60, NumberRow: 17,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeLayout(tt.frame, tt.card); got != tt.want {
				t.Errorf("ComputeLayout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeLayout_Pure(t *testing.T) {
	frame := NewFrame(97, 31)
	card := deck.NewCard("# Same", []string{"one", "two", "three"}, 2)

	first := ComputeLayout(frame, card)
	for i := 0; i < 5; i++ {
		if got := ComputeLayout(frame, card); got != first {
			t.Fatalf("ComputeLayout() call %d = %+v, want %+v", i+2, got, first)
		}
	}
}

func TestComputeLayout_AnchorInBounds(t *testing.T) {
	card := deck.NewCard("# Title", []string{strings.Repeat("w", 300)}, 1)

	for w := 1; w <= 40; w++ {
		for h := 1; h <= 40; h++ {
			l := ComputeLayout(NewFrame(w, h), card)
			if l.WrapWidth < 1 {
				t.Fatalf("%dx%d: WrapWidth = %d", w, h, l.WrapWidth)
			}
			if l.AnchorX < 0 || l.AnchorX >= w {
				t.Fatalf("%dx%d: AnchorX = %d out of bounds", w, h, l.AnchorX)
			}
			if l.AnchorY < 0 || l.AnchorY >= h {
				t.Fatalf("%dx%d: AnchorY = %d out of bounds", w, h, l.AnchorY)
			}
		}
	}
}

func TestNewFrame_Positive(t *testing.T) {
	f := NewFrame(0, -3)
	if f.Width != 1 || f.Height != 1 {
		t.Errorf("NewFrame(0, -3) = %+v, want 1x1", f)
	}

	f.Resize(132, 43)
	if f.Width != 132 || f.Height != 43 {
		t.Errorf("Resize(132, 43) = %+v", f)
	}
}
