package deck

import (
	"errors"
	"testing"
)

func TestNewCard_CopiesContent(t *testing.T) {
	lines := []string{"alpha", "beta"}
	card := NewCard("# Title", lines, 1)

	lines[0] = "mutated"
	if card.Line(0) != "alpha" {
		t.Errorf("Card.Line(0) = %q after caller mutation, want %q", card.Line(0), "alpha")
	}

	got := card.Content()
	got[1] = "mutated"
	if card.Line(1) != "beta" {
		t.Errorf("Card.Line(1) = %q after Content() mutation, want %q", card.Line(1), "beta")
	}
}

func TestCard_HasTitle(t *testing.T) {
	if NewCard("", nil, 1).HasTitle() {
		t.Error("untitled card reports HasTitle() = true")
	}
	if !NewCard("# Hello", nil, 1).HasTitle() {
		t.Error("titled card reports HasTitle() = false")
	}
}

func TestCard_ContentLength(t *testing.T) {
	tests := []struct {
		name    string
		content []string
		want    int
	}{
		{name: "empty", content: nil, want: 0},
		{name: "ascii", content: []string{"0123456789", "01234567890123456789"}, want: 30},
		{name: "multibyte counts characters", content: []string{"héllo"}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCard("", tt.content, 1).ContentLength(); got != tt.want {
				t.Errorf("ContentLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("New(nil) error = %v, want ErrEmptyDeck", err)
	}
}

func TestNew_Order(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		wantErr bool
	}{
		{name: "consecutive", numbers: []int{1, 2, 3}},
		{name: "gaps allowed", numbers: []int{1, 4, 9}},
		{name: "zero", numbers: []int{0, 1}, wantErr: true},
		{name: "duplicate", numbers: []int{1, 1}, wantErr: true},
		{name: "decreasing", numbers: []int{2, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := make([]Card, len(tt.numbers))
			for i, n := range tt.numbers {
				cards[i] = NewCard("", nil, n)
			}

			_, err := New(cards)
			if tt.wantErr && !errors.Is(err, ErrCardOrder) {
				t.Errorf("New() error = %v, want ErrCardOrder", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("New() unexpected error = %v", err)
			}
		})
	}
}

func TestDeck_Immutable(t *testing.T) {
	cards := []Card{NewCard("# A", nil, 1), NewCard("# B", nil, 2)}
	d, err := New(cards)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cards[0] = NewCard("# Z", nil, 1)
	if d.Card(0).Title() != "# A" {
		t.Errorf("deck changed after caller mutated input slice: %v", d.Card(0))
	}

	out := d.Cards()
	out[1] = NewCard("# Y", nil, 2)
	if d.Card(1).Title() != "# B" {
		t.Errorf("deck changed after Cards() result mutated: %v", d.Card(1))
	}

	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}
