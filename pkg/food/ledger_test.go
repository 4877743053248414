package food

import (
	"context"
	"testing"
)

type estimatorFunc func(ctx context.Context, text string) []Estimate

func (f estimatorFunc) Estimate(ctx context.Context, text string) []Estimate {
	return f(ctx, text)
}

func TestAddFromEstimate(t *testing.T) {
	var gotQuery string
	est := estimatorFunc(func(_ context.Context, text string) []Estimate {
		gotQuery = text
		return []Estimate{
			{Name: "rice", Calories: 260, Weight: 200, CalPer100g: 130, Icon: "🍚"},
		}
	})

	l := NewLedger()
	added := l.AddFromEstimate(context.Background(), est, "rice", 200)
	if gotQuery != "200g rice" {
		t.Fatalf("expected weight-prefixed query, got %q", gotQuery)
	}
	if len(added) != 1 {
		t.Fatalf("expected 1 item added, got %d", len(added))
	}
	if added[0].ID == "" {
		t.Fatal("expected a fresh id on the added item")
	}
	if added[0].Weight != 200 {
		t.Fatalf("expected weight 200, got %v", added[0].Weight)
	}
	if l.Total() != added[0].Calories {
		t.Fatalf("expected total %d, got %d", added[0].Calories, l.Total())
	}
}

func TestAddFromEstimateBlankTextIsNoop(t *testing.T) {
	called := false
	est := estimatorFunc(func(_ context.Context, _ string) []Estimate {
		called = true
		return nil
	})

	l := NewLedger()
	if added := l.AddFromEstimate(context.Background(), est, "   ", 0); len(added) != 0 {
		t.Fatalf("expected no items, got %d", len(added))
	}
	if called {
		t.Fatal("estimator must not be called for blank text")
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d items", l.Len())
	}
}

func TestAddFromEstimateEmptyResultLeavesLedgerUnchanged(t *testing.T) {
	est := estimatorFunc(func(_ context.Context, _ string) []Estimate {
		return nil
	})

	l := NewLedger(Item{ID: "a", Name: "toast", Calories: 120, Weight: 40, CalPer100g: 300})
	if added := l.AddFromEstimate(context.Background(), est, "mystery stew", 0); len(added) != 0 {
		t.Fatalf("expected no items, got %d", len(added))
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", l.Len())
	}
}

func TestAddFromEstimateAppendsInOrder(t *testing.T) {
	est := estimatorFunc(func(_ context.Context, _ string) []Estimate {
		return []Estimate{
			{Name: "burger", Calories: 500, Weight: 200, CalPer100g: 250},
			{Name: "fries", Calories: 310, Weight: 100, CalPer100g: 310},
		}
	})

	l := NewLedger()
	l.AddFromEstimate(context.Background(), est, "burger and fries", 0)
	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "burger" || items[1].Name != "fries" {
		t.Fatalf("expected estimator order preserved, got %q then %q", items[0].Name, items[1].Name)
	}
	if items[0].ID == items[1].ID {
		t.Fatal("expected distinct ids")
	}
}

func TestAddLiteral(t *testing.T) {
	l := NewLedger()
	item, ok := l.AddLiteral(Item{Name: "apple", Calories: 52, Weight: 100, CalPer100g: 52})
	if !ok {
		t.Fatal("expected literal add to succeed")
	}
	if item.ID == "" {
		t.Fatal("expected an id to be assigned")
	}

	if _, ok := l.AddLiteral(Item{Name: "  "}); ok {
		t.Fatal("expected nameless item to be rejected")
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", l.Len())
	}
}

func TestEditWeightRecomputesCalories(t *testing.T) {
	l := NewLedger(
		Item{ID: "a", Name: "rice", Calories: 260, Weight: 200, CalPer100g: 130},
		Item{ID: "b", Name: "egg", Calories: 78, Weight: 50, CalPer100g: 155},
	)

	if !l.EditWeight("a", 150) {
		t.Fatal("expected edit to match")
	}

	items := l.Items()
	if items[0].Weight != 150 {
		t.Fatalf("expected weight 150, got %v", items[0].Weight)
	}
	if items[0].Calories != CaloriesFor(150, 130) {
		t.Fatalf("expected calories %d, got %d", CaloriesFor(150, 130), items[0].Calories)
	}
	// The other record is untouched.
	if items[1].Calories != 78 || items[1].Weight != 50 {
		t.Fatalf("expected untouched sibling, got %+v", items[1])
	}
}

func TestEditWeightNoops(t *testing.T) {
	l := NewLedger(Item{ID: "a", Name: "rice", Calories: 260, Weight: 200, CalPer100g: 130})

	if l.EditWeight("missing", 100) {
		t.Fatal("expected unknown id to be a no-op")
	}
	if l.EditWeight("a", 0) {
		t.Fatal("expected non-positive weight to be rejected")
	}
	if got := l.Items()[0].Calories; got != 260 {
		t.Fatalf("expected calories unchanged, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	l := NewLedger(
		Item{ID: "a", Name: "rice", Calories: 260},
		Item{ID: "b", Name: "egg", Calories: 78},
	)

	if !l.Remove("a") {
		t.Fatal("expected removal to match")
	}
	if l.Remove("a") {
		t.Fatal("expected second removal to be a no-op")
	}
	if l.Len() != 1 || l.Items()[0].ID != "b" {
		t.Fatalf("unexpected ledger state: %+v", l.Items())
	}
}

func TestTotalAndClear(t *testing.T) {
	l := NewLedger(
		Item{ID: "a", Calories: 700, Name: "lunch"},
		Item{ID: "b", Calories: 500, Name: "dinner"},
	)
	if l.Total() != 1200 {
		t.Fatalf("expected total 1200, got %d", l.Total())
	}

	l.Clear()
	if l.Len() != 0 || l.Total() != 0 {
		t.Fatalf("expected empty ledger after clear, got %d items", l.Len())
	}
}

func TestCaloriesForRounds(t *testing.T) {
	tests := []struct {
		weight, per100g float64
		want            int
	}{
		{200, 130, 260},
		{150, 130, 195},
		{33, 100, 33},
		{50, 155, 78}, // 77.5 rounds up
		{0, 130, 0},
	}
	for _, tc := range tests {
		if got := CaloriesFor(tc.weight, tc.per100g); got != tc.want {
			t.Fatalf("CaloriesFor(%v, %v) = %d, want %d", tc.weight, tc.per100g, got, tc.want)
		}
	}
}
