package report

import "testing"

// TestCursorEnsureSpace tests page-break behavior.
func TestCursorEnsureSpace(t *testing.T) {
	t.Parallel()

	t.Run("no break while space remains", func(t *testing.T) {
		t.Parallel()

		doc := newFakeDoc()
		cur := NewCursor(doc)

		if broke := cur.EnsureSpace(10); broke {
			t.Error("unexpected page break at top of page")
		}
		if cur.Page() != 1 {
			t.Errorf("page = %d, want 1", cur.Page())
		}
		if cur.Y() != MarginTop {
			t.Errorf("y = %f, want %f", cur.Y(), MarginTop)
		}
	})

	t.Run("breaks when needed height overflows", func(t *testing.T) {
		t.Parallel()

		doc := newFakeDoc()
		cur := NewCursor(doc)
		cur.Advance(PageHeight - MarginTop - MarginBottom - 5)

		if broke := cur.EnsureSpace(10); !broke {
			t.Fatal("expected page break")
		}
		if cur.Page() != 2 {
			t.Errorf("page = %d, want 2", cur.Page())
		}
		if cur.Y() != MarginTop {
			t.Errorf("y = %f, want reset to %f", cur.Y(), MarginTop)
		}
		if doc.PageCount() != 2 {
			t.Errorf("backend pages = %d, want 2", doc.PageCount())
		}
	})

	t.Run("exact fit does not break", func(t *testing.T) {
		t.Parallel()

		doc := newFakeDoc()
		cur := NewCursor(doc)
		available := PageHeight - MarginBottom - cur.Y()

		if broke := cur.EnsureSpace(available); broke {
			t.Error("exact fit should not break the page")
		}
	})
}

// TestCursorRule tests horizontal rule drawing.
func TestCursorRule(t *testing.T) {
	t.Parallel()

	doc := newFakeDoc()
	cur := NewCursor(doc)
	before := cur.Y()

	cur.Rule(200, 200, 200)

	if cur.Y() <= before {
		t.Error("rule should advance the cursor")
	}

	var found bool
	for _, op := range doc.ops {
		if op.kind == "line" {
			found = true
			if op.x != MarginLeft {
				t.Errorf("rule starts at x = %f, want %f", op.x, MarginLeft)
			}
		}
	}
	if !found {
		t.Error("expected a line draw operation")
	}
}
