package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
)

func keyboard() model.Product {
	return model.Product{ID: 1, Name: "Keyboard", Price: 150000, Image: "kb.png", CategoryName: "Peripherals"}
}

func mouse() model.Product {
	return model.Product{ID: 2, Name: "Mouse", Price: 80000}
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	c := New(&MemoryStore{})

	c.Add(keyboard())
	c.Add(mouse())
	c.Add(keyboard())

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 for repeated add, got %d", lines[0].Quantity)
	}
	if lines[0].Category != "Peripherals" {
		t.Fatalf("expected category label snapshot, got %q", lines[0].Category)
	}
}

func TestCartAddIgnoresProductWithoutID(t *testing.T) {
	c := New(&MemoryStore{})
	c.Add(model.Product{Name: "ghost", Price: 100})
	if c.Len() != 0 {
		t.Fatalf("product without id must not be added")
	}
}

func TestCartRemove(t *testing.T) {
	c := New(&MemoryStore{})
	c.Add(keyboard())
	c.Add(mouse())

	c.Remove(1)
	lines := c.Lines()
	if len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}

	// removing an absent product is a no-op
	c.Remove(99)
	if c.Len() != 1 {
		t.Fatalf("remove of unknown product must not change the cart")
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	c := New(&MemoryStore{})
	c.Add(keyboard())

	c.UpdateQuantity(1, 2)
	if got := c.Lines()[0].Quantity; got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}

	c.UpdateQuantity(1, -3)
	if c.Len() != 0 {
		t.Fatalf("quantity dropping below 1 must remove the line")
	}
}

func TestCartTotals(t *testing.T) {
	c := New(&MemoryStore{})
	c.Add(keyboard())
	c.Add(keyboard())
	c.Add(mouse())

	if got := c.Subtotal(); got != 380000 {
		t.Fatalf("unexpected subtotal %d", got)
	}
	if got := c.Total(20000); got != 400000 {
		t.Fatalf("unexpected total %d", got)
	}
}

func TestCartNotifiesListeners(t *testing.T) {
	store := &MemoryStore{}
	c := New(store)

	var events int
	var lastErr error
	c.Subscribe(func(lines []Line, err error) {
		events++
		lastErr = err
	})

	c.Add(keyboard())
	c.UpdateQuantity(1, 1)
	c.Remove(1)
	if events != 3 {
		t.Fatalf("expected 3 notifications, got %d", events)
	}
	if lastErr != nil {
		t.Fatalf("unexpected error: %v", lastErr)
	}
}

func TestCartStoreFailureKeepsMemoryState(t *testing.T) {
	store := &MemoryStore{}
	c := New(store)
	c.Add(keyboard())

	store.Err = errors.New("disk full")
	var notified error
	c.Subscribe(func(lines []Line, err error) { notified = err })

	c.Add(mouse())
	if notified == nil {
		t.Fatalf("expected store failure to be surfaced to listeners")
	}
	if c.Len() != 2 {
		t.Fatalf("in-memory state must survive store failure")
	}
}

func TestCartLoadsPersistedState(t *testing.T) {
	store := &MemoryStore{}
	first := New(store)
	first.Add(keyboard())
	first.Add(keyboard())

	second := New(store)
	if second.Len() != 1 {
		t.Fatalf("expected persisted line, got %d", second.Len())
	}
	if second.Lines()[0].Quantity != 2 {
		t.Fatalf("expected persisted quantity 2")
	}
}

func TestCartCorruptStoreYieldsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	c := New(NewFileStore(path))
	if c.Len() != 0 {
		t.Fatalf("corrupt store must yield an empty cart")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)

	c := New(store)
	c.Add(keyboard())
	c.Add(mouse())

	restored := New(NewFileStore(path))
	if restored.Len() != 2 {
		t.Fatalf("expected 2 persisted lines, got %d", restored.Len())
	}
	if got := restored.Subtotal(); got != 230000 {
		t.Fatalf("unexpected subtotal after reload %d", got)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	lines, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected no lines, got %+v", lines)
	}
}

func TestCartCheckoutRequest(t *testing.T) {
	c := New(&MemoryStore{})

	if _, err := c.CheckoutRequest("Alice", "0811", "Jl. Merdeka 1", ""); err != domainErrors.ErrEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}

	c.Add(keyboard())
	if _, err := c.CheckoutRequest("  ", "0811", "addr", ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := c.CheckoutRequest("Alice", "", "addr", ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank phone, got %v", err)
	}
	if _, err := c.CheckoutRequest("Alice", "0811", "", ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank address, got %v", err)
	}

	submission, err := c.CheckoutRequest(" Alice ", "0811", "Jl. Merdeka 1", " note ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submission.Name != "Alice" || submission.Notes != "note" {
		t.Fatalf("expected trimmed fields, got %+v", submission)
	}
	if len(submission.Lines) != 1 || submission.Lines[0].ProductID != 1 || submission.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected submission lines %+v", submission.Lines)
	}
}

func TestCartClear(t *testing.T) {
	store := &MemoryStore{}
	c := New(store)
	c.Add(keyboard())

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	persisted, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("clear must persist the empty state")
	}
}
