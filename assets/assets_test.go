package assets

import (
	"errors"
	"testing"
)

func TestObjectSize(t *testing.T) {
	var m Metadata

	w, h, err := m.ObjectSize("apple.png")
	if err != nil {
		t.Fatalf("ObjectSize(apple.png) error: %v", err)
	}
	if w != 64 || h != 64 {
		t.Fatalf("apple size = %fx%f, want 64x64", w, h)
	}

	w, h, err = m.ObjectSize("basket.png")
	if err != nil {
		t.Fatalf("ObjectSize(basket.png) error: %v", err)
	}
	if w != 128 || h != 64 {
		t.Fatalf("basket size = %fx%f, want 128x64", w, h)
	}
}

func TestObjectSizeMissing(t *testing.T) {
	var m Metadata
	if _, _, err := m.ObjectSize("pear.png"); !errors.Is(err, ErrNoMetadata) {
		t.Fatalf("missing texture error = %v, want ErrNoMetadata", err)
	}
}
