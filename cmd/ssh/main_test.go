package main

import "testing"

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	if w, h, err := s.getSize(); err != nil || w != 80 || h != 24 {
		t.Fatalf("getSize = %d, %d, %v", w, h, err)
	}
	s.update(120, 40)
	if w, h, _ := s.getSize(); w != 120 || h != 40 {
		t.Errorf("after update getSize = %d, %d", w, h)
	}
}
