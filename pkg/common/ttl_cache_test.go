package common

import (
	"testing"
	"time"
)

// Tests for success.

// TestPutForSuccess tests for success.
func TestPutForSuccess(t *testing.T) {
	cache, done := NewCache(10, time.Duration(100))
	defer close(done)
	cache.Put("foo", 42)
}

// TestGetForSuccess tests for success.
func TestGetForSuccess(t *testing.T) {
	cache, done := NewCache(10, time.Duration(100))
	defer close(done)
	cache.Put("foo", 42)
	cache.Get("foo")
}

// Tests for failure.

// N/A.

// Tests for sanity.

// TestPutForSanity tests for sanity.
func TestPutForSanity(t *testing.T) {
	cache, done := NewCache(10, time.Duration(50))
	defer close(done)
	cache.Put("foo", "bar")
	value, ok := cache.Get("foo")
	if !ok {
		t.Errorf("foo should still be in the cache.")
	}
	if value != "bar" {
		t.Errorf("Expected bar - got %v.", value)
	}
	time.Sleep(time.Duration(75) * time.Millisecond)
	if _, ok := cache.Get("foo"); ok {
		t.Errorf("foo should not be in the cache.")
	}
}
