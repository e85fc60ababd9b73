package core

import (
	"strings"
	"sync"
	"testing"
)

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	if id == 0 {
		t.Fatal("goroutineID() returned 0")
	}

	// Another goroutine must see a different id
	var other uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = goroutineID()
	}()
	wg.Wait()

	if other == 0 {
		t.Fatal("goroutineID() returned 0 on spawned goroutine")
	}
	if other == id {
		t.Errorf("expected distinct goroutine ids, both were %d", id)
	}
}

func TestThreadTag_Format(t *testing.T) {
	// The test goroutine is not the main goroutine, so the tag must be
	// a parenthesized hex hash followed by a single space.
	tag := ThreadTag()
	if tag == "" {
		t.Fatal("expected non-empty tag on test goroutine")
	}
	if !strings.HasPrefix(tag, "(") || !strings.HasSuffix(tag, ") ") {
		t.Errorf("tag %q does not match \"(<hex>) \"", tag)
	}
	hex := strings.TrimSuffix(strings.TrimPrefix(tag, "("), ") ")
	if hex == "" {
		t.Error("empty hash inside tag")
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("non-hex character %q in tag %q", c, tag)
		}
	}
}

func TestThreadTag_StablePerGoroutine(t *testing.T) {
	if ThreadTag() != ThreadTag() {
		t.Error("ThreadTag() not stable within one goroutine")
	}
}
