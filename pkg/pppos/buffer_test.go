package pppos

import "testing"

func TestChainAppendRawGrowsAcrossSegments(t *testing.T) {
	c := &chain{}
	n := segmentSize*2 + 5
	for i := 0; i < n; i++ {
		if !c.appendRaw(byte(i), newSegment) {
			t.Fatalf("appendRaw failed at byte %d", i)
		}
	}
	if c.totLen != n {
		t.Fatalf("totLen = %d, want %d", c.totLen, n)
	}
	got := c.bytes()
	if len(got) != n {
		t.Fatalf("bytes() length = %d, want %d", len(got), n)
	}
	for i, b := range got {
		if b != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, b, byte(i))
		}
	}
	c.release()
}

func TestChainAppendEscapedNeverSplitsPair(t *testing.T) {
	var am accm
	am.set(0x11)

	c := &chain{}
	// Force the tail to have exactly one free byte right before an octet
	// that must be escaped, so the 2-byte reservation in appendEscaped is
	// actually exercised.
	for i := 0; i < segmentSize-1; i++ {
		if !c.appendRaw(0x00, newSegment) {
			t.Fatalf("appendRaw failed priming segment")
		}
	}
	if c.tail.free() != 1 {
		t.Fatalf("tail.free() = %d, want 1", c.tail.free())
	}

	if !c.appendEscaped(0x11, &am, newSegment) {
		t.Fatalf("appendEscaped failed")
	}

	got := c.bytes()
	if got[len(got)-2] != escape || got[len(got)-1] != 0x11^trans {
		t.Fatalf("escape pair split across segments: tail = % x", got[len(got)-2:])
	}
	c.release()
}

func TestChainAllocFailureLeavesChainUnmodified(t *testing.T) {
	c := &chain{}
	failing := func() *segment { return nil }

	if c.appendRaw(0x01, failing) {
		t.Fatal("appendRaw should fail with a nil-returning allocator")
	}
	if c.head != nil || c.totLen != 0 {
		t.Fatalf("chain should be untouched on alloc failure, got head=%v totLen=%d", c.head, c.totLen)
	}
}

func TestChainTrimTrailing(t *testing.T) {
	c := &chain{}
	for _, b := range []byte{1, 2, 3, 4, 5} {
		c.appendRaw(b, newSegment)
	}
	c.trimTrailing(2)
	if got := c.bytes(); !bytesEqual(got, []byte{1, 2, 3}) {
		t.Fatalf("bytes() = % x, want 01 02 03", got)
	}
	c.release()
}

func TestChainTrimTrailingAcrossSegmentBoundary(t *testing.T) {
	c := &chain{}
	n := segmentSize + 1
	for i := 0; i < n; i++ {
		c.appendRaw(byte(i), newSegment)
	}
	c.trimTrailing(2)
	if c.totLen != n-2 {
		t.Fatalf("totLen = %d, want %d", c.totLen, n-2)
	}
	if c.tail == nil || c.tail.len != segmentSize-1 {
		t.Fatalf("tail.len = %d, want %d", c.tail.len, segmentSize-1)
	}
	c.release()
}
