package dicttrie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegmentAllIndependentBuffers(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)

	inputs := [][]uint16{
		{1, 2, 3},
		{1, 2},
		{3},
		{1, 2, 1, 2},
	}
	want := [][]int{
		{2},
		{2},
		nil,
		{2, 4},
	}

	got, err := SegmentAll(blob, inputs)
	if err != nil {
		t.Fatalf("SegmentAll: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SegmentAll mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentAllEmpty(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)
	got, err := SegmentAll(blob, nil)
	if err != nil {
		t.Fatalf("SegmentAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("SegmentAll(nil) = %v, want empty", got)
	}
}
