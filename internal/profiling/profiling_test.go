package profiling_test

import (
	"strings"
	"testing"
	"time"

	"chromakey/internal/profiling"
)

func TestTrackAndReset(t *testing.T) {
	profiling.ResetFrame()
	stop := profiling.Track("renderer.Render")
	time.Sleep(time.Millisecond)
	stop()

	snap := profiling.Snapshot()
	if snap["renderer.Render"] < time.Millisecond {
		t.Errorf("tracked %v, want at least 1ms", snap["renderer.Render"])
	}

	profiling.ResetFrame()
	if n := len(profiling.Snapshot()); n != 0 {
		t.Errorf("%d entries left after ResetFrame", n)
	}
}

func TestTopNOrdersLargestFirst(t *testing.T) {
	profiling.ResetFrame()
	defer profiling.ResetFrame()

	slow := profiling.Track("slow")
	fast := profiling.Track("fast")
	fast()
	time.Sleep(2 * time.Millisecond)
	slow()

	top := profiling.TopN(1, 1)
	if !strings.HasPrefix(top, "slow:") || strings.Contains(top, "fast") {
		t.Errorf("TopN(1) = %q, want only the slow section", top)
	}
	if all := profiling.TopN(5, 1); !strings.Contains(all, "fast:") {
		t.Errorf("TopN(5) = %q, want both sections", all)
	}
}
