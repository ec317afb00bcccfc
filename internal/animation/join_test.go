package animation

import "testing"

func TestJoinFiresAfterCount(t *testing.T) {
	fired := 0
	done := Join(3, func() { fired++ })

	done()
	done()
	if fired != 0 {
		t.Fatalf("fired after 2 of 3 completions")
	}
	done()
	if fired != 1 {
		t.Fatalf("fired = %d after 3 completions, want 1", fired)
	}
	done()
	if fired != 1 {
		t.Errorf("extra completion refired the continuation")
	}
}

func TestJoinZeroRunsImmediately(t *testing.T) {
	fired := false
	done := Join(0, func() { fired = true })
	if !fired {
		t.Fatal("Join(0) did not run continuation")
	}
	done()
}

func TestJoinNilContinuation(t *testing.T) {
	done := Join(2, nil)
	done()
	done()
}
