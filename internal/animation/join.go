// Package animation sequences cup animations through completion callbacks.
package animation

// Join returns a completion callback to hand to each of n concurrently
// started animations. then runs exactly once, on the call that brings the
// count to n. With n <= 0 then runs immediately and the returned callback
// does nothing.
func Join(n int, then func()) func() {
	if n <= 0 {
		if then != nil {
			then()
		}
		return func() {}
	}
	completed := 0
	return func() {
		completed++
		if completed == n && then != nil {
			then()
		}
	}
}
