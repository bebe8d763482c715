// Package errors provides structured, actionable errors for the hook runtime.
//
// Usage errors (calling a hook outside a render, changing hook order between
// renders, passing an invalid context token) are programmer mistakes. They
// are raised with panic at the call site carrying a *HookError so that the
// stable code survives recover and formatting.
//
// # Error Categories
//
//   - usage: hook misuse detected at the call site
//   - effect: effect setup or teardown failures (logged, never propagated)
//   - config: configuration file problems
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail("expected Memo at slot 3, got State").
//	    WithSuggestion("Call hooks unconditionally at the top of the component")
//
//	fmt.Println(err.Format())
//	// ERROR E002: Hook order changed between renders
//	//
//	//   expected Memo at slot 3, got State
//	//
//	//   Hint: Call hooks unconditionally at the top of the component
package errors
