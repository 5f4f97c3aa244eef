// Package contract defines how behavioural expectations towards a supplier implementation are expressed.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is meant to create a new instance of the testing subject.
// A contract calls it once per test case to obtain the implementation under examination.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioural specification towards a supplier implementation.
//
// Any expectation a consumer makes about the behaviour of a used dependency
// should be defined in a contract, so different supplier implementations
// can be verified against the very same expectations.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioural requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects that matter for the consumer.
	Benchmark(*testing.B)
}
