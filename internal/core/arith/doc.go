// Package arith generates addition and subtraction practice problems under
// numeric constraints and checks answers against them.
//
// # Generation
//
// Problems are produced by bounded rejection sampling. Sample draws operands
// in an inclusive range until one is divisible by the configured multiple;
// Generate composes two operands, orders them so the larger comes first and
// accepts the pair only when the operator invariant holds:
//
//   - OperatorAdd: a+b <= max, a != 0 and b != 0.
//   - OperatorSubtract: a-b >= 0, which ordering guarantees.
//
// Every loop is capped by an attempt budget. A budget of zero or less fails
// immediately with an *AttemptsExhaustedError and performs no draws.
//
// # Randomness
//
// All draws go through a Source. Callers pass a seeded *rand.Rand for
// reproducible runs or DefaultSource for the process-wide generator. A Source
// is not safe for concurrent use unless its implementation says so.
package arith
