// Package services implements the driving port interfaces.
// Services contain the core ranking logic and orchestrate
// calls to driven ports (adapters).
//
// The rule scorers (monetization, brand safety, ad verticals) and the
// ranker are pure functions over an immutable catalog. Services are pure
// Go with no CGO dependencies.
package services
