// Package viz renders a live terminal view of an adaptive integration:
// the leading state component, the step-size trace, and accept/reject
// counters, updated as the run advances.
package viz
