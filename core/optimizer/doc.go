// Package optimizer orchestrates the scheduling engine: it places fixed
// commitments, inserts breaks, and fills the remaining free intervals with
// flexible tasks ranked by priority under the energy budget.
//
// One Optimizer instance covers exactly one planning day. Instances own all
// mutable run state and must not be shared.
package optimizer
