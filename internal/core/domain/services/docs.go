// Package services contains stateless domain services that implement
// business logic spanning value objects without belonging to a single
// aggregate. PricingResolver turns (price points, tier, adjustment) tuples
// into the unit prices order lines are built from.
package services
