// Package model defines shared data types used across the collection pipeline.
//
// Conventions:
//   - Prices: *float64, nil when the provider omitted the observation
//   - Trading dates: time.Time truncated to midnight UTC (date-only precision)
//   - Collection timestamps: "2006-01-02 15:04:05" wall-clock strings
package model
