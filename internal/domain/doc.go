// Package domain defines the result model and the decoder contracts shared across the app.
// It contains plain types and interfaces only.
package domain
