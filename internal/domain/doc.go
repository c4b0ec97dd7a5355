// Package domain defines the document model, error kinds and contracts
// shared across securedb. It contains plain types and interfaces only.
package domain
