package types

// ID identifies stations, customers, and payment records.
type ID string
