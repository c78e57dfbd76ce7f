package models

// AllModels returns all model structs for table creation
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []Entity {
	return []Entity{
		// 1. Independent tables (no foreign keys)
		&Supplier{},
		&Order{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Supplier

		// 3. Detail tables
		&OrderItem{}, // depends on: Order, Product
	}
}

// StrPtr is a helper for optional string columns
func StrPtr(s string) *string {
	return &s
}
