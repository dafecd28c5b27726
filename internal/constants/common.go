package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Tax classes
	DefaultTaxClassTitle  = "Default"
	ShippingTaxClassTitle = "Shipping"

	// Address used for jurisdiction selection
	ShipAddress = "ship"
	BillAddress = "bill"

	// Prefix for shipping entries when receipt details are kept separate
	ShippingDetailPrefix = "Shipping "
)
