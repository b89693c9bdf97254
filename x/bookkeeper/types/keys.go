package types

const (
	// ModuleName defines the module name
	ModuleName = "bookkeeper"

	// SupplyAccount is the counter-account of mints and burns in the audit log.
	SupplyAccount = "supply"
)
