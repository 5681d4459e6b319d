package model

// State is the full serialized application state: settings, the complete
// transaction history, and the archive of closed periods. It round-trips
// losslessly through JSON (timestamps as RFC3339, decimals as strings) and
// backs the export/import persistence boundary.
type State struct {
	Settings     Settings       `json:"settings"`
	Transactions []Transaction  `json:"transactions"`
	Records      []PeriodRecord `json:"records"`
}
