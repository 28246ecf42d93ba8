package models

// AccountTransaction is an account service's record of one applied
// withdraw or deposit leg.
type AccountTransaction struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
