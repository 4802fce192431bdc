package models

// User is an account record. The phone number doubles as the unique
// identifier and as the partition key for all owned collections, so ID and
// Phone must always be equal; changing the phone number is an identifier
// migration handled by the auth manager.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password"` // plain text, shown back to the user in the profile view
	CreatedAt string `json:"createdAt"` // RFC3339 timestamp
}
