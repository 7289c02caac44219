package domain

// User is a registered customer. Password holds the hex-encoded digest of the
// password, never the plaintext. CreatedAt is stored as an ISO-8601 string so
// the on-disk document stays readable as-is.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}
