package models

// Session is the durable logged-in flag.
type Session struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}
