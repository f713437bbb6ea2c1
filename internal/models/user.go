package models

// User is the public part of a registered account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Credential is the stored account record. The password is kept as entered.
type Credential struct {
	User
	Password string `json:"password"`
}

// Session is the single active login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
