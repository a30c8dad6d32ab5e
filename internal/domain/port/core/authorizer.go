package core

// Authorizer gates every mutating back-office operation behind an admin
// capability check. The domain never sees the mechanism (credentials, JWT),
// only that a caller token maps to an admin identity.
type Authorizer interface {
	// Login validates admin credentials and issues a bearer token
	//
	// Possible errors:
	// - ErrInvalidCredentials: if the username/password pair is wrong
	Login(username, password string) (string, error)

	// Verify checks a bearer token and returns the admin identity it carries
	//
	// Possible errors:
	// - ErrInvalidToken: if the token is missing, malformed or expired
	Verify(token string) (string, error)
}
