package model

import "fmt"

// Account is a registered user.
//
// Password always holds the plain text the client sent; only its bcrypt
// hash is stored.
type Account struct {
	AccountID int    `json:"account_id" db:"account_id"`
	Username  string `json:"username" db:"username" validate:"min=1"`
	Password  string `json:"password" db:"password" validate:"min=4"`
}

// Validate enforces the registration rules: a non-empty username and a
// password of at least four characters.
func (a Account) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}

	return nil
}
