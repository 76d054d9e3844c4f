package domain

import (
	"fmt"
	"strings"
)

const (
	// Channel and partner tags stamped on every account structure record.
	AccountChannel = "retargeting"
	AccountPartner = "criteo"
)

// Account identifies one Criteo tenant. Built once from configuration,
// read-only afterwards.
type Account struct {
	Name     string
	Username string
	Password string
	Token    string

	Platform       string
	NormalizedName string
	Channel        string
	Partner        string
}

// NewAccount derives the platform and normalized name from the display name,
// e.g. "MY Account DE" -> platform "my.account.de", normalized "my_account_de".
func NewAccount(name, username, password, token string) Account {
	lower := strings.ToLower(name)

	return Account{
		Name:           name,
		Username:       username,
		Password:       password,
		Token:          token,
		Platform:       strings.ReplaceAll(lower, " ", "."),
		NormalizedName: strings.ReplaceAll(lower, " ", "_"),
		Channel:        AccountChannel,
		Partner:        AccountPartner,
	}
}

func (a Account) String() string {
	return fmt.Sprintf("CriteoAccount: %s", a.Name)
}
