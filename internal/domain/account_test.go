package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name               string
		accountName        string
		wantPlatform       string
		wantNormalizedName string
	}{
		{
			name:               "multi word name is lowercased and separated",
			accountName:        "MY Account DE",
			wantPlatform:       "my.account.de",
			wantNormalizedName: "my_account_de",
		},
		{
			name:               "single word name",
			accountName:        "Webshop",
			wantPlatform:       "webshop",
			wantNormalizedName: "webshop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount(tt.accountName, "user", "pass", "token")

			assert.Equal(t, tt.accountName, account.Name)
			assert.Equal(t, tt.wantPlatform, account.Platform)
			assert.Equal(t, tt.wantNormalizedName, account.NormalizedName)
			assert.Equal(t, AccountChannel, account.Channel)
			assert.Equal(t, AccountPartner, account.Partner)
		})
	}
}

func TestAccountString(t *testing.T) {
	account := NewAccount("MY Account DE", "user", "pass", "token")
	assert.Equal(t, "CriteoAccount: MY Account DE", account.String())
}
