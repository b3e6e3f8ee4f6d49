package app

import (
	"net/http"
	"os"

	"lockbox/internal/api"
	"lockbox/internal/domain"
	accountsvc "lockbox/internal/services/account"
	sessionsvc "lockbox/internal/services/session"
	vaultsvc "lockbox/internal/services/vault"
	"lockbox/internal/store"
)

// App bundles the wired services for the CLI.
type App struct {
	Session  *sessionsvc.Service
	Codec    domain.SecretCodec
	Accounts domain.AccountService
	Vault    domain.VaultService
	Client   domain.Client
	State    domain.StateStore
}

// New constructs the dependency graph from cfg. The home directory is
// created if missing.
func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	stateStore := store.NewStateFileStore(cfg.Home)
	cacheStore := store.NewCredentialCacheStore(cfg.Home)

	client := api.New(cfg.Server.URL, &http.Client{Timeout: cfg.HTTP.Timeout})

	sess := sessionsvc.New()
	codec := sessionsvc.NewCodec(sess)

	accounts := accountsvc.New(client, sess, stateStore)
	vault := vaultsvc.New(client, codec, stateStore, cacheStore)

	return &App{
		Session:  sess,
		Codec:    codec,
		Accounts: accounts,
		Vault:    vault,
		Client:   client,
		State:    stateStore,
	}, nil
}
