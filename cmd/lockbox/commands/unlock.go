package commands

import (
	"lockbox/internal/domain"
)

// unlock derives the session key for this invocation from the stored
// login and the master password. Every process starts uninitialized, so
// any command that seals or opens a secret calls this first.
//
// A wrong master password is not detected here; it derives a different
// key and the subsequent open fails with a decryption error.
func unlock() error {
	if appCtx.Session.Active() {
		return nil
	}
	acct, ok, err := appCtx.Accounts.Current()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotLoggedIn
	}

	password := masterPassword
	if password == "" {
		if password, err = readSecret("Master password: "); err != nil {
			return err
		}
	}

	stop := startSpinner("Deriving encryption key...")
	err = appCtx.Session.Initialize(acct.Username, password, acct.Salt)
	stop()
	if err != nil {
		return err
	}
	logger.Debugf("session key derived for %s", acct.Username)
	return nil
}
