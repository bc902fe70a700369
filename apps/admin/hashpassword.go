package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gmarcondes/prioriza/core/access"
)

// hashPassword validates the candidate credential against the password
// policy and prints a bcrypt hash ready for the access directory config.
func (cli *commandLine) hashPassword(uname, pwd string) error {
	cred := access.NewCredential{Username: uname, Password: pwd}
	if err := cred.Validate(cli.validate); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			for _, vErr := range vErrs {
				fmt.Println(vErr.Translate(cli.translator))
			}
			return errHelp
		}
		return err
	}

	entry := access.Entry{Username: cred.Username}
	if err := entry.SetPassword(cred.Password); err != nil {
		return err
	}

	fmt.Println("add to the access directory configuration:")
	fmt.Printf("  username: %s\n", entry.Username)
	fmt.Printf("  password_hash: %s\n", entry.PasswordHash)
	return nil
}
