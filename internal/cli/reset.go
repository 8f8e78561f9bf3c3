package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/vitalis/internal/db"
	"github.com/terraincognita07/vitalis/internal/security"
	"github.com/terraincognita07/vitalis/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

type ResetPasswordOptions struct {
	// Prompt reads the new password from In without echo instead of
	// generating a temporary one.
	Prompt bool
	In     *os.File
	Out    io.Writer
}

func RunResetPasswordCommand(dbPath string, email string, options ResetPasswordOptions) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return fmt.Errorf("invalid email address %q", email)
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	password, mustChange, err := resolveNewPassword(options, out)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, string(passwordHash), mustChange); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	if mustChange {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
		fmt.Fprintln(out, "User must change password on next login.")
	}
	return nil
}

func resolveNewPassword(options ResetPasswordOptions, out io.Writer) (string, bool, error) {
	if !options.Prompt {
		password, err := generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return password, true, nil
	}

	password, err := promptPassword(options.In, out, "New password: ")
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", false, errors.New("password must be at least 8 characters and mix upper case, lower case and digits")
	}
	return password, false, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	for {
		password, err := security.RandomString(length, security.PasswordAlphabet)
		if err != nil {
			return "", err
		}
		// Temporary passwords still have to pass the login policy.
		if services.ValidatePasswordStrength(password) == nil {
			return password, nil
		}
	}
}
