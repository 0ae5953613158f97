package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/artpar/artistdesk/adapters/hasher"
	"github.com/artpar/artistdesk/adapters/idgen"
	"github.com/artpar/artistdesk/adapters/sqlite"
	"github.com/artpar/artistdesk/config"
	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
	Long: `Manage ArtistDesk admin accounts.

Super admins can manage users, artists and songs from the portal.
The first admin account must be created from the command line.

Examples:
  artistdesk admin create-super-admin
  artistdesk admin create-default-admin
  artistdesk admin list
  artistdesk admin reset-password admin@admin.com
  artistdesk admin delete admin@admin.com`,
}

var adminCreateCmd = &cobra.Command{
	Use:   "create-super-admin",
	Short: "Create a super admin account interactively",
	RunE:  runAdminCreate,
}

var adminCreateDefaultCmd = &cobra.Command{
	Use:   "create-default-admin",
	Short: "Create the default admin account (admin@admin.com)",
	RunE:  runAdminCreateDefault,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE:  runAdminList,
}

var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset an account password",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminResetPassword,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDelete,
}

func init() {
	rootCmd.AddCommand(adminCmd)

	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminCreateDefaultCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminResetPasswordCmd)
	adminCmd.AddCommand(adminDeleteCmd)
}

// promptOrder drives the interactive wizard. Passwords are collected
// separately with hidden input.
var promptOrder = []struct {
	field string
	label string
}{
	{"first_name", "First name"},
	{"last_name", "Last name"},
	{"email", "Email"},
	{"phone", "Phone"},
	{"dob", "Date of birth (YYYY-MM-DD)"},
	{"gender", "Gender (m/f/o)"},
	{"address", "Address"},
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	userStore := sqlite.NewUserStore(db)
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println("Create a super admin account.")
	fmt.Println()

	data := map[string]string{"role": string(auth.RoleSuperAdmin)}
	for _, p := range promptOrder {
		for {
			fmt.Printf("? %s: ", p.label)
			input, _ := reader.ReadString('\n')
			data[p.field] = strings.TrimSpace(input)

			msg, err := auth.ValidateRegistrationField(p.field, data)
			if err != nil {
				return err
			}
			if msg != "" {
				fmt.Println("  " + msg)
				continue
			}

			if p.field == "email" {
				email := strings.ToLower(data["email"])
				if _, err := userStore.GetByEmail(ctx, email); err == nil {
					fmt.Println("  Email already exists.")
					continue
				}
				data["email"] = email
			}
			break
		}
	}

	for {
		password, err := promptPassword("? Password: ")
		if err != nil {
			return err
		}
		data["password"] = password

		msg, err := auth.ValidateRegistrationField("password", data)
		if err != nil {
			return err
		}
		if msg != "" {
			fmt.Println("  " + msg)
			continue
		}

		confirmPw, err := promptPassword("? Confirm password: ")
		if err != nil {
			return err
		}
		data["c_password"] = confirmPw

		msg, err = auth.ValidateRegistrationField("c_password", data)
		if err != nil {
			return err
		}
		if msg != "" {
			fmt.Println("  " + msg)
			continue
		}
		break
	}

	user, err := buildUser(data, auth.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if err := userStore.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Println()
	fmt.Printf("%s Created super admin: %s\n", checkMark, user.Email)
	fmt.Printf("   ID: %s\n", user.ID)
	return nil
}

func runAdminCreateDefault(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	userStore := sqlite.NewUserStore(db)
	ctx := context.Background()

	const defaultEmail = "admin@admin.com"
	if _, err := userStore.GetByEmail(ctx, defaultEmail); err == nil {
		fmt.Printf("Account %s already exists, nothing to do.\n", defaultEmail)
		return nil
	}

	user, err := buildUser(map[string]string{
		"first_name": "Default",
		"last_name":  "Admin",
		"email":      defaultEmail,
		"password":   "admin123",
		"phone":      "0000000000",
		"dob":        "1990-01-01",
		"gender":     "o",
		"address":    "Not set",
	}, auth.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if err := userStore.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Printf("%s Created default admin\n", checkMark)
	fmt.Printf("   Email:    %s\n", defaultEmail)
	fmt.Println("   Password: admin123")
	fmt.Println()
	fmt.Println("Change this password after first login.")
	return nil
}

func runAdminList(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	userStore := sqlite.NewUserStore(db)
	users, err := userStore.List(context.Background(), 1000, 0)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No accounts found.")
		fmt.Println()
		fmt.Println("Create one with: artistdesk admin create-super-admin")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
	fmt.Fprintln(w, "--\t----\t-----\t----\t-------")

	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.FullName(), u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	}

	w.Flush()
	return nil
}

func runAdminResetPassword(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	userStore := sqlite.NewUserStore(db)
	ctx := context.Background()

	user, err := userStore.GetByEmail(ctx, strings.ToLower(args[0]))
	if err != nil {
		return fmt.Errorf("account not found: %s", args[0])
	}

	var password string
	for {
		password, err = promptPassword("? New password: ")
		if err != nil {
			return err
		}

		msg, err := auth.ValidateRegistrationField("password", map[string]string{"password": password})
		if err != nil {
			return err
		}
		if msg != "" {
			fmt.Println("  " + msg)
			continue
		}
		break
	}

	hash, err := hasher.NewBcrypt(0).Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := userStore.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Force re-login everywhere
	sessionStore := sqlite.NewSessionStore(db)
	if err := sessionStore.DeleteByUser(ctx, user.ID); err != nil {
		fmt.Printf("warning: failed to clear sessions: %v\n", err)
	}

	fmt.Printf("%s Password updated for %s\n", checkMark, user.Email)
	return nil
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	userStore := sqlite.NewUserStore(db)
	ctx := context.Background()

	user, err := userStore.GetByEmail(ctx, strings.ToLower(args[0]))
	if err != nil {
		return fmt.Errorf("account not found: %s", args[0])
	}

	if !confirm(fmt.Sprintf("Delete account %s?", user.Email)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := userStore.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	sessionStore := sqlite.NewSessionStore(db)
	if err := sessionStore.DeleteByUser(ctx, user.ID); err != nil {
		fmt.Printf("warning: failed to clear sessions: %v\n", err)
	}

	fmt.Printf("%s Deleted account: %s\n", checkMark, user.Email)
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func buildUser(data map[string]string, role auth.Role) (ports.User, error) {
	hash, err := hasher.NewBcrypt(0).Hash(data["password"])
	if err != nil {
		return ports.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return ports.User{
		ID:           idgen.NewPrefixed("usr_").New(),
		FirstName:    strings.TrimSpace(data["first_name"]),
		LastName:     strings.TrimSpace(data["last_name"]),
		Email:        strings.ToLower(strings.TrimSpace(data["email"])),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(data["phone"]),
		DOB:          strings.TrimSpace(data["dob"]),
		Gender:       strings.TrimSpace(data["gender"]),
		Address:      strings.TrimSpace(data["address"]),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func openDatabase() (*sqlite.DB, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The CLI may run before the first serve, so make sure tables exist.
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func confirm(message string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("? %s [y/N]: ", message)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
