package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/constants"
)

type AccountCmd struct {
	Create  AccountCreateCmd  `cmd:"" help:"Create an account."`
	Delete  AccountDeleteCmd  `cmd:"" help:"Delete an account with all of its habits."`
	Profile AccountProfileCmd `cmd:"" help:"Show an account and its completion counts."`
}

type AccountCreateCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `help:"Password (prompted for when omitted)." env:"HABITUAL_PASSWORD"`
	Email    string `help:"Optional email address."`
}

func (c *AccountCreateCmd) Run(ctx *Context) error {
	password := c.Password
	if password == "" {
		var err error
		if password, err = PromptPassword("Choose a password"); err != nil {
			return err
		}
		again, err := PromptPassword("Repeat the password")
		if err != nil {
			return err
		}
		if again != password {
			return fmt.Errorf("passwords do not match")
		}
	}

	id, err := ctx.Tracker.Accounts.CreateAccount(ctx.Background(), c.Username, password, c.Email)
	if err != nil {
		return err
	}

	fmt.Println(Success(fmt.Sprintf("Account %q created (id %d)", c.Username, id)))
	return nil
}

type AccountDeleteCmd struct {
	UserFlags `embed:""`
	Yes       bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *AccountDeleteCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := Confirm(fmt.Sprintf("Delete account %q and all of its habits?", user.Username))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.Accounts.DeleteAccount(ctx.Background(), user.ID); err != nil {
		return err
	}
	fmt.Println(Success(fmt.Sprintf("Account %q deleted", user.Username)))
	return nil
}

type AccountProfileCmd struct {
	UserFlags `embed:""`
}

func (c *AccountProfileCmd) Run(ctx *Context) error {
	user, err := c.Login(ctx)
	if err != nil {
		return err
	}

	profile, err := ctx.Tracker.Accounts.Profile(ctx.Background(), user.ID)
	if err != nil {
		return err
	}

	fmt.Println(HeaderStyle.Render("Profile"))
	fmt.Printf("Username: %s\n", profile.Username)
	if profile.Email != "" {
		fmt.Printf("Email:    %s\n", profile.Email)
	}
	fmt.Printf("Joined:   %s\n", profile.CreatedAt.Local().Format(constants.DateFormat))
	fmt.Println()

	if len(profile.Habits) == 0 {
		fmt.Println("No completed habits yet.")
		return nil
	}
	for _, h := range profile.Habits {
		fmt.Printf("  %-30s %d\n", h.HabitName, h.Count)
	}
	return nil
}
