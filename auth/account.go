package auth

import (
	"fmt"
	"log"
	"strings"

	"connectify-cli/shared"
	"connectify-cli/term"

	"github.com/fatih/color"
)

func PromptSignIn() error {
	email, err := term.GetRequiredUserStringInput("Your email:")

	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Your password:")

	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	return SignIn(email, password)
}

func PromptSignUp() error {
	name, err := term.GetRequiredUserStringInput("Your name:")

	if err != nil {
		return fmt.Errorf("error prompting name: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Your email:")

	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Your password:")

	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	return SignUp(name, email, password)
}

// SignIn establishes a session and persists the token. The follow-up profile
// fetch is best-effort: its failure is logged but never rolls back the
// persisted session.
func SignIn(email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignIn(shared.SignInRequest{
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Msg != "" {
			return fmt.Errorf("%s", apiErr.Msg)
		}
		return fmt.Errorf("sign in failed")
	}

	if res.Token == "" {
		return fmt.Errorf("sign in response did not include a token")
	}

	auth := &shared.ClientAuth{
		Token: res.Token,
		Email: email,
	}

	if res.User != nil {
		auth.UserId = res.User.ID()
		auth.UserName = res.User.DisplayName()
	}

	err := setAuth(auth)

	if err != nil {
		return fmt.Errorf("error persisting session: %v", err)
	}

	// fetch the profile now so other views have synchronous access
	term.StartSpinner("")
	user, apiErr := apiClient.GetMe()
	term.StopSpinner()

	if apiErr != nil {
		log.Printf("profile fetch after sign in failed: %s", apiErr.Msg)
	} else if user != nil {
		if err := CacheUser(user); err != nil {
			log.Printf("error caching user: %v", err)
		}
		Current.UserId = user.ID()
		Current.UserName = user.DisplayName()
		if err := writeCurrentAuth(); err != nil {
			log.Printf("error updating auth: %v", err)
		}
	}

	name := Current.UserName
	if name == "" {
		name = Current.Email
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(name))
	fmt.Println()
	term.PrintCmds("", "feed", "post")

	return nil
}

// SignUp creates an account. Some backend versions return a session token
// straight from signup; when one is present the session is persisted
// immediately, otherwise the user is pointed at sign-in.
func SignUp(name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return fmt.Errorf("all fields are required")
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignUp(shared.SignUpRequest{
		UserName: name,
		Name:     name,
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Msg != "" {
			return fmt.Errorf("%s", apiErr.Msg)
		}
		return fmt.Errorf("signup failed, please try again")
	}

	msg := res.Message
	if msg == "" {
		msg = "Account created successfully!"
	}
	fmt.Println("✅ " + msg)
	fmt.Println()

	if res.Token != "" {
		auth := &shared.ClientAuth{
			Token: res.Token,
			Email: email,
		}
		if res.User != nil {
			auth.UserId = res.User.ID()
			auth.UserName = res.User.DisplayName()
		}

		if err := setAuth(auth); err != nil {
			return fmt.Errorf("error persisting session: %v", err)
		}

		if res.User != nil {
			if err := CacheUser(res.User); err != nil {
				log.Printf("error caching user: %v", err)
			}
		}

		term.PrintCmds("", "feed", "post")
		return nil
	}

	term.PrintCmds("", "sign-in")

	return nil
}
