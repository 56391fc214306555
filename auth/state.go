package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"connectify-cli/fs"
	"connectify-cli/shared"
)

var Current *shared.ClientAuth

func setAuth(auth *shared.ClientAuth) error {
	Current = auth
	return writeCurrentAuth()
}

func writeCurrentAuth() error {
	if Current == nil {
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)

	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	err = os.WriteFile(fs.HomeAuthPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

func loadAuth() (*shared.ClientAuth, error) {
	bytes, err := os.ReadFile(fs.HomeAuthPath)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth shared.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	return &auth, nil
}

// CacheUser persists the profile for synchronous access by other views.
func CacheUser(user *shared.User) error {
	bytes, err := json.Marshal(user)

	if err != nil {
		return fmt.Errorf("error marshalling user: %v", err)
	}

	err = os.WriteFile(fs.HomeUserPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing user: %v", err)
	}

	return nil
}

func CachedUser() *shared.User {
	bytes, err := os.ReadFile(fs.HomeUserPath)

	if err != nil {
		return nil
	}

	var user shared.User
	if err := json.Unmarshal(bytes, &user); err != nil {
		return nil
	}

	return &user
}
