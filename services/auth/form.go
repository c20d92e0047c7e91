package auth

import (
	"context"
	"errors"
)

// Form is the state of the login form.
type Form struct {
	Username string
	Password string
	Error    string
}

// Submit tries to log in with the form contents. On rejected credentials the
// inputs are cleared; on a transport failure they are kept for a retry.
func (f *Form) Submit(ctx context.Context, s *Service) error {
	f.Error = ""
	err := s.Login(ctx, Credentials{Username: f.Username, Password: f.Password})
	if err == nil {
		return nil
	}
	f.Error = Message(err)
	if errors.Is(err, ErrWrongCredentials) {
		f.Username = ""
		f.Password = ""
	}
	return err
}
