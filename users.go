package late

import "context"

// User is a member of the account's team.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UsersService reads team members.
type UsersService struct {
	client *Client
}

// List returns the team members.
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	out, err := doGet[struct {
		Users []User `json:"users"`
	}](ctx, s.client, newCall("users.list", "/v1/users", "/v1/users"))
	if err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Get returns a team member.
func (s *UsersService) Get(ctx context.Context, userID string) (*User, error) {
	const op = "users.get"
	if err := checkID(op, "userId", userID); err != nil {
		return nil, err
	}
	out, err := doGet[struct {
		User User `json:"user"`
	}](ctx, s.client, newCall(op, "/v1/users/{userId}", "/v1/users/"+seg(userID)))
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}
