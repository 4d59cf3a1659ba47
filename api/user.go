package api

import (
	"context"
	"net/http"

	"github.com/louisbranch/retroboard/user"
)

// CurrentUser probes the server for the session's user.
//
// A non-200 status means "no session" and returns nil without error; only
// transport failures surface, so callers can distinguish "signed out" from
// "server unreachable".
func (c *Client) CurrentUser(ctx context.Context) (*user.User, error) {
	var current *user.User
	err := c.do(ctx, "fetch current user", http.MethodGet, "/user", nil, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return nil
		}
		var decoded user.User
		if err := decodeJSON(resp, "fetch current user", &decoded); err != nil {
			return err
		}
		current = &decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// UpdateUser replaces the user record wholesale, credentials included.
// Callers own sending a complete credential set; ceremony and settings flows
// build it from the session snapshot.
func (c *Client) UpdateUser(ctx context.Context, record user.User) (user.User, error) {
	var updated user.User
	err := c.do(ctx, "update user", http.MethodPut, "/user/", record, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return rejected("update user", resp.StatusCode)
		}
		return decodeJSON(resp, "update user", &updated)
	})
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}

// UpdateProfile updates presentation fields while preserving the server's
// credential set. It replaces the historical combined-update flag with an
// explicit read-then-write: fetch the current record, graft its credentials
// onto the update, then send it.
func (c *Client) UpdateProfile(ctx context.Context, record user.User) (user.User, error) {
	current, err := c.CurrentUser(ctx)
	if err != nil {
		return user.User{}, err
	}
	if current != nil {
		record.Credentials = current.Credentials
	}
	return c.UpdateUser(ctx, record)
}
