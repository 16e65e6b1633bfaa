package mojangapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simplexservers/mojangapi/internal/reporting"
	"github.com/simplexservers/mojangapi/internal/strutils"
)

type profileResponse struct {
	UUID     string `json:"id"`
	Username string `json:"name"`
}

type nameChangeResponse struct {
	Username    string `json:"name"`
	ChangedToAt int64  `json:"changedToAt"`
}

// UUIDForUsername returns the account UUID for the given username.
//
// Returns ErrInvalidUsername without contacting the API if the username is
// not a possible Minecraft username, and ErrUsernameNotFound if no account
// has the username.
func (c *Client) UUIDForUsername(ctx context.Context, username string) (uuid.UUID, error) {
	if !strutils.IsValidUsername(username) {
		return uuid.UUID{}, fmt.Errorf("%w: '%s'", ErrInvalidUsername, username)
	}

	url := fmt.Sprintf("%s/profiles/minecraft", c.baseURL)

	var profiles []profileResponse
	found, err := c.postJSON(ctx, url, []string{username}, &profiles)
	if err != nil {
		err := fmt.Errorf("failed to request profile from mojang: %w", err)
		reporting.Report(ctx, err, map[string]string{"username": username})
		return uuid.UUID{}, err
	}

	id, err := uuidFromProfiles(found, profiles)
	if err != nil {
		if errors.Is(err, ErrUsernameNotFound) {
			// Pass through error but don't report
			return uuid.UUID{}, err
		}

		err := fmt.Errorf("failed to get uuid from mojang response: %w", err)
		reporting.Report(ctx, err, map[string]string{"username": username})
		return uuid.UUID{}, err
	}

	return id, nil
}

func uuidFromProfiles(found bool, profiles []profileResponse) (uuid.UUID, error) {
	if !found {
		return uuid.UUID{}, ErrUsernameNotFound
	}

	// The endpoint reports unknown usernames as an empty array as well as 204.
	if len(profiles) != 1 || profiles[0].UUID == "" {
		return uuid.UUID{}, ErrUsernameNotFound
	}

	normalized, err := strutils.NormalizeUUID(profiles[0].UUID)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: failed to normalize uuid: %w", ErrParse, err)
	}

	id, err := uuid.Parse(normalized)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return id, nil
}

// UsernameForUUID returns the current username of the account with the
// given UUID.
//
// The name history endpoint is used rather than the profile endpoint since
// the latter has a much stricter rate limit.
//
// Returns ErrUUIDNotFound if no account has the UUID.
func (c *Client) UsernameForUUID(ctx context.Context, id uuid.UUID) (string, error) {
	stripped, err := strutils.StripUUID(id.String())
	if err != nil {
		return "", fmt.Errorf("failed to strip uuid: %w", err)
	}

	url := fmt.Sprintf("%s/user/profiles/%s/names", c.baseURL, stripped)

	var history []nameChangeResponse
	found, err := c.getJSON(ctx, url, &history)
	if err != nil {
		err := fmt.Errorf("failed to request name history from mojang: %w", err)
		reporting.Report(ctx, err, map[string]string{"uuid": id.String()})
		return "", err
	}

	username, err := usernameFromNameHistory(found, history)
	if err != nil {
		if errors.Is(err, ErrUUIDNotFound) {
			// Pass through error but don't report
			return "", err
		}

		err := fmt.Errorf("failed to get username from mojang response: %w", err)
		reporting.Report(ctx, err, map[string]string{"uuid": id.String()})
		return "", err
	}

	return username, nil
}

func usernameFromNameHistory(found bool, history []nameChangeResponse) (string, error) {
	if !found {
		return "", ErrUUIDNotFound
	}

	// Records without changedToAt are the account's original name and sort
	// at 0. Ties keep the first record seen.
	latestUsername := ""
	latestChangedToAt := int64(-1)
	for _, change := range history {
		if change.ChangedToAt > latestChangedToAt {
			latestChangedToAt = change.ChangedToAt
			latestUsername = change.Username
		}
	}

	if latestUsername == "" {
		return "", ErrUUIDNotFound
	}

	return latestUsername, nil
}
