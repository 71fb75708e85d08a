package oauth

import (
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"golang.org/x/oauth2/google"
)

// twitterEndpoint is Twitter's OAuth2 (API v2) endpoint pair; the
// x/oauth2 endpoints package does not ship one.
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:  "https://twitter.com/i/oauth2/authorize",
	TokenURL: "https://api.twitter.com/2/oauth2/token",
}

func NewGoogle(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "google",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		decode:      decodeFlatProfile("google"),
	}
}

func NewFacebook(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "facebook",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     endpoints.Facebook,
		},
		UserInfoURL: "https://graph.facebook.com/me?fields=name,email",
		decode:      decodeFlatProfile("facebook"),
	}
}

func NewLinkedIn(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "linkedin",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     endpoints.LinkedIn,
		},
		UserInfoURL: "https://api.linkedin.com/v2/userinfo",
		decode:      decodeFlatProfile("linkedin"),
	}
}

func NewTwitter(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "twitter",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"users.read", "tweet.read"},
			Endpoint:     twitterEndpoint,
		},
		UserInfoURL: "https://api.twitter.com/2/users/me?user.fields=confirmed_email",
		decode:      decodeTwitterProfile,
	}
}

// decodeFlatProfile handles providers whose userinfo document carries
// name and email at the top level (Google, Facebook and LinkedIn OIDC
// all do). A missing email yields an empty Emails list, not an error;
// the auth flow decides what that means.
func decodeFlatProfile(provider string) func(data []byte) (*Profile, error) {
	return func(data []byte) (*Profile, error) {
		var raw struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s userinfo decode failed: %w", provider, err)
		}

		profile := &Profile{Name: raw.Name}
		if raw.Email != "" {
			profile.Emails = append(profile.Emails, raw.Email)
		}
		return profile, nil
	}
}

func decodeTwitterProfile(data []byte) (*Profile, error) {
	var raw struct {
		Data struct {
			Name           string `json:"name"`
			ConfirmedEmail string `json:"confirmed_email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("twitter userinfo decode failed: %w", err)
	}

	profile := &Profile{Name: raw.Data.Name}
	if raw.Data.ConfirmedEmail != "" {
		profile.Emails = append(profile.Emails, raw.Data.ConfirmedEmail)
	}
	return profile, nil
}
