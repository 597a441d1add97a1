package oauth

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

type (
	GoogleService interface {
		AuthURL(state string) string
		FetchProfile(ctx context.Context, code string) (domain.OAuthProfile, error)
	}

	googleService struct {
		config *oauth2.Config
	}
)

func NewGoogleService() GoogleService {
	return &googleService{
		config: &oauth2.Config{
			ClientID:     utils.GetConfig("GOOGLE_CLIENT_ID"),
			ClientSecret: utils.GetConfig("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  utils.GetConfig("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *googleService) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges the authorization code returned by the
// redirect and resolves the member's identity from the userinfo
// endpoint.
func (s *googleService) FetchProfile(ctx context.Context, code string) (domain.OAuthProfile, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := s.config.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.OAuthProfile{}, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var profile domain.OAuthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("failed to decode user info: %w", err)
	}

	return profile, nil
}
