package backend

import (
	"context"
	"net/http"

	authdto "mindcare-client/internal/auth/dto"
)

// AuthClient talks to the authentication service.
type AuthClient struct {
	rest *restClient
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{rest: newRESTClient(baseURL)}
}

// Register creates an account. The service answers with plain text on
// success, so the body is discarded.
func (c *AuthClient) Register(ctx context.Context, req *authdto.RegisterRequest) error {
	return c.rest.doJSON(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *AuthClient) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	var resp authdto.LoginResponse
	if err := c.rest.doJSON(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
