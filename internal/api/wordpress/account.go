package wordpress

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"storefront-client/internal/api"
	"storefront-client/internal/apperr"
	"storefront-client/internal/auth"
	"storefront-client/internal/logger"
	"storefront-client/internal/storage"
)

type tokenResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"user_display_name"`
	Email       string `json:"user_email"`
}

// Login exchanges credentials for a bearer token at the JWT endpoint and
// persists it. The customer id lookup afterwards is best-effort: a failure
// leaves the user signed in without one.
func (c *Client) Login(ctx context.Context, creds api.Credentials) (api.Session, error) {
	ctx = logger.WithOp(ctx, "account.login")

	var tok tokenResponse
	if err := c.do(ctx, http.MethodPost, tokenPath, nil, creds, authNone, &tok); err != nil {
		return api.Session{}, err
	}
	if tok.Token == "" {
		return api.Session{}, apperr.New(apperr.KindUnauthorized, "wordpress.login", "token endpoint returned no token")
	}

	session := api.Session{
		Token:       tok.Token,
		DisplayName: tok.DisplayName,
		Email:       tok.Email,
	}
	session.CustomerID = c.lookupCustomerID(ctx, tok.Email)

	if err := c.sessions.Save(ctx, auth.Session{Token: session.Token, CustomerID: session.CustomerID}); err != nil {
		return api.Session{}, err
	}
	return session, nil
}

func (c *Client) lookupCustomerID(ctx context.Context, email string) string {
	if email == "" {
		return ""
	}

	var customers []struct {
		ID int `json:"id"`
	}
	values := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, wcPath+"/customers", values, nil, authBasic, &customers); err != nil {
		logger.FromCtx(ctx).Warn("customer id lookup failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return ""
	}
	if len(customers) == 0 {
		return ""
	}
	return strconv.Itoa(customers[0].ID)
}

// Register creates the customer with the consumer key pair, then signs in.
func (c *Client) Register(ctx context.Context, reg api.Registration) (api.Session, error) {
	ctx = logger.WithOp(ctx, "account.register")

	if reg.Email == "" || reg.Password == "" {
		return api.Session{}, apperr.New(apperr.KindValidation, "wordpress.register", "email and password are required")
	}

	if err := c.do(ctx, http.MethodPost, wcPath+"/customers", nil, reg, authBasic, nil); err != nil {
		return api.Session{}, err
	}

	username := reg.Username
	if username == "" {
		username = reg.Email
	}
	return c.Login(ctx, api.Credentials{Username: username, Password: reg.Password})
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.sessions.Clear(ctx)
}

func (c *Client) SetSessionToken(ctx context.Context, token string) error {
	return c.sessions.Save(ctx, auth.Session{Token: token})
}

func (c *Client) GetAccountDetails(ctx context.Context) (api.AccountDetails, error) {
	customerID, err := c.customerID(ctx)
	if err != nil {
		return api.AccountDetails{}, err
	}

	var details api.AccountDetails
	err = c.do(ctx, http.MethodGet, wcPath+"/customers/"+customerID, nil, nil, authBearer, &details)
	if err != nil {
		return api.AccountDetails{}, err
	}
	return details, nil
}

func (c *Client) UpdateAccountDetails(ctx context.Context, details api.AccountDetails) (api.AccountDetails, error) {
	customerID, err := c.customerID(ctx)
	if err != nil {
		return api.AccountDetails{}, err
	}

	var updated api.AccountDetails
	err = c.do(ctx, http.MethodPut, wcPath+"/customers/"+customerID, nil, details, authBearer, &updated)
	if err != nil {
		return api.AccountDetails{}, err
	}
	return updated, nil
}

func (c *Client) GetAddressBook(ctx context.Context) ([]api.Address, error) {
	customerID, err := c.customerID(ctx)
	if err != nil {
		return nil, err
	}

	var customer struct {
		Billing  api.Address `json:"billing"`
		Shipping api.Address `json:"shipping"`
	}
	err = c.do(ctx, http.MethodGet, wcPath+"/customers/"+customerID, nil, nil, authBearer, &customer)
	if err != nil {
		return nil, err
	}

	book := make([]api.Address, 0, 2)
	if customer.Billing.Address1 != "" {
		book = append(book, customer.Billing)
	}
	if customer.Shipping.Address1 != "" {
		book = append(book, customer.Shipping)
	}
	return book, nil
}

// UpdatePushToken registers the device token with the backend and keeps a
// local copy so re-registration survives restarts.
func (c *Client) UpdatePushToken(ctx context.Context, token string) error {
	if token == "" {
		return apperr.New(apperr.KindValidation, "wordpress.push", "push token is required")
	}

	if err := storage.SetJSON(ctx, c.store, storage.KeyPushToken, token); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, pushPath, nil, map[string]string{"token": token}, authBearer, nil)
}

func (c *Client) customerID(ctx context.Context) (string, error) {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", apperr.New(apperr.KindUnauthorized, "wordpress.account", "not signed in")
		}
		return "", err
	}
	if session.CustomerID == "" {
		return "", apperr.New(apperr.KindUnauthorized, "wordpress.account", "no customer id for session")
	}
	return session.CustomerID, nil
}
