package auth

import (
	"net/http"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user           User
	privateKeyPath string
}

func NewController(user User, privateKeyPath string) *Controller {
	return &Controller{user: user, privateKeyPath: privateKeyPath}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "EmployeeID", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmployeeID(c.Ctx, data.EmployeeID)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee_id or password is incorrect"), http.StatusUnauthorized))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("employee_id or password is incorrect"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.AuthClaims{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "AccessToken", "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.AuthClaims{
		ID:   refreshTokenClaims.UserId,
		Role: refreshTokenClaims.Role,
	}, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}
