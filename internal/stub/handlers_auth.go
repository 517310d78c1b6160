package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/crypto"
)

// Login handles POST /api/v1/auth/login
func (s *Store) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	s.mu.Lock()
	user := s.findUser(input.Username)
	s.mu.Unlock()

	if user == nil || !crypto.CheckPassword(input.Password, user.PasswordHash) {
		respondError(c, http.StatusUnauthorized, "sai tên đăng nhập hoặc mật khẩu")
		return
	}
	s.issueSession(c, user)
}

// LoginGoogle handles POST /api/v1/auth/google. The stub accepts any
// non-empty ID token and derives a stable account from it.
func (s *Store) LoginGoogle(c *gin.Context) {
	var input entities.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		respondError(c, http.StatusBadRequest, "idToken is required")
		return
	}
	s.socialLogin(c, "google", input.IDToken)
}

// LoginFacebook handles POST /api/v1/auth/facebook.
func (s *Store) LoginFacebook(c *gin.Context) {
	var input entities.FacebookLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.AccessToken) == "" {
		respondError(c, http.StatusBadRequest, "accessToken is required")
		return
	}
	s.socialLogin(c, "facebook", input.AccessToken)
}

func (s *Store) socialLogin(c *gin.Context, provider, token string) {
	// A stable fake identity per token suffix keeps repeated logins on the
	// same stub account.
	suffix := token
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	username := provider + "_" + strings.ToLower(suffix)

	s.mu.Lock()
	user := s.findUser(username)
	if user == nil {
		user = s.addUser(username, username+"@social.sportmart.vn", "", entities.RoleBuyer)
	}
	s.mu.Unlock()

	s.issueSession(c, user)
}

func (s *Store) issueSession(c *gin.Context, user *userRecord) {
	pair, err := s.JWT.GenerateTokenPair(user.ID, user.Username, int(user.Role))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respond(c, http.StatusOK, entities.AuthResponse{
		User: &entities.User{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
