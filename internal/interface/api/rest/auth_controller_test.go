package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blindstore-api/internal/application/ports"
	domainUser "blindstore-api/internal/domain/user"
	userDB "blindstore-api/internal/infrastructure/db/postgres/user"
	jwtSvc "blindstore-api/internal/infrastructure/jwt"
)

type FakeUserService struct {
	CreateUserFunc         func(ctx context.Context, username, password string) (*domainUser.User, error)
	FindUserByIDFunc       func(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error)
	FindUserByUsernameFunc func(ctx context.Context, username string) (*domainUser.User, error)
}

func (f *FakeUserService) CreateUser(ctx context.Context, username, password string) (*domainUser.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, username, password)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, uuid)
}
func (f *FakeUserService) FindUserByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	if f.FindUserByUsernameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByUsernameFunc(ctx, username)
}

type FakeAuth struct {
	HashPasswordFunc  func(password string) (string, error)
	GenerateTokenFunc func(u *domainUser.User, requestPassword string) (string, error)
	IssueTokenFunc    func(u *domainUser.User) (string, error)
}

func (f *FakeAuth) HashPassword(password string) (string, error) {
	if f.HashPasswordFunc == nil {
		return "", errors.New("not used")
	}
	return f.HashPasswordFunc(password)
}
func (f *FakeAuth) GenerateToken(u *domainUser.User, requestPassword string) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.GenerateTokenFunc(u, requestPassword)
}
func (f *FakeAuth) IssueToken(u *domainUser.User) (string, error) {
	if f.IssueTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.IssueTokenFunc(u)
}

func setupRouterAC(t *testing.T, us ports.UserService, as ports.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewAuthController(r, zap.NewNop(), us, as, jwtSvc.New(testSecret))

	return r
}

func TestAuthController_SignupHandler(t *testing.T) {
	okUser := &domainUser.User{
		UUID:      uuid.New(),
		Username:  "alice",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name       string
		body       any
		mockUS     func() ports.UserService
		mockAS     func() ports.Auth
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid json",
			body:       "{broken",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid json",
		},
		{
			name:       "400 short username",
			body:       map[string]string{"username": "ab", "password": "longenough"},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "400 short password",
			body:       map[string]string{"username": "alice", "password": "short"},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "409 username taken",
			body: map[string]string{"username": "alice", "password": "longenough"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, username, password string) (*domainUser.User, error) {
						return nil, userDB.ErrUsernameAlreadyExists
					},
				}
			},
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusConflict,
			wantErr:    "username already exists",
		},
		{
			name: "500 service error",
			body: map[string]string{"username": "alice", "password": "longenough"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, username, password string) (*domainUser.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a user",
		},
		{
			name: "201 success",
			body: map[string]string{"username": "alice", "password": "longenough"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, username, password string) (*domainUser.User, error) {
						assert.Equal(t, "alice", username)
						return okUser, nil
					},
				}
			},
			mockAS: func() ports.Auth {
				return &FakeAuth{
					IssueTokenFunc: func(u *domainUser.User) (string, error) { return "tok", nil },
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterAC(t, tt.mockUS(), tt.mockAS())
			rr := doReq(t, r, http.MethodPost, RouteSignup, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			assert.Equal(t, "tok", resp["access_token"])
			assert.Equal(t, "Bearer", resp["token_type"])
		})
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	okUser := &domainUser.User{UUID: uuid.New(), Username: "alice", PasswordHash: "hash"}

	tests := []struct {
		name       string
		body       any
		mockUS     func() ports.UserService
		mockAS     func() ports.Auth
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 missing fields",
			body:       map[string]string{"username": "", "password": ""},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "401 unknown username",
			body: map[string]string{"username": "ghost", "password": "whatever1"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByUsernameFunc: func(ctx context.Context, username string) (*domainUser.User, error) {
						return nil, nil
					},
				}
			},
			mockAS:     func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid credentials",
		},
		{
			name: "401 wrong password",
			body: map[string]string{"username": "alice", "password": "wrongpass"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByUsernameFunc: func(ctx context.Context, username string) (*domainUser.User, error) {
						return okUser, nil
					},
				}
			},
			mockAS: func() ports.Auth {
				return &FakeAuth{
					GenerateTokenFunc: func(u *domainUser.User, requestPassword string) (string, error) {
						return "", errors.New("invalid credentials")
					},
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid credentials",
		},
		{
			name: "200 success",
			body: map[string]string{"username": "alice", "password": "longenough"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByUsernameFunc: func(ctx context.Context, username string) (*domainUser.User, error) {
						return okUser, nil
					},
				}
			},
			mockAS: func() ports.Auth {
				return &FakeAuth{
					GenerateTokenFunc: func(u *domainUser.User, requestPassword string) (string, error) {
						assert.Equal(t, "longenough", requestPassword)
						return "tok", nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterAC(t, tt.mockUS(), tt.mockAS())
			rr := doReq(t, r, http.MethodPost, RouteLogin, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			assert.Equal(t, "tok", resp["access_token"])
		})
	}
}

func TestAuthController_MeHandler(t *testing.T) {
	okUser := &domainUser.User{UUID: uuid.New(), Username: "alice", CreatedAt: time.Now().UTC()}

	tests := []struct {
		name       string
		headers    map[string]string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing Authorization",
			headers:    nil,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:    "404 account gone",
			headers: authHeaderFor(t, okUser.UUID.String()),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "200 success",
			headers: authHeaderFor(t, okUser.UUID.String()),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domainUser.UUID) (*domainUser.User, error) {
						assert.Equal(t, okUser.UUID, id)
						return okUser, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterAC(t, tt.mockUS(), &FakeAuth{})
			rr := doReq(t, r, http.MethodGet, RouteMe, nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			assert.Equal(t, "alice", resp["username"])
		})
	}
}
