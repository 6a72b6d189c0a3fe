package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmorate/internal/database"
	"filmorate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userPayload struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Birthday *string `json:"birthday"`
}

type userResponse struct {
	Success bool        `json:"success"`
	Data    userPayload `json:"data"`
}

type userListResponse struct {
	Success bool          `json:"success"`
	Data    []userPayload `json:"data"`
}

type errorResponse struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	service := NewService(
		repository.NewUserRepository(db),
		repository.NewFriendshipRepository(db),
	)
	handler := NewHandler(service)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createUser(t *testing.T, router *gin.Engine, email, login string) userPayload {
	t.Helper()
	resp := performRequest(router, http.MethodPost, "/users", gin.H{
		"email": email,
		"login": login,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var payload userResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	return payload.Data
}

func TestCreateUser(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/users", gin.H{
		"email":    "alice@example.com",
		"login":    "alice",
		"name":     "Alice",
		"birthday": "1990-03-14",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var payload userResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.NotZero(t, payload.Data.ID)
	assert.Equal(t, "Alice", payload.Data.Name)
	require.NotNil(t, payload.Data.Birthday)
	assert.Equal(t, "1990-03-14", *payload.Data.Birthday)
}

func TestCreateUser_BlankNameDefaultsToLogin(t *testing.T) {
	router := setupRouter(t)

	u := createUser(t, router, "bob@example.com", "bob_77")
	assert.Equal(t, "bob_77", u.Name)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router := setupRouter(t)
	createUser(t, router, "a@x.com", "a1")

	resp := performRequest(router, http.MethodPost, "/users", gin.H{
		"email": "a@x.com",
		"login": "a2",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

	var payload errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	router := setupRouter(t)
	createUser(t, router, "a@x.com", "a1")

	resp := performRequest(router, http.MethodPost, "/users", gin.H{
		"email": "b@x.com",
		"login": "a1",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateUser_InvalidPayloads(t *testing.T) {
	router := setupRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"login": "a1"}},
		{"bad email", gin.H{"email": "not-an-email", "login": "a1"}},
		{"missing login", gin.H{"email": "a@x.com"}},
		{"login with spaces", gin.H{"email": "a@x.com", "login": "a 1"}},
		{"login with symbols", gin.H{"email": "a@x.com", "login": "a-1!"}},
		{"future birthday", gin.H{"email": "a@x.com", "login": "a1", "birthday": "2999-01-01"}},
		{"client-supplied id", gin.H{"id": 7, "email": "a@x.com", "login": "a1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(router, http.MethodPost, "/users", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		})
	}
}

func TestUpdateUser_MergeSemantics(t *testing.T) {
	router := setupRouter(t)
	created := createUser(t, router, "a@x.com", "a1")

	resp := performRequest(router, http.MethodPut, "/users", gin.H{
		"id":    created.ID,
		"email": "renamed@x.com",
		"login": "renamed",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var payload userResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "renamed@x.com", payload.Data.Email)
	assert.Equal(t, "renamed", payload.Data.Login)
	// name was defaulted to the old login on create and not sent now
	assert.Equal(t, "a1", payload.Data.Name)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPut, "/users", gin.H{
		"id":    999,
		"email": "a@x.com",
		"login": "a1",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/users/12345", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestFriendFlow_ConfirmationIsSymmetric(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, router, "a@x.com", "a1")
	u2 := createUser(t, router, "b@x.com", "b1")

	// a1 invites b1: pending, not yet visible as friendship
	resp := performRequest(router, http.MethodPut,
		fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", u1.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var friends userListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &friends))
	assert.Empty(t, friends.Data)

	// b1 reciprocates: both sides confirmed
	resp = performRequest(router, http.MethodPut,
		fmt.Sprintf("/users/%d/friends/%d", u2.ID, u1.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	for _, pair := range [][2]int64{{u1.ID, u2.ID}, {u2.ID, u1.ID}} {
		resp = performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", pair[0]), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &friends))
		require.Len(t, friends.Data, 1)
		assert.Equal(t, pair[1], friends.Data[0].ID)
	}
}

func TestFriendFlow_DuplicateAndConfirmedRejected(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, router, "a@x.com", "a1")
	u2 := createUser(t, router, "b@x.com", "b1")

	addFriend := func(from, to int64) *httptest.ResponseRecorder {
		return performRequest(router, http.MethodPut,
			fmt.Sprintf("/users/%d/friends/%d", from, to), nil)
	}

	require.Equal(t, http.StatusOK, addFriend(u1.ID, u2.ID).Code)
	assert.Equal(t, http.StatusBadRequest, addFriend(u1.ID, u2.ID).Code, "re-sent request")

	require.Equal(t, http.StatusOK, addFriend(u2.ID, u1.ID).Code)
	assert.Equal(t, http.StatusBadRequest, addFriend(u1.ID, u2.ID).Code, "already friends")
	assert.Equal(t, http.StatusBadRequest, addFriend(u2.ID, u1.ID).Code, "already friends")
}

func TestFriendFlow_DeleteConfirmed(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, router, "a@x.com", "a1")
	u2 := createUser(t, router, "b@x.com", "b1")

	performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u2.ID, u1.ID), nil)

	resp := performRequest(router, http.MethodDelete,
		fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// removal is symmetric: neither side lists the other any more
	for _, id := range []int64{u1.ID, u2.ID} {
		resp = performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", id), nil)
		var friends userListResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &friends))
		assert.Empty(t, friends.Data)
	}

	// the other side's request stays open, so the remover can drop it too
	resp = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code, "relation is gone")
}

func TestFriendFlow_ReAddAfterDeleteConfirms(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, router, "a@x.com", "a1")
	u2 := createUser(t, router, "b@x.com", "b1")

	addFriend := func(from, to int64) *httptest.ResponseRecorder {
		return performRequest(router, http.MethodPut,
			fmt.Sprintf("/users/%d/friends/%d", from, to), nil)
	}

	require.Equal(t, http.StatusOK, addFriend(u1.ID, u2.ID).Code)
	require.Equal(t, http.StatusOK, addFriend(u2.ID, u1.ID).Code)

	resp := performRequest(router, http.MethodDelete,
		fmt.Sprintf("/users/%d/friends/%d", u1.ID, u2.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// the other side's request is still pending, re-sending it is rejected
	assert.Equal(t, http.StatusBadRequest, addFriend(u2.ID, u1.ID).Code)

	// the remover accepting the surviving request confirms both sides again
	resp = addFriend(u1.ID, u2.ID)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	for _, pair := range [][2]int64{{u1.ID, u2.ID}, {u2.ID, u1.ID}} {
		resp = performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", pair[0]), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		var friends userListResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &friends))
		require.Len(t, friends.Data, 1)
		assert.Equal(t, pair[1], friends.Data[0].ID)
	}
}

func TestCommonFriends(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, router, "a@x.com", "a1")
	u2 := createUser(t, router, "b@x.com", "b1")
	u3 := createUser(t, router, "c@x.com", "c1")

	confirm := func(a, b int64) {
		require.Equal(t, http.StatusOK,
			performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", a, b), nil).Code)
		require.Equal(t, http.StatusOK,
			performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", b, a), nil).Code)
	}
	confirm(u1.ID, u3.ID)
	confirm(u2.ID, u3.ID)

	resp := performRequest(router, http.MethodGet,
		fmt.Sprintf("/users/%d/friends/common/%d", u1.ID, u2.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var friends userListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &friends))
	require.Len(t, friends.Data, 1)
	assert.Equal(t, u3.ID, friends.Data[0].ID)
}

func TestResetUsers(t *testing.T) {
	router := setupRouter(t)
	createUser(t, router, "a@x.com", "a1")

	resp := performRequest(router, http.MethodDelete, "/users/reset", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, "/users", nil)
	var list userListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Empty(t, list.Data)
}
