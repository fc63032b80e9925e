package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterStudent(t *testing.T) {
	app := setupTestApp(t)

	body := map[string]interface{}{
		"name":     "Amina Yusuf",
		"email":    "amina@example.com",
		"password": "secret123",
	}

	resp := performRequest(t, app, http.MethodPost, "/api/v1/students", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	decodeBody(t, resp, &created)
	assert.Equal(t, "Amina Yusuf", created["name"])
	assert.Equal(t, "amina@example.com", created["email"])
	assert.NotEmpty(t, created["id"])
	assert.NotContains(t, created, "password")

	// Same email again.
	resp = performRequest(t, app, http.MethodPost, "/api/v1/students", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterStudentValidation(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing email",
			body: map[string]interface{}{"name": "Amina Yusuf", "password": "secret123"},
		},
		{
			name: "malformed email",
			body: map[string]interface{}{"name": "Amina Yusuf", "email": "not-an-email", "password": "secret123"},
		},
		{
			name: "short password",
			body: map[string]interface{}{"name": "Amina Yusuf", "email": "amina@example.com", "password": "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, app, http.MethodPost, "/api/v1/students", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestListStudents(t *testing.T) {
	app := setupTestApp(t)

	resp := performRequest(t, app, http.MethodGet, "/api/v1/students", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var empty []StudentResponse
	decodeBody(t, resp, &empty)
	assert.Empty(t, empty)

	createTestStudent(t, "Amina Yusuf", "amina@example.com")
	createTestStudent(t, "Brian Kiptoo", "brian@example.com")

	resp = performRequest(t, app, http.MethodGet, "/api/v1/students", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var first []StudentResponse
	decodeBody(t, resp, &first)
	assert.Len(t, first, 2)

	// Reads are idempotent.
	resp = performRequest(t, app, http.MethodGet, "/api/v1/students", nil)
	var second []StudentResponse
	decodeBody(t, resp, &second)
	assert.Equal(t, first, second)
}
