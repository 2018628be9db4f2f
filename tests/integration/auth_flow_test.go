package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "jane", "jane@test.com", "password123")
	if token == "" {
		t.Fatal("expected non-empty token from registration")
	}
	if userID == 0 {
		t.Fatal("expected non-zero user ID")
	}

	loginToken := app.loginUser(t, "jane@test.com", "password123")

	rec := app.request("GET", "/auth/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"] != "jane@test.com" {
		t.Errorf("expected email jane@test.com, got %v", user["email"])
	}
	if user["displayName"] != "jane" {
		t.Errorf("expected displayName jane, got %v", user["displayName"])
	}
}

func TestAuthFlow_DuplicateIdentity(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "jane", "jane@test.com", "password123")

	// Same email, different display name.
	rec := app.request("POST", "/auth/register",
		`{"displayName":"other","email":"jane@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_IDENTITY" {
		t.Errorf("expected DUPLICATE_IDENTITY, got %v", code)
	}

	// Same display name, different email. Same generic code, so the response
	// does not reveal which identity collided.
	rec = app.request("POST", "/auth/register",
		`{"displayName":"jane","email":"other@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate display name, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_IDENTITY" {
		t.Errorf("expected DUPLICATE_IDENTITY, got %v", code)
	}
}

func TestAuthFlow_LoginFailuresAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "jane", "jane@test.com", "password123")

	wrongPass := app.request("POST", "/auth/login",
		`{"email":"jane@test.com","password":"wrongpass"}`, "")
	unknownEmail := app.request("POST", "/auth/login",
		`{"email":"ghost@test.com","password":"password123"}`, "")

	if wrongPass.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrongPass.Code, unknownEmail.Code)
	}
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Errorf("expected identical bodies, got %q vs %q",
			wrongPass.Body.String(), unknownEmail.Body.String())
	}
}

func TestAuthFlow_TokenErrors(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "jane", "jane@test.com", "password123")

	t.Run("missing header", func(t *testing.T) {
		rec := app.request("GET", "/auth/profile", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := app.request("GET", "/auth/profile", "", "not-a-jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_TOKEN" {
			t.Errorf("expected INVALID_TOKEN, got %v", code)
		}
	})
}

func TestAuthFlow_UpdateProfileReissuesToken(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "jane", "jane@test.com", "password123")

	rec := app.request("PUT", "/auth/profile",
		`{"displayName":"janet","email":"janet@test.com"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newToken := result["token"].(string)
	if newToken == "" {
		t.Fatal("expected fresh token after profile update")
	}

	// The fresh token works and the profile reflects the change.
	rec = app.request("GET", "/auth/profile", "", newToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with fresh token, got %d", rec.Code)
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"] != "janet@test.com" {
		t.Errorf("expected updated email, got %v", user["email"])
	}

	// Old login credentials still work since the password did not change.
	app.loginUser(t, "janet@test.com", "password123")
}

func TestAuthFlow_UpdatePassword(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "jane", "jane@test.com", "password123")

	rec := app.request("PUT", "/auth/password",
		`{"currentPassword":"password123","newPassword":"betterpass456"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Old password no longer works; new one does.
	rec = app.request("POST", "/auth/login",
		`{"email":"jane@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with old password, got %d", rec.Code)
	}
	app.loginUser(t, "jane@test.com", "betterpass456")
}

func TestAuthFlow_DeleteAccount(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "jane", "jane@test.com", "password123")

	// Seed some owned data.
	rec := app.request("POST", "/tasks", `{"title":"Orphan check","date":"2025-01-01"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("task create failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/notes", `{"title":"n","body":"b"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("note create failed: %d %s", rec.Code, rec.Body.String())
	}

	// Wrong password keeps the account intact.
	rec = app.request("DELETE", "/auth/account", `{"password":"wrong"}`, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong password, got %d", rec.Code)
	}
	rec = app.request("GET", "/auth/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("account should still exist, got %d", rec.Code)
	}

	// Correct password removes the account.
	rec = app.request("DELETE", "/auth/account", `{"password":"password123"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// The still-valid token no longer maps to a user.
	rec = app.request("GET", "/auth/profile", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", rec.Code)
	}

	// Login is gone too.
	rec = app.request("POST", "/auth/login",
		`{"email":"jane@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after deletion, got %d", rec.Code)
	}
}
