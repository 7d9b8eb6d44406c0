package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"recettes/models"

	"golang.org/x/crypto/bcrypt"
)

func TestEditProfileRequiresSelf(t *testing.T) {
	r, db := setupRouter(t)
	alice := newUser(t, db, "alice")
	bob := newUser(t, db, "bob")

	t.Run("another user's profile is off limits", func(t *testing.T) {
		w := doGet(r, fmt.Sprintf("/utilisateur/edition/%d", alice.ID), authCookie(t, bob))
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("own profile is editable", func(t *testing.T) {
		w := doGet(r, fmt.Sprintf("/utilisateur/edition/%d", alice.ID), authCookie(t, alice))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("missing user yields 404", func(t *testing.T) {
		w := doGet(r, "/utilisateur/edition/9999", authCookie(t, alice))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestUpdateProfileChecksCurrentPassword(t *testing.T) {
	r, db := setupRouter(t)
	alice := newUser(t, db, "alice")
	path := fmt.Sprintf("/utilisateur/edition/%d", alice.ID)

	t.Run("wrong current password changes nothing", func(t *testing.T) {
		form := url.Values{
			"pseudo":    {"alice2"},
			"full_name": {"Alice Nouvelle"},
			"password":  {"mauvais"},
		}
		w := doPost(r, path, form, authCookie(t, alice))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d (form re-rendered with warning)", w.Code, http.StatusOK)
		}

		var reloaded models.User
		db.First(&reloaded, alice.ID)
		if reloaded.Pseudo != "alice" {
			t.Errorf("pseudo = %q, profile mutated despite wrong password", reloaded.Pseudo)
		}
	})

	t.Run("correct current password updates the profile", func(t *testing.T) {
		form := url.Values{
			"pseudo":    {"alice2"},
			"full_name": {"Alice Nouvelle"},
			"password":  {"motdepasse"},
		}
		w := doPost(r, path, form, authCookie(t, alice))
		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
		}

		var reloaded models.User
		db.First(&reloaded, alice.ID)
		if reloaded.Pseudo != "alice2" {
			t.Errorf("pseudo = %q, want %q", reloaded.Pseudo, "alice2")
		}
	})
}

func TestChangePasswordFlow(t *testing.T) {
	r, db := setupRouter(t)
	alice := newUser(t, db, "alice")
	path := fmt.Sprintf("/utilisateur/edition-mot-de-passe/%d", alice.ID)

	t.Run("wrong current password keeps the old hash", func(t *testing.T) {
		form := url.Values{
			"password":         {"mauvais"},
			"new_password":     {"nouveaumotdepasse"},
			"confirm_password": {"nouveaumotdepasse"},
		}
		w := doPost(r, path, form, authCookie(t, alice))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d (form re-rendered with warning)", w.Code, http.StatusOK)
		}

		var reloaded models.User
		db.First(&reloaded, alice.ID)
		if err := bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("motdepasse")); err != nil {
			t.Error("stored hash changed despite wrong current password")
		}
	})

	t.Run("mismatched confirmation is a validation error", func(t *testing.T) {
		form := url.Values{
			"password":         {"motdepasse"},
			"new_password":     {"nouveaumotdepasse"},
			"confirm_password": {"autrechose"},
		}
		w := doPost(r, path, form, authCookie(t, alice))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d (form re-rendered)", w.Code, http.StatusOK)
		}

		var reloaded models.User
		db.First(&reloaded, alice.ID)
		if err := bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("motdepasse")); err != nil {
			t.Error("stored hash changed despite mismatched confirmation")
		}
	})

	t.Run("correct current password replaces the hash", func(t *testing.T) {
		form := url.Values{
			"password":         {"motdepasse"},
			"new_password":     {"nouveaumotdepasse"},
			"confirm_password": {"nouveaumotdepasse"},
		}
		w := doPost(r, path, form, authCookie(t, alice))
		if w.Code != http.StatusFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
		}

		var reloaded models.User
		db.First(&reloaded, alice.ID)
		if err := bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("nouveaumotdepasse")); err != nil {
			t.Error("new password does not verify after change")
		}
	})
}
