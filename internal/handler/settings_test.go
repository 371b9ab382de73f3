package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func settingsForm(overrides url.Values) url.Values {
	form := url.Values{
		"facebook":  {"https://facebook.com/elikiamedia"},
		"whatsapp":  {"https://wa.me/243000000000"},
		"youtube":   {"https://youtube.com/@elikiamedia"},
		"twitter":   {"https://twitter.com/elikiamedia"},
		"instagram": {"https://instagram.com/elikiamedia"},
		"linkedin":  {"https://linkedin.com/company/elikiamedia"},
		"email":     {"contact@elikiamedia.com"},
		"phone":     {"+243 000 000 000"},
		"address":   {"Kinshasa, RDC"},
		"map_url":   {"https://maps.example.com/elikia"},
		"hours":     {"Lun-Ven 9h-17h"},
	}
	for key, vals := range overrides {
		form[key] = vals
	}
	return form
}

func TestSettings_Form(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodGet, "/admin/settings", nil, cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Paramètres du site") {
		t.Error("expected the settings heading")
	}
}

func TestSettings_Save(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodPost, "/admin/settings", settingsForm(nil), cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/settings" {
		t.Errorf("expected redirect to /admin/settings, got %s", loc)
	}

	snapshot, err := app.content.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	if snapshot.Settings.Phone != "+243 000 000 000" {
		t.Errorf("unexpected phone after save: %q", snapshot.Settings.Phone)
	}
	if snapshot.Settings.FacebookURL != "https://facebook.com/elikiamedia" {
		t.Errorf("unexpected facebook URL after save: %q", snapshot.Settings.FacebookURL)
	}
}

func TestSettings_SaveShowsInFooter(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	app.do(t, http.MethodPost, "/admin/settings", settingsForm(url.Values{
		"address": {"Avenue de la Presse 12"},
	}), cookies)

	rec := app.do(t, http.MethodGet, "/", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Avenue de la Presse 12") {
		t.Error("expected saved address in the public footer")
	}
}

func TestSettings_PasswordChange(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodPost, "/admin/settings", settingsForm(url.Values{
		"new_password":     {"nouveau-secret"},
		"confirm_password": {"nouveau-secret"},
	}), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	// The old password no longer works
	form := url.Values{
		"email":    {"admin@elikiamedia.com"},
		"password": {"changeme"},
	}
	rec = app.do(t, http.MethodPost, "/login", form, nil)
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("old password should be rejected, got redirect to %s", loc)
	}

	// The new one does
	form.Set("password", "nouveau-secret")
	rec = app.do(t, http.MethodPost, "/login", form, nil)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("new password should log in, got redirect to %s", loc)
	}
}

func TestSettings_PasswordMismatch(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodPost, "/admin/settings", settingsForm(url.Values{
		"new_password":     {"nouveau-secret"},
		"confirm_password": {"autre-chose"},
	}), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	// The password is unchanged
	form := url.Values{
		"email":    {"admin@elikiamedia.com"},
		"password": {"changeme"},
	}
	rec = app.do(t, http.MethodPost, "/login", form, nil)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("original password should still work, got redirect to %s", loc)
	}
}

func TestSettings_PasswordTooShort(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodPost, "/admin/settings", settingsForm(url.Values{
		"new_password":     {"abc"},
		"confirm_password": {"abc"},
	}), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	form := url.Values{
		"email":    {"admin@elikiamedia.com"},
		"password": {"changeme"},
	}
	rec = app.do(t, http.MethodPost, "/login", form, nil)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("original password should still work, got redirect to %s", loc)
	}
}
