// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iuristatech/iurista-tui/internal/api"
	"github.com/iuristatech/iurista-tui/internal/config"
	"github.com/iuristatech/iurista-tui/internal/model"
	"github.com/iuristatech/iurista-tui/internal/session"
	"github.com/iuristatech/iurista-tui/internal/ui/admin"
	"github.com/iuristatech/iurista-tui/internal/ui/chat"
	"github.com/iuristatech/iurista-tui/internal/ui/components"
	"github.com/iuristatech/iurista-tui/internal/ui/login"
	"github.com/iuristatech/iurista-tui/internal/ui/profile"
)

func newTestApp() *appModel {
	cfg := config.Default()
	cfg.SetDefaults()
	return newApp(cfg, api.NewClient(), session.NewManager(), nil, nil)
}

func TestSplashTransitionFiresOnce(t *testing.T) {
	a := newTestApp()
	if a.page != pageSplash {
		t.Fatal("app should start on the splash page")
	}

	next, _ := a.Update(components.SplashDoneMsg{})
	a = next.(*appModel)
	if a.page != pageLanding {
		t.Fatalf("page after splash = %v, want landing", a.page)
	}

	// The timed completion arriving after a key-skip must not re-fire
	// the transition from another page.
	a.page = pageChat
	next, _ = a.Update(components.SplashDoneMsg{})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Error("stale splash completion changed the page")
	}
}

func TestRehydratedSessionSkipsLanding(t *testing.T) {
	a := newTestApp()
	a.session.SignIn(&model.User{ID: 1, Email: "ana@pyme.co"}, "tok")

	next, _ := a.Update(components.SplashDoneMsg{})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Errorf("page = %v, want chat for a rehydrated user", a.page)
	}
}

func TestRehydratedAdminLandsOnDashboard(t *testing.T) {
	a := newTestApp()
	a.session.SignIn(&model.User{ID: 1, Email: "root@iurista.co", IsAdmin: true}, "tok")

	next, _ := a.Update(components.SplashDoneMsg{})
	a = next.(*appModel)
	if a.page != pageAdmin {
		t.Errorf("page = %v, want admin", a.page)
	}
}

func TestAuthRequestOpensLoginInRequestedMode(t *testing.T) {
	a := newTestApp()
	a.page = pageChat

	next, _ := a.Update(chat.RequestAuthMsg{Register: true})
	a = next.(*appModel)
	if a.page != pageLogin {
		t.Fatalf("page = %v, want login", a.page)
	}
	if a.login.Mode() != login.ModeRegister {
		t.Error("register variant not pre-selected")
	}
}

func TestAuthenticatedRoutesByRole(t *testing.T) {
	a := newTestApp()
	a.page = pageLogin

	next, _ := a.Update(login.AuthenticatedMsg{
		User: &model.User{ID: 2, Email: "ana@pyme.co"}, Token: "tok",
	})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Errorf("page = %v, want chat for a regular user", a.page)
	}
	if !a.session.Authenticated() {
		t.Error("session not installed")
	}

	b := newTestApp()
	b.page = pageLogin
	next, _ = b.Update(login.AuthenticatedMsg{
		User: &model.User{ID: 3, Email: "root@iurista.co", Role: "admin"}, Token: "tok",
	})
	b = next.(*appModel)
	if b.page != pageAdmin {
		t.Errorf("page = %v, want admin for an admin user", b.page)
	}
}

func TestNonAdminRedirectedFromDashboard(t *testing.T) {
	a := newTestApp()
	a.session.SignIn(&model.User{ID: 2, Email: "ana@pyme.co"}, "tok")
	a.page = pageChat

	next, _ := a.routeKey(tea.KeyMsg{Type: tea.KeyCtrlG})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Errorf("page = %v, non-admin should stay in chat", a.page)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	a := newTestApp()
	a.session.SignIn(&model.User{ID: 2, Email: "ana@pyme.co"}, "tok")
	a.page = pageProfile

	next, _ := a.Update(admin.LogoutMsg{})
	a = next.(*appModel)
	if a.page != pageLanding {
		t.Errorf("page = %v, want landing after logout", a.page)
	}
	if a.session.Authenticated() {
		t.Error("session survived logout")
	}
	if !a.chat.Log().IsEmpty() {
		t.Error("chat log survived logout")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	a := newTestApp()
	a.session.SignIn(&model.User{ID: 2, Email: "ana@pyme.co"}, "tok")
	a.page = pageChat

	next, _ := a.routeKey(tea.KeyMsg{Type: tea.KeyCtrlP})
	a = next.(*appModel)
	if a.page != pageProfile {
		t.Fatalf("page = %v, want profile", a.page)
	}

	next, _ = a.Update(profile.BackMsg{})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Errorf("page = %v, want chat after back", a.page)
	}
}

func TestAnonymousProfileBlocked(t *testing.T) {
	a := newTestApp()
	a.page = pageChat

	next, _ := a.routeKey(tea.KeyMsg{Type: tea.KeyCtrlP})
	a = next.(*appModel)
	if a.page != pageChat {
		t.Error("anonymous visitor reached the profile page")
	}
}
