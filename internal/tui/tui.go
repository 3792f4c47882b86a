// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package tui is the terminal user interface of Kisaan Setu, built on
// Bubble Tea. The login flow runs as a small page router (menu, sign-in,
// registration wizard); the signed-in part of the application runs as a
// single model with a home menu fanning out into the profile, weather,
// schemes and calculator screens.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/models"
)

// ErrUserQuit reports that the user closed the program from the login flow.
var ErrUserQuit = errors.New("quit the program")

// TUI owns the terminal frontend and runs its two phases: LoginFlow until a
// user is signed in, then MainLoop until quit or sign-out.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

// New creates the terminal frontend over the given services.
func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu, sign-in and registration pages until a user signs
// in. It returns [ErrUserQuit] when the user closes the program instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserRecord, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserRecord{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserRecord{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.signedIn {
		return models.UserRecord{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the signed-in part of the application for the given user.
// It reports logout=true when the user signed out (as opposed to quitting),
// so the caller can restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, user models.UserRecord) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
