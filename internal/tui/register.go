// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kisaanlabs/kisaan-setu/internal/catalog"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/models"
)

type registerStep int

const (
	stepPersonal registerStep = iota
	stepFarm
	stepCrops
)

// Personal step field order: name, email, phone, password, confirmation,
// then the language selector.
const (
	personalFieldCount = 5
	personalFocusMax   = personalFieldCount // last focus index is the selector
)

// Farm step field order: farm name, size, location, experience, then the
// soil type and farm type selectors.
const (
	farmFieldCount = 4
	farmFocusMax   = farmFieldCount + 1
)

// Crops step focus order: crop list, season selector, irrigation selector,
// organic toggle.
const cropsFocusMax = 3

// RegisterModel is the Bubble Tea model for the three-step registration
// wizard: personal details, farm details, crop preferences. Free-text fields
// are text inputs; fixed option sets are cycled with ←/→; crops are toggled
// with space. On successful submission a [RegisterResult] message is
// produced; the model then resets the wizard and navigates back to the menu
// with a [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	step  registerStep
	focus int

	personalInputs []textinput.Model
	languageIdx    int

	farmInputs  []textinput.Model
	soilTypeIdx int
	farmTypeIdx int

	cropIdx       int
	cropsSelected map[int]bool
	seasonIdx     int
	irrigationIdx int
	organic       bool

	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] positioned on the first step
// with the name field focused.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	personal := make([]textinput.Model, personalFieldCount)
	for i, placeholder := range []string{"name", "email", "phone (10 digits)", "password (min 6)", "repeat password"} {
		personal[i] = textinput.New()
		personal[i].Placeholder = placeholder
		personal[i].Width = 40
	}
	personal[3].EchoMode = textinput.EchoPassword
	personal[3].EchoCharacter = '*'
	personal[4].EchoMode = textinput.EchoPassword
	personal[4].EchoCharacter = '*'
	personal[0].Focus()

	farm := make([]textinput.Model, farmFieldCount)
	for i, placeholder := range []string{"farm name", "farm size (e.g. 5 acres)", "location (district, state)", "years of farming experience"} {
		farm[i] = textinput.New()
		farm[i].Placeholder = placeholder
		farm[i].Width = 40
	}

	return &RegisterModel{
		ctx:            ctx,
		auth:           auth,
		personalInputs: personal,
		farmInputs:     farm,
		cropsSelected:  map[int]bool{},
		farmTypeIdx:    indexOf(catalog.FarmTypes, "Mixed Farming"),
		seasonIdx:      indexOf(catalog.FarmingSeasons, "Both"),
	}
}

func indexOf(items []string, v string) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter advances to the next step (submitting
// on the last one), esc goes back one step or to the menu, tab/shift+tab
// move focus, ←/→ cycle option selectors, space toggles crops and the
// organic flag.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
			return m, nil
		}

		username := result.Username
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.errMsg = ""
		if m.step == stepPersonal {
			m.submitting = false
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		m.step--
		m.focus = 0
		m.syncFocus()
		return m, nil
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		return m.advance()
	}

	switch m.step {
	case stepPersonal:
		return m.updatePersonal(keyMsg)
	case stepFarm:
		return m.updateFarm(keyMsg)
	case stepCrops:
		return m.updateCrops(keyMsg)
	}
	return m, nil
}

func (m *RegisterModel) updatePersonal(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == personalFocusMax {
		switch keyMsg.String() {
		case "left":
			m.languageIdx = (m.languageIdx - 1 + len(catalog.Languages)) % len(catalog.Languages)
		case "right":
			m.languageIdx = (m.languageIdx + 1) % len(catalog.Languages)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.personalInputs[m.focus], cmd = m.personalInputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *RegisterModel) updateFarm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus >= farmFieldCount {
		options := catalog.SoilTypes
		idx := &m.soilTypeIdx
		if m.focus == farmFocusMax {
			options = catalog.FarmTypes
			idx = &m.farmTypeIdx
		}
		switch keyMsg.String() {
		case "left":
			*idx = (*idx - 1 + len(options)) % len(options)
		case "right":
			*idx = (*idx + 1) % len(options)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.farmInputs[m.focus], cmd = m.farmInputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *RegisterModel) updateCrops(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case 0: // crop list
		switch keyMsg.String() {
		case "left":
			m.cropIdx = (m.cropIdx - 1 + len(catalog.PopularCrops)) % len(catalog.PopularCrops)
		case "right":
			m.cropIdx = (m.cropIdx + 1) % len(catalog.PopularCrops)
		case " ":
			m.cropsSelected[m.cropIdx] = !m.cropsSelected[m.cropIdx]
		}
	case 1:
		switch keyMsg.String() {
		case "left":
			m.seasonIdx = (m.seasonIdx - 1 + len(catalog.FarmingSeasons)) % len(catalog.FarmingSeasons)
		case "right":
			m.seasonIdx = (m.seasonIdx + 1) % len(catalog.FarmingSeasons)
		}
	case 2:
		switch keyMsg.String() {
		case "left":
			m.irrigationIdx = (m.irrigationIdx - 1 + len(catalog.IrrigationTypes)) % len(catalog.IrrigationTypes)
		case "right":
			m.irrigationIdx = (m.irrigationIdx + 1) % len(catalog.IrrigationTypes)
		}
	case 3:
		if keyMsg.String() == " " {
			m.organic = !m.organic
		}
	}
	return m, nil
}

func (m *RegisterModel) advance() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.errMsg = ""
	switch m.step {
	case stepPersonal, stepFarm:
		m.step++
		m.focus = 0
		m.syncFocus()
		return m, nil
	case stepCrops:
		m.submitting = true
		return m, m.cmdRegister(m.buildRequest())
	}
	return m, nil
}

func (m *RegisterModel) buildRequest() models.RegistrationRequest {
	var crops []string
	for i, crop := range catalog.PopularCrops {
		if m.cropsSelected[i] {
			crops = append(crops, crop)
		}
	}

	return models.RegistrationRequest{
		Personal: models.PersonalInfo{
			Name:            strings.TrimSpace(m.personalInputs[0].Value()),
			Email:           strings.TrimSpace(m.personalInputs[1].Value()),
			Phone:           strings.TrimSpace(m.personalInputs[2].Value()),
			Password:        m.personalInputs[3].Value(),
			ConfirmPassword: m.personalInputs[4].Value(),
			Language:        catalog.Languages[m.languageIdx],
		},
		Farm: models.FarmInfo{
			FarmName:          strings.TrimSpace(m.farmInputs[0].Value()),
			FarmSize:          strings.TrimSpace(m.farmInputs[1].Value()),
			Location:          strings.TrimSpace(m.farmInputs[2].Value()),
			SoilType:          catalog.SoilTypes[m.soilTypeIdx],
			FarmingExperience: strings.TrimSpace(m.farmInputs[3].Value()),
			FarmType:          catalog.FarmTypes[m.farmTypeIdx],
		},
		Crops: models.CropPreferences{
			PrimaryCrops:   crops,
			FarmingSeason:  catalog.FarmingSeasons[m.seasonIdx],
			IrrigationType: catalog.IrrigationTypes[m.irrigationIdx],
			OrganicFarming: m.organic,
		},
	}
}

func (m *RegisterModel) cmdRegister(request models.RegistrationRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		record, err := auth.Register(ctx, request)
		return RegisterResult{Err: err, Username: record.Name}
	}
}

func (m *RegisterModel) moveFocus(delta int) {
	max := m.focusMax()
	m.focus = (m.focus + delta + max + 1) % (max + 1)
	m.syncFocus()
}

func (m *RegisterModel) focusMax() int {
	switch m.step {
	case stepPersonal:
		return personalFocusMax
	case stepFarm:
		return farmFocusMax
	default:
		return cropsFocusMax
	}
}

// syncFocus moves textinput focus to match the focus index.
func (m *RegisterModel) syncFocus() {
	for i := range m.personalInputs {
		m.personalInputs[i].Blur()
	}
	for i := range m.farmInputs {
		m.farmInputs[i].Blur()
	}

	switch m.step {
	case stepPersonal:
		if m.focus < personalFieldCount {
			m.personalInputs[m.focus].Focus()
		}
	case stepFarm:
		if m.focus < farmFieldCount {
			m.farmInputs[m.focus].Focus()
		}
	}
}

func (m *RegisterModel) reset() {
	fresh := NewRegisterModel(m.ctx, m.auth)
	*m = *fresh
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Step %d of 3\n\n", int(m.step)+1))

	switch m.step {
	case stepPersonal:
		b.WriteString(sectionStyle.Render("Personal details"))
		b.WriteString("\n\n")
		labels := []string{"Name", "Email", "Phone", "Password", "Repeat"}
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("%-8s │ [%s]\n", label, m.personalInputs[i].View()))
		}
		b.WriteString(m.selectorRow("Language", catalog.Languages[m.languageIdx], m.focus == personalFocusMax))
	case stepFarm:
		b.WriteString(sectionStyle.Render("Farm details"))
		b.WriteString("\n\n")
		labels := []string{"Name", "Size", "Location", "Years"}
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("%-8s │ [%s]\n", label, m.farmInputs[i].View()))
		}
		b.WriteString(m.selectorRow("Soil", catalog.SoilTypes[m.soilTypeIdx], m.focus == farmFieldCount))
		b.WriteString(m.selectorRow("Type", catalog.FarmTypes[m.farmTypeIdx], m.focus == farmFocusMax))
	case stepCrops:
		b.WriteString(sectionStyle.Render("Crop preferences"))
		b.WriteString("\n\n")
		b.WriteString(m.cropsRow())
		b.WriteString(m.selectorRow("Season", catalog.FarmingSeasons[m.seasonIdx], m.focus == 1))
		b.WriteString(m.selectorRow("Water", catalog.IrrigationTypes[m.irrigationIdx], m.focus == 2))

		organic := "[ ]"
		if m.organic {
			organic = "[x]"
		}
		marker := "  "
		if m.focus == 3 {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%sOrganic  │ %s\n", marker, organic))
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: next field │ ←/→: change option │ enter: next step"
	if m.step == stepCrops {
		hotKeys = "esc: back │ space: toggle │ ←/→: move │ enter: create account"
	}
	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RegisterModel) selectorRow(label, value string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return fmt.Sprintf("%s%-7s│ ← %s →\n", marker, label, value)
}

func (m *RegisterModel) cropsRow() string {
	var b strings.Builder
	marker := "  "
	if m.focus == 0 {
		marker = "> "
	}

	selected := 0
	for _, on := range m.cropsSelected {
		if on {
			selected++
		}
	}

	check := "[ ]"
	if m.cropsSelected[m.cropIdx] {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%sCrops  │ ← %s %s → (%d selected)\n", marker, check, catalog.PopularCrops[m.cropIdx], selected))
	return b.String()
}
