// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kisaanlabs/kisaan-setu/internal/catalog"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/models"
)

type homeScreen int

const (
	screenHome homeScreen = iota
	screenProfile
	screenWeather
	screenSchemes
	screenSchemeDetail
	screenCalculator
)

type calcStage int

const (
	calcStageCosts calcStage = iota
	calcStageRevenue
	calcStageResult
)

const (
	calcCostFieldCount    = 6
	calcRevenueFieldCount = 2
)

var homeMenuItems = []string{
	"My profile",
	"Weather and advice",
	"Government schemes",
	"Profit calculator",
	"Sign out",
}

// mainLoopModel is the Bubble Tea model of the signed-in part of the
// application: a home menu fanning out into the profile, weather, schemes
// and calculator screens. Quit and sign-out both end the program; the logout
// flag tells the caller which one happened.
type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	user     models.UserRecord

	screen  homeScreen
	menuIdx int

	weather        models.WeatherReport
	weatherLoaded  bool
	weatherLoading bool

	schemes   []models.Scheme
	schemeIdx int

	calcStage     calcStage
	costInputs    []textinput.Model
	revenueInputs []textinput.Model
	calcFocus     int
	calcResult    models.ProfitResult

	signingOut bool
	status     string
	errMsg     string
	logout     bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, user models.UserRecord) mainLoopModel {
	costs := make([]textinput.Model, calcCostFieldCount)
	for i, placeholder := range []string{"seeds (₹)", "fertilizer (₹)", "pesticide (₹)", "labor (₹)", "machinery (₹)", "other (₹)"} {
		costs[i] = textinput.New()
		costs[i].Placeholder = placeholder
		costs[i].Width = 16
	}
	costs[0].Focus()

	revenue := make([]textinput.Model, calcRevenueFieldCount)
	for i, placeholder := range []string{"harvest (quintals)", "market price (₹/quintal)"} {
		revenue[i] = textinput.New()
		revenue[i].Placeholder = placeholder
		revenue[i].Width = 24
	}

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		user:          user,
		schemes:       catalog.Schemes(),
		costInputs:    costs,
		revenueInputs: revenue,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weatherLoadedMsg:
		m.weatherLoading = false
		m.errMsg = ""
		m.weather = msg.report
		m.weatherLoaded = true
		return m, nil
	case signOutDoneMsg:
		m.signingOut = false
		if msg.err != nil {
			// The session is already gone from memory, so leave anyway.
			m.errMsg = fmt.Sprintf("Sign out finished with a storage error: %v", msg.err)
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenCalculator {
			return m.updateCalculatorInputs(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.screen {
	case screenHome:
		return m.updateHome(keyMsg)
	case screenProfile:
		return m.updateProfile(keyMsg)
	case screenWeather:
		return m.updateWeather(keyMsg)
	case screenSchemes:
		return m.updateSchemes(keyMsg)
	case screenSchemeDetail:
		return m.updateSchemeDetail(keyMsg)
	case screenCalculator:
		return m.updateCalculator(keyMsg)
	}
	return m, nil
}

func (m mainLoopModel) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(homeMenuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		m.errMsg = ""
		switch m.menuIdx {
		case 0:
			m.screen = screenProfile
		case 1:
			m.screen = screenWeather
			if !m.weatherLoaded && !m.weatherLoading {
				m.weatherLoading = true
				return m, m.cmdLoadWeather()
			}
		case 2:
			m.screen = screenSchemes
		case 3:
			m.screen = screenCalculator
		case 4:
			if m.signingOut {
				return m, nil
			}
			m.signingOut = true
			return m, m.cmdSignOut()
		}
	}
	return m, nil
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.status = ""
		m.screen = screenHome
	case key.Matches(keyMsg, keys.copyEmail):
		return m.copyToClipboard(m.user.Email, "Email copied")
	case key.Matches(keyMsg, keys.copyPhone):
		return m.copyToClipboard(m.user.Phone, "Phone copied")
	}
	return m, nil
}

func (m mainLoopModel) copyToClipboard(value, doneStatus string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" {
		m.status = "Nothing to copy"
		return m, nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.errMsg = ""
	m.status = doneStatus
	return m, nil
}

func (m mainLoopModel) updateWeather(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
	case key.Matches(keyMsg, keys.refresh):
		if m.weatherLoading {
			return m, nil
		}
		m.weatherLoading = true
		m.errMsg = ""
		return m, m.cmdLoadWeather()
	}
	return m, nil
}

func (m mainLoopModel) updateSchemes(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.schemeIdx > 0 {
			m.schemeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.schemeIdx < len(m.schemes)-1 {
			m.schemeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.schemes) > 0 {
			m.screen = screenSchemeDetail
		}
	}
	return m, nil
}

func (m mainLoopModel) updateSchemeDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc) {
		m.screen = screenSchemes
	}
	return m, nil
}

func (m mainLoopModel) updateCalculator(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenHome
		return m, nil
	case "x":
		m.services.CalculatorService.Reset()
		m.resetCalculator()
		return m, nil
	case "tab", "down":
		m.moveCalcFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveCalcFocus(-1)
		return m, nil
	case "enter":
		switch m.calcStage {
		case calcStageCosts:
			m.services.CalculatorService.TotalCost(m.collectCosts())
			m.calcStage = calcStageRevenue
			m.calcFocus = 0
			m.syncCalcFocus()
		case calcStageRevenue:
			quantity := parseAmount(m.revenueInputs[0].Value())
			price := parseAmount(m.revenueInputs[1].Value())
			result, err := m.services.CalculatorService.Profit(quantity, price)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.calcResult = result
			m.calcStage = calcStageResult
		}
		return m, nil
	}

	return m.updateCalculatorInputs(keyMsg)
}

func (m mainLoopModel) updateCalculatorInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.calcStage {
	case calcStageCosts:
		m.costInputs[m.calcFocus], cmd = m.costInputs[m.calcFocus].Update(msg)
	case calcStageRevenue:
		m.revenueInputs[m.calcFocus], cmd = m.revenueInputs[m.calcFocus].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) moveCalcFocus(delta int) {
	count := calcCostFieldCount
	if m.calcStage == calcStageRevenue {
		count = calcRevenueFieldCount
	}
	if m.calcStage == calcStageResult {
		return
	}
	m.calcFocus = (m.calcFocus + delta + count) % count
	m.syncCalcFocus()
}

func (m *mainLoopModel) syncCalcFocus() {
	for i := range m.costInputs {
		m.costInputs[i].Blur()
	}
	for i := range m.revenueInputs {
		m.revenueInputs[i].Blur()
	}
	switch m.calcStage {
	case calcStageCosts:
		m.costInputs[m.calcFocus].Focus()
	case calcStageRevenue:
		m.revenueInputs[m.calcFocus].Focus()
	}
}

func (m *mainLoopModel) resetCalculator() {
	for i := range m.costInputs {
		m.costInputs[i].SetValue("")
	}
	for i := range m.revenueInputs {
		m.revenueInputs[i].SetValue("")
	}
	m.calcStage = calcStageCosts
	m.calcFocus = 0
	m.calcResult = models.ProfitResult{}
	m.errMsg = ""
	m.syncCalcFocus()
}

func (m mainLoopModel) collectCosts() models.CultivationCosts {
	return models.CultivationCosts{
		Seed:       parseAmount(m.costInputs[0].Value()),
		Fertilizer: parseAmount(m.costInputs[1].Value()),
		Pesticide:  parseAmount(m.costInputs[2].Value()),
		Labor:      parseAmount(m.costInputs[3].Value()),
		Machinery:  parseAmount(m.costInputs[4].Value()),
		Other:      parseAmount(m.costInputs[5].Value()),
	}
}

// parseAmount treats blank or malformed numbers as zero so a half-filled
// form still calculates.
func parseAmount(v string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func (m mainLoopModel) cmdLoadWeather() tea.Cmd {
	ctx := m.ctx
	weather := m.services.WeatherService
	city := m.user.Location

	return func() tea.Msg {
		return weatherLoadedMsg{report: weather.ReportByCity(ctx, city)}
	}
}

func (m mainLoopModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return signOutDoneMsg{err: auth.SignOut(ctx)}
	}
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenProfile:
		return m.viewProfile()
	case screenWeather:
		return m.viewWeather()
	case screenSchemes:
		return m.viewSchemes()
	case screenSchemeDetail:
		return m.viewSchemeDetail()
	case screenCalculator:
		return m.viewCalculator()
	}
	return m.viewHome()
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Welcome, %s!\n\n", m.user.Name))
	for i, item := range homeMenuItems {
		marker := "  "
		if i == m.menuIdx {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(item)
		b.WriteString("\n")
	}

	b.WriteString(m.statusBlock())
	return renderPage("KISAAN SETU 🌾", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: move │ q: quit")
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Personal"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Name       │ %s\n", valueOrDash(m.user.Name)))
	b.WriteString(fmt.Sprintf("Email      │ %s\n", valueOrDash(m.user.Email)))
	b.WriteString(fmt.Sprintf("Phone      │ %s\n", valueOrDash(m.user.Phone)))
	b.WriteString(fmt.Sprintf("Language   │ %s\n", valueOrDash(m.user.Language)))
	b.WriteString(fmt.Sprintf("Member since │ %s\n", valueOrDash(m.user.CreatedAt)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Farm"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Farm       │ %s\n", valueOrDash(m.user.FarmName)))
	b.WriteString(fmt.Sprintf("Size       │ %s\n", valueOrDash(m.user.FarmSize)))
	b.WriteString(fmt.Sprintf("Location   │ %s\n", valueOrDash(m.user.Location)))
	b.WriteString(fmt.Sprintf("Soil       │ %s\n", valueOrDash(m.user.SoilType)))
	b.WriteString(fmt.Sprintf("Type       │ %s\n", valueOrDash(m.user.FarmType)))
	b.WriteString(fmt.Sprintf("Experience │ %s\n", valueOrDash(m.user.FarmingExperience)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Crops"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Crops      │ %s\n", valueOrDash(strings.Join(m.user.PrimaryCrops, ", "))))
	b.WriteString(fmt.Sprintf("Season     │ %s\n", valueOrDash(m.user.FarmingSeason)))
	b.WriteString(fmt.Sprintf("Irrigation │ %s\n", valueOrDash(m.user.IrrigationType)))
	organic := "No"
	if m.user.OrganicFarming {
		organic = "Yes"
	}
	b.WriteString(fmt.Sprintf("Organic    │ %s\n", organic))

	b.WriteString(m.statusBlock())
	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ c: copy email │ u: copy phone")
}

func (m mainLoopModel) viewWeather() string {
	var b strings.Builder

	switch {
	case m.weatherLoading:
		b.WriteString("[Loading weather...]\n")
	case !m.weatherLoaded:
		b.WriteString("No weather data yet, press r to load.\n")
	default:
		report := m.weather
		b.WriteString(fmt.Sprintf("%s, %s\n\n", report.Location.Name, report.Location.Country))
		b.WriteString(fmt.Sprintf("Now        │ %d°C (feels like %d°C), %s\n", report.Current.Temperature, report.Current.FeelsLike, report.Current.Description))
		b.WriteString(fmt.Sprintf("Humidity   │ %d%%\n", report.Current.Humidity))
		b.WriteString(fmt.Sprintf("Wind       │ %.1f m/s\n", report.Current.WindSpeed))
		b.WriteString(fmt.Sprintf("Pressure   │ %d hPa\n", report.Current.Pressure))
		b.WriteString(fmt.Sprintf("Visibility │ %.1f km\n", report.Current.Visibility))
		b.WriteString("\n")

		if len(report.Forecast) > 0 {
			b.WriteString(sectionStyle.Render("Forecast"))
			b.WriteString("\n")
			for _, entry := range report.Forecast {
				b.WriteString(fmt.Sprintf("%s │ %d..%d°C │ %s\n", entry.Date.Format("Mon 15:04"), entry.TempMin, entry.TempMax, entry.Description))
			}
			b.WriteString("\n")
		}

		b.WriteString(sectionStyle.Render("Farming advice"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Crops      │ %s\n", report.Advice.CropSuitability))
		irrigation := "not needed"
		if report.Advice.IrrigationNeeded {
			irrigation = "needed"
		}
		b.WriteString(fmt.Sprintf("Irrigation │ %s\n", irrigation))
		b.WriteString(fmt.Sprintf("Pest risk  │ %s\n", report.Advice.PestRisk))
		b.WriteString(fmt.Sprintf("Harvest    │ %s\n", report.Advice.HarvestRecommendation))

		switch report.Source {
		case "cached":
			b.WriteString("\nShowing the last saved report, live data is unavailable.\n")
		case "fallback":
			b.WriteString("\nShowing sample data, live data is unavailable.\n")
		}
	}

	b.WriteString(m.statusBlock())
	return renderPage("WEATHER", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh")
}

func (m mainLoopModel) viewSchemes() string {
	var b strings.Builder

	for i, scheme := range m.schemes {
		marker := "  "
		if i == m.schemeIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s │ %s\n", marker, scheme.Name, fitText(scheme.ShortDescription, 48)))
	}

	b.WriteString(m.statusBlock())
	return renderPage("GOVERNMENT SCHEMES", strings.TrimRight(b.String(), "\n"), "enter: details │ ↑/↓: move │ esc: back")
}

func (m mainLoopModel) viewSchemeDetail() string {
	scheme := m.schemes[m.schemeIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Category │ %s\n", scheme.Category))
	b.WriteString(fmt.Sprintf("Status   │ %s\n\n", scheme.Status))
	b.WriteString(scheme.FullDescription)
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Benefits"))
	b.WriteString("\n")
	for _, benefit := range scheme.Benefits {
		b.WriteString("• " + benefit + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Eligibility"))
	b.WriteString("\n")
	for _, rule := range scheme.Eligibility {
		b.WriteString("• " + rule + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Documents"))
	b.WriteString("\n")
	for _, doc := range scheme.Documents {
		b.WriteString("• " + doc + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Apply at │ %s\n", scheme.ApplyLink))

	return renderPage(strings.ToUpper(scheme.Name), strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m mainLoopModel) viewCalculator() string {
	var b strings.Builder

	switch m.calcStage {
	case calcStageCosts:
		b.WriteString(sectionStyle.Render("Step 1: cultivation costs"))
		b.WriteString("\n\n")
		labels := []string{"Seeds", "Fertilizer", "Pesticide", "Labor", "Machinery", "Other"}
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", label, m.costInputs[i].View()))
		}
	case calcStageRevenue:
		b.WriteString(sectionStyle.Render("Step 2: expected revenue"))
		b.WriteString("\n\n")
		labels := []string{"Harvest", "Price"}
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", label, m.revenueInputs[i].View()))
		}
	case calcStageResult:
		result := m.calcResult
		b.WriteString(fmt.Sprintf("Total cost │ %s\n", rupees(result.TotalCost)))
		b.WriteString(fmt.Sprintf("Revenue    │ %s\n\n", rupees(result.TotalRevenue)))

		switch result.Outcome {
		case models.OutcomeProfit:
			b.WriteString(profitStyle.Render(fmt.Sprintf("Profit: %s 🎉", rupees(result.ProfitLoss))))
			b.WriteString("\nGood margin, consider selling in stages to catch price peaks.")
		case models.OutcomeLoss:
			b.WriteString(lossStyle.Render(fmt.Sprintf("Loss: %s", rupees(-result.ProfitLoss))))
			b.WriteString("\nReview input costs and check mandi prices before selling.")
		default:
			b.WriteString("Break even. Even a small price improvement turns this into profit.")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.statusBlock())

	hotKeys := "enter: calculate │ tab: next field │ x: start over │ esc: back"
	if m.calcStage == calcStageResult {
		hotKeys = "x: start over │ esc: back"
	}
	return renderPage("PROFIT CALCULATOR", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) statusBlock() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[" + m.status + "]"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
