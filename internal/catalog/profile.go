// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package catalog holds the static reference data compiled into the binary:
// profile option lists shown during registration and the directory of
// government support schemes.
package catalog

// DefaultLanguage is applied when a registration omits the language field.
const DefaultLanguage = "Hindi"

// Languages lists the supported interface locales.
var Languages = []string{
	"Hindi",
	"English",
	"Punjabi",
	"Marathi",
	"Gujarati",
}

// SoilTypes lists the soil classifications selectable on the farm form.
var SoilTypes = []string{
	"Black Soil",
	"Red Soil",
	"Alluvial Soil",
	"Sandy Soil",
	"Clay Soil",
	"Loamy Soil",
	"Saline Soil",
	"Peaty Soil",
}

// FarmTypes lists the farm operation categories.
var FarmTypes = []string{
	"Crop Farming",
	"Livestock Farming",
	"Mixed Farming",
	"Organic Farming",
	"Dairy Farming",
	"Poultry Farming",
}

// IrrigationTypes lists the irrigation methods.
var IrrigationTypes = []string{
	"Rain-fed",
	"Drip Irrigation",
	"Sprinkler Irrigation",
	"Flood Irrigation",
	"Canal Irrigation",
	"Tube Well",
}

// PopularCrops lists the crop labels offered as primary-crop choices.
// The emoji prefix is part of the stored label.
var PopularCrops = []string{
	"🌾 Wheat",
	"🌾 Rice",
	"🌽 Maize",
	"☁️ Cotton",
	"🎋 Sugarcane",
	"🫘 Soybean",
	"🌻 Sunflower",
	"🥔 Potato",
	"🍅 Tomato",
	"🧅 Onion",
	"🌶️ Chili",
	"🟡 Turmeric",
}

// FarmingSeasons lists the cropping season choices.
var FarmingSeasons = []string{"Kharif", "Rabi", "Both"}

// IsSupportedLanguage reports whether lang is one of the supported locales.
func IsSupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
