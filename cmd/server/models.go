package main

import (
	"math"

	"github.com/hlynes/personagen/persona"
)

// generateRequest is the POST /api/generate body. Pointer fields
// distinguish an absent value, which takes the documented default,
// from an explicit zero.
type generateRequest struct {
	Locale     string `json:"locale"`
	Seed       *int64 `json:"seed"`
	BatchIndex *int   `json:"batch_index"`
	BatchSize  *int   `json:"batch_size"`
	Filter     string `json:"filter"`
}

// generateResponse is the /api/generate envelope.
type generateResponse struct {
	Users      []userView `json:"users"`
	Locale     string     `json:"locale"`
	Seed       int64      `json:"seed"`
	BatchIndex int        `json:"batch_index"`
	BatchSize  int        `json:"batch_size"`
	Count      int        `json:"count"`
	Timestamp  string     `json:"timestamp"`
}

// userView is a record as rendered by the API: coordinates rounded to
// six decimals for presentation, every other field verbatim. Rounding
// happens only here so the engine's full-precision values stay intact
// for exports.
type userView struct {
	Position  int64   `json:"position"`
	FullName  string  `json:"full_name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	HeightCm  int     `json:"height_cm"`
	WeightKg  int     `json:"weight_kg"`
	EyeColor  string  `json:"eye_color"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
}

func viewOf(rec persona.Record) userView {
	return userView{
		Position:  rec.Position,
		FullName:  rec.FullName,
		Address:   rec.Address,
		Latitude:  round6(rec.Latitude),
		Longitude: round6(rec.Longitude),
		HeightCm:  rec.HeightCm,
		WeightKg:  rec.WeightKg,
		EyeColor:  rec.EyeColor,
		Phone:     rec.Phone,
		Email:     rec.Email,
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

type localeView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type localesResponse struct {
	Locales []localeView `json:"locales"`
}

// exportRequest is the POST /api/exports body. Locale and seed default
// like /api/generate; count is required.
type exportRequest struct {
	Locale string `json:"locale"`
	Seed   *int64 `json:"seed"`
	Start  int64  `json:"start"`
	Count  int    `json:"count"`
	Filter string `json:"filter"`
}
