package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// BasketConfig contains all basket-related configuration values
type BasketConfig struct {
	// Movement speed in pixels per second
	Speed float64

	// Distance from the bottom edge of the play area to the basket's
	// bottom edge
	BottomMargin float64

	// Fallback dimensions used when texture metadata is unavailable
	NativeWidth  float64
	NativeHeight float64
}

// AppleConfig contains falling-object configuration values
type AppleConfig struct {
	// Fall speed in pixels per second (overridden by difficulty)
	FallSpeed float64

	// Fallback dimensions used when texture metadata is unavailable
	NativeWidth  float64
	NativeHeight float64
}

// SpawnConfig contains spawner configuration values
type SpawnConfig struct {
	// Seconds between automatic spawns (overridden by difficulty)
	Interval float64
}

// DifficultyLevel is one selectable spawn/fall-speed preset
type DifficultyLevel struct {
	Name          string
	SpawnInterval float64
	FallSpeed     float64
}

// ScaleConfig contains sprite scaling values
type ScaleConfig struct {
	// Display scale applied to native texture sizes
	Object float64
}

// MenuConfig contains main menu configuration
type MenuConfig struct {
	Title           string
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	ButtonIdleColor color.RGBA
	ButtonOverColor color.RGBA
	TextColor       color.RGBA
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains in-game HUD configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// PopConfig contains catch-effect configuration
type PopConfig struct {
	Duration float64 // seconds
	MaxScale float64 // sprite scale at the end of the pop
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu    bool // Skip the menu and start a game directly
	StrictPhase bool // Panic when the simulation is advanced outside Playing
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Default is the render layer used by every drawer.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Basket BasketConfig
var Apple AppleConfig
var Spawn SpawnConfig
var Scale ScaleConfig
var Menu MenuConfig
var Pause PauseConfig
var HUD HUDConfig
var Pop PopConfig
var Debug DebugConfig

// Difficulties are the selectable presets; DifficultyIndex points at the
// active one and ApplyDifficulty copies it into Spawn and Apple.
var Difficulties []DifficultyLevel
var DifficultyIndex int

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	AppleRed     = color.RGBA{R: 225, G: 50, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 230, A: 255}
	GrassGreen   = color.RGBA{R: 70, G: 140, B: 60, A: 255}
	NightBlue    = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Basket = BasketConfig{
		Speed:        340.0,
		BottomMargin: 12.0,
		NativeWidth:  128.0,
		NativeHeight: 64.0,
	}

	Apple = AppleConfig{
		FallSpeed:    160.0,
		NativeWidth:  64.0,
		NativeHeight: 64.0,
	}

	Spawn = SpawnConfig{
		Interval: 1.75,
	}

	Scale = ScaleConfig{
		Object: 0.5,
	}

	Difficulties = []DifficultyLevel{
		{Name: "Easy", SpawnInterval: 2.25, FallSpeed: 120.0},
		{Name: "Normal", SpawnInterval: 1.75, FallSpeed: 160.0},
		{Name: "Hard", SpawnInterval: 1.1, FallSpeed: 230.0},
	}
	DifficultyIndex = 1

	Menu = MenuConfig{
		Title:           "APPLEFALL",
		BackgroundColor: NightBlue,
		PanelColor:      color.RGBA{R: 30, G: 34, B: 48, A: 255},
		TitleColor:      AppleRed,
		ButtonIdleColor: DarkBlue,
		ButtonOverColor: LightBlue,
		TextColor:       White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"Resume", "Quit to Menu", "Quit"},
		MenuItemHeight:    24.0,
		MenuItemGap:       8.0,
	}

	HUD = HUDConfig{
		Margin:    10.0,
		TextColor: White,
	}

	Pop = PopConfig{
		Duration: 0.35,
		MaxScale: 1.1,
	}

	Debug = DebugConfig{
		SkipMenu:    false,
		StrictPhase: false,
	}
}

// ApplyDifficulty copies the active difficulty preset into the spawn and
// apple configuration.
func ApplyDifficulty() {
	if DifficultyIndex < 0 || DifficultyIndex >= len(Difficulties) {
		DifficultyIndex = 0
	}
	d := Difficulties[DifficultyIndex]
	Spawn.Interval = d.SpawnInterval
	Apple.FallSpeed = d.FallSpeed
}
