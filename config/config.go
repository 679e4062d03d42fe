package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all drawing systems register on.
const Default ecs.LayerID = ecs.LayerDefault

// Config contains window-level configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// FormationConfig describes the two target layouts a pool can occupy and
// the morph/spin behavior between them.
type FormationConfig struct {
	// Bulk pool counts (scaled by the density setting)
	FoliageCount int
	LightsCount  int

	// Clustered (cone) layout
	ConeHeight   float64 // vertical band, centered on the origin
	ConeRadius   float64 // radius at the bottom of the band
	RadiusJitter float64 // +/- jitter added to the cone radius

	// Dispersed (shell) layout
	ShellRadius    float64 // minimum shell radius
	ShellThickness float64 // random extra radius on top of ShellRadius

	// Lights pool sits on a slightly wider shell so it reads as a
	// separate layer when dispersed.
	LightsShellRadius    float64
	LightsShellThickness float64

	// Morph state machine
	MixRate float64 // exponential convergence rate for the mix scalar, 1/s

	// Whole-pool spin, modulated by the mix scalar (fast when clustered)
	SpinClustered float64 // rad/s at mix = 0
	SpinDispersed float64 // rad/s at mix = 1
}

// OrnamentConfig contains the interactive ornament constants
type OrnamentConfig struct {
	PhotoCount   int // image-bearing ornaments
	ImageSources int // distinct placeholder photos; slot i uses i % ImageSources
	GiftCount    int // extra non-selectable shapes

	// Ornaments use their own, closer dispersal shell so photos stay
	// within comfortable clicking range.
	ShellRadius    float64
	ShellThickness float64

	RestScale     float64 // scale while idle
	FocusScale    float64 // scale while active (zoomed to camera)
	FocusDistance float64 // world units in front of the camera when active

	// Time-constant damping rates (1/s)
	PositionDamping float64
	ScaleDamping    float64
	RotationDamping float64

	PhotoSize float64 // world-space edge length of a photo quad
	GiftSize  float64
}

// RigConfig contains orbit camera behavior configuration
type RigConfig struct {
	StartYaw      float64
	StartPitch    float64
	StartDistance float64

	MinPitch    float64
	MaxPitch    float64
	MinDistance float64
	MaxDistance float64

	OrbitSpeed float64 // rad per dragged pixel
	ZoomStep   float64 // world units per wheel notch
	Damping    float64 // convergence rate toward target yaw/pitch/distance, 1/s

	// Idle auto-rotation, per formation mode
	AutoYawClustered float64 // rad/s
	AutoYawDispersed float64 // rad/s

	FovY float64 // vertical field of view, radians
	Near float64
	Far  float64

	TargetY float64 // look-at height above the origin
}

// RenderConfig contains presentation constants for the projected scene
type RenderConfig struct {
	FoliageDotSize float64 // world-space radius of a foliage particle
	LightDotSize   float64
	MinDotPx       float64 // screen-space clamp for projected dots
	MaxDotPx       float64

	DepthFadeNear float64 // camera distances mapped to full/faded brightness
	DepthFadeFar  float64

	SkyTop    color.RGBA
	SkyBottom color.RGBA

	FoliagePalette []color.RGBA
	LightPalette   []color.RGBA
	GiftPalette    []color.RGBA

	StarColor  color.RGBA
	StarSize   float64
	StarPulse  float64 // pulse amplitude as a fraction of StarSize
	StarPeriod float64 // seconds per pulse cycle
}

// HUDConfig contains overlay/caption configuration
type HUDConfig struct {
	Margin        int
	CaptionColor  color.RGBA
	HintColor     color.RGBA
	HintFadeIn    float64 // seconds
	HintHold      float64
	HintFadeOut   float64
	HintClustered string
	HintDispersed string
}

// SettingsConfig contains the persisted display-settings defaults
type SettingsConfig struct {
	AutoRotate   bool
	ShowHints    bool
	DensityIndex int       // index into DensitySteps
	DensitySteps []float64 // multipliers applied to the bulk pool counts
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowFPS bool
}

var C *Config
var Formation FormationConfig
var Ornament OrnamentConfig
var Rig RigConfig
var Render RenderConfig
var HUD HUDConfig
var Settings SettingsConfig
var Debug DebugConfig

// Shared text colors
var (
	White    = color.RGBA{255, 255, 255, 255}
	Gold     = color.RGBA{255, 214, 120, 255}
	DimWhite = color.RGBA{200, 200, 210, 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		Title:  "christmas tree",
	}

	Formation = FormationConfig{
		FoliageCount: 2200,
		LightsCount:  260,

		ConeHeight:   22.0,
		ConeRadius:   9.0,
		RadiusJitter: 0.55,

		ShellRadius:    16.0,
		ShellThickness: 9.0,

		LightsShellRadius:    19.0,
		LightsShellThickness: 6.0,

		MixRate: 3.0,

		SpinClustered: 0.22,
		SpinDispersed: 0.05,
	}

	Ornament = OrnamentConfig{
		PhotoCount:   12,
		ImageSources: 6,
		GiftCount:    6,

		ShellRadius:    12.5,
		ShellThickness: 4.0,

		RestScale:     1.0,
		FocusScale:    2.8,
		FocusDistance: 8.0,

		PositionDamping: 6.0,
		ScaleDamping:    7.0,
		RotationDamping: 9.0,

		PhotoSize: 2.2,
		GiftSize:  1.5,
	}

	Rig = RigConfig{
		StartYaw:      0.0,
		StartPitch:    0.28,
		StartDistance: 36.0,

		MinPitch:    -1.25,
		MaxPitch:    1.25,
		MinDistance: 14.0,
		MaxDistance: 70.0,

		OrbitSpeed: 0.0075,
		ZoomStep:   2.2,
		Damping:    8.0,

		AutoYawClustered: 0.18,
		AutoYawDispersed: 0.05,

		FovY: 0.872, // ~50 degrees
		Near: 0.1,
		Far:  300.0,

		TargetY: 1.5,
	}

	Render = RenderConfig{
		FoliageDotSize: 0.16,
		LightDotSize:   0.28,
		MinDotPx:       0.7,
		MaxDotPx:       9.0,

		DepthFadeNear: 18.0,
		DepthFadeFar:  70.0,

		SkyTop:    color.RGBA{6, 8, 24, 255},
		SkyBottom: color.RGBA{18, 14, 44, 255},

		FoliagePalette: []color.RGBA{
			{22, 101, 52, 255},
			{34, 139, 70, 255},
			{16, 120, 60, 255},
			{52, 168, 83, 255},
			{10, 80, 40, 255},
		},
		LightPalette: []color.RGBA{
			{255, 214, 120, 255},
			{255, 170, 90, 255},
			{250, 240, 190, 255},
			{255, 120, 120, 255},
			{140, 200, 255, 255},
		},
		GiftPalette: []color.RGBA{
			{200, 60, 70, 255},
			{70, 110, 210, 255},
			{220, 170, 60, 255},
			{120, 70, 180, 255},
		},

		StarColor:  color.RGBA{255, 230, 140, 255},
		StarSize:   0.9,
		StarPulse:  0.25,
		StarPeriod: 1.6,
	}

	HUD = HUDConfig{
		Margin:        12,
		CaptionColor:  DimWhite,
		HintColor:     Gold,
		HintFadeIn:    0.8,
		HintHold:      4.0,
		HintFadeOut:   1.2,
		HintClustered: "drag to orbit - scroll to zoom - space to scatter",
		HintDispersed: "click a photo to bring it closer",
	}

	Settings = SettingsConfig{
		AutoRotate:   true,
		ShowHints:    true,
		DensityIndex: 1,
		DensitySteps: []float64{0.5, 1.0, 1.6},
	}

	Debug = DebugConfig{
		ShowFPS: false,
	}
}
