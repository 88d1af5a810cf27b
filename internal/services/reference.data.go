package services

import "gpuadvisor/internal/models"

// indexEntry maps a GPU model pattern to its performance index.
// The RTX 3060 is the 1.0 baseline.
type indexEntry struct {
	pattern string
	index   float64
}

// Ordered so that the more specific model names are tried before the
// shorter names they contain ("RTX 4070 TI SUPER" before "RTX 4070").
var performanceIndex = []indexEntry{
	// RTX 40 series
	{"RTX 4090", 2.80},
	{"RTX 4080 SUPER", 2.30},
	{"RTX 4080", 2.15},
	{"RTX 4070 TI SUPER", 1.95},
	{"RTX 4070 TI", 1.80},
	{"RTX 4070 SUPER", 1.65},
	{"RTX 4070", 1.45},
	{"RTX 4060 TI", 1.25},
	{"RTX 4060", 1.10},

	// RTX 30 series
	{"RTX 3090 TI", 1.85},
	{"RTX 3090", 1.75},
	{"RTX 3080 TI", 1.70},
	{"RTX 3080", 1.55},
	{"RTX 3070 TI", 1.30},
	{"RTX 3070", 1.20},
	{"RTX 3060 TI", 1.10},
	{"RTX 3060", 1.00},
	{"RTX 3050", 0.70},

	// RTX 20 series
	{"RTX 2080 TI", 1.20},
	{"RTX 2080 SUPER", 1.05},
	{"RTX 2080", 0.95},
	{"RTX 2070 SUPER", 0.90},
	{"RTX 2070", 0.82},
	{"RTX 2060 SUPER", 0.78},
	{"RTX 2060", 0.70},

	// GTX 16 series
	{"GTX 1660 TI", 0.58},
	{"GTX 1660 SUPER", 0.55},
	{"GTX 1660", 0.50},
	{"GTX 1650 SUPER", 0.45},
	{"GTX 1650", 0.35},

	// GTX 10 series
	{"GTX 1080 TI", 0.85},
	{"GTX 1080", 0.68},
	{"GTX 1070 TI", 0.62},
	{"GTX 1070", 0.55},
	{"GTX 1060", 0.42},
	{"GTX 1050 TI", 0.28},
	{"GTX 1050", 0.22},
}

// Resolution multipliers relative to 1080p
var resolutionFactors = map[string]float64{
	"1280x720":  1.80,
	"1600x900":  1.40,
	"1920x1080": 1.00,
	"2560x1080": 0.85,
	"2560x1440": 0.65,
	"3440x1440": 0.55,
	"3840x2160": 0.35,
	"5120x2160": 0.28,
}

// Quality preset multipliers relative to "high"
var qualityFactors = map[string]float64{
	"low":     2.00,
	"medium":  1.40,
	"high":    1.00,
	"ultra":   0.70,
	"extreme": 0.50,
}

type baselineEntry struct {
	name string
	fps  int
}

// Reference FPS at 1080p High on an RTX 3060
var gameBaselines = []baselineEntry{
	{"Cyberpunk 2077", 55},
	{"Elden Ring", 58},
	{"Red Dead Redemption 2", 52},
	{"Hogwarts Legacy", 50},
	{"God of War Ragnarok", 65},
	{"Baldur's Gate 3", 60},
	{"Starfield", 45},
	{"Alan Wake 2", 40},
	{"Call of Duty: Warzone", 95},
	{"Fortnite", 120},
	{"Counter-Strike 2", 180},
	{"Valorant", 250},
	{"The Witcher 3: Wild Hunt", 80},
	{"GTA V", 100},
	{"Minecraft", 150},
}

const (
	defaultGPUIndex   = 0.50
	defaultGameFPS    = 60
	neutralMultiplier = 1.0
)

// Sweep and search axes. Order is significant.
var (
	sweepQualities    = []string{"low", "medium", "high", "ultra"}
	sweepResolutions  = []string{"1920x1080", "2560x1440", "3840x2160"}
	searchResolutions = []string{"3840x2160", "2560x1440", "1920x1080", "1280x720"}
	searchQualities   = []string{"ultra", "high", "medium", "low"}
	fourKResolutions  = []string{"3840x2160", "5120x2160"}
)

type specEntry struct {
	pattern string
	spec    models.GPUSpec
}

// GPU specifications used to enrich detected devices, same matching order as
// the performance index.
var gpuSpecs = []specEntry{
	{"RTX 4090", models.GPUSpec{CUDACores: 16384, BaseClockMHz: 2235, BoostClockMHz: 2520, Architecture: "Ada Lovelace", Tier: "Enthusiast"}},
	{"RTX 4080 SUPER", models.GPUSpec{CUDACores: 10240, BaseClockMHz: 2290, BoostClockMHz: 2550, Architecture: "Ada Lovelace", Tier: "Enthusiast"}},
	{"RTX 4080", models.GPUSpec{CUDACores: 9728, BaseClockMHz: 2205, BoostClockMHz: 2505, Architecture: "Ada Lovelace", Tier: "Enthusiast"}},
	{"RTX 4070 TI SUPER", models.GPUSpec{CUDACores: 8448, BaseClockMHz: 2340, BoostClockMHz: 2610, Architecture: "Ada Lovelace", Tier: "High-End"}},
	{"RTX 4070 TI", models.GPUSpec{CUDACores: 7680, BaseClockMHz: 2310, BoostClockMHz: 2610, Architecture: "Ada Lovelace", Tier: "High-End"}},
	{"RTX 4070 SUPER", models.GPUSpec{CUDACores: 7168, BaseClockMHz: 1980, BoostClockMHz: 2475, Architecture: "Ada Lovelace", Tier: "High-End"}},
	{"RTX 4070", models.GPUSpec{CUDACores: 5888, BaseClockMHz: 1920, BoostClockMHz: 2475, Architecture: "Ada Lovelace", Tier: "High-End"}},
	{"RTX 4060 TI", models.GPUSpec{CUDACores: 4352, BaseClockMHz: 2310, BoostClockMHz: 2535, Architecture: "Ada Lovelace", Tier: "Mid-Range"}},
	{"RTX 4060", models.GPUSpec{CUDACores: 3072, BaseClockMHz: 1830, BoostClockMHz: 2460, Architecture: "Ada Lovelace", Tier: "Mid-Range"}},
	{"RTX 3090 TI", models.GPUSpec{CUDACores: 10752, BaseClockMHz: 1560, BoostClockMHz: 1860, Architecture: "Ampere", Tier: "Enthusiast"}},
	{"RTX 3090", models.GPUSpec{CUDACores: 10496, BaseClockMHz: 1395, BoostClockMHz: 1695, Architecture: "Ampere", Tier: "Enthusiast"}},
	{"RTX 3080 TI", models.GPUSpec{CUDACores: 10240, BaseClockMHz: 1365, BoostClockMHz: 1665, Architecture: "Ampere", Tier: "Enthusiast"}},
	{"RTX 3080", models.GPUSpec{CUDACores: 8704, BaseClockMHz: 1440, BoostClockMHz: 1710, Architecture: "Ampere", Tier: "High-End"}},
	{"RTX 3070 TI", models.GPUSpec{CUDACores: 6144, BaseClockMHz: 1575, BoostClockMHz: 1770, Architecture: "Ampere", Tier: "High-End"}},
	{"RTX 3070", models.GPUSpec{CUDACores: 5888, BaseClockMHz: 1500, BoostClockMHz: 1725, Architecture: "Ampere", Tier: "High-End"}},
	{"RTX 3060 TI", models.GPUSpec{CUDACores: 4864, BaseClockMHz: 1410, BoostClockMHz: 1670, Architecture: "Ampere", Tier: "Mid-Range"}},
	{"RTX 3060", models.GPUSpec{CUDACores: 3584, BaseClockMHz: 1320, BoostClockMHz: 1777, Architecture: "Ampere", Tier: "Mid-Range"}},
	{"RTX 3050", models.GPUSpec{CUDACores: 2560, BaseClockMHz: 1552, BoostClockMHz: 1777, Architecture: "Ampere", Tier: "Entry"}},
	{"RTX 2080 TI", models.GPUSpec{CUDACores: 4352, BaseClockMHz: 1350, BoostClockMHz: 1545, Architecture: "Turing", Tier: "High-End"}},
	{"RTX 2080 SUPER", models.GPUSpec{CUDACores: 3072, BaseClockMHz: 1650, BoostClockMHz: 1815, Architecture: "Turing", Tier: "High-End"}},
	{"RTX 2080", models.GPUSpec{CUDACores: 2944, BaseClockMHz: 1515, BoostClockMHz: 1710, Architecture: "Turing", Tier: "High-End"}},
	{"RTX 2070 SUPER", models.GPUSpec{CUDACores: 2560, BaseClockMHz: 1605, BoostClockMHz: 1770, Architecture: "Turing", Tier: "Mid-Range"}},
	{"RTX 2070", models.GPUSpec{CUDACores: 2304, BaseClockMHz: 1410, BoostClockMHz: 1620, Architecture: "Turing", Tier: "Mid-Range"}},
	{"RTX 2060 SUPER", models.GPUSpec{CUDACores: 2176, BaseClockMHz: 1470, BoostClockMHz: 1650, Architecture: "Turing", Tier: "Mid-Range"}},
	{"RTX 2060", models.GPUSpec{CUDACores: 1920, BaseClockMHz: 1365, BoostClockMHz: 1680, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1660 TI", models.GPUSpec{CUDACores: 1536, BaseClockMHz: 1500, BoostClockMHz: 1770, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1660 SUPER", models.GPUSpec{CUDACores: 1408, BaseClockMHz: 1530, BoostClockMHz: 1785, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1660", models.GPUSpec{CUDACores: 1408, BaseClockMHz: 1530, BoostClockMHz: 1785, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1650 SUPER", models.GPUSpec{CUDACores: 1280, BaseClockMHz: 1530, BoostClockMHz: 1725, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1650", models.GPUSpec{CUDACores: 896, BaseClockMHz: 1485, BoostClockMHz: 1665, Architecture: "Turing", Tier: "Entry"}},
	{"GTX 1080 TI", models.GPUSpec{CUDACores: 3584, BaseClockMHz: 1480, BoostClockMHz: 1582, Architecture: "Pascal", Tier: "High-End"}},
	{"GTX 1080", models.GPUSpec{CUDACores: 2560, BaseClockMHz: 1607, BoostClockMHz: 1733, Architecture: "Pascal", Tier: "Mid-Range"}},
	{"GTX 1070 TI", models.GPUSpec{CUDACores: 2432, BaseClockMHz: 1607, BoostClockMHz: 1683, Architecture: "Pascal", Tier: "Mid-Range"}},
	{"GTX 1070", models.GPUSpec{CUDACores: 1920, BaseClockMHz: 1506, BoostClockMHz: 1683, Architecture: "Pascal", Tier: "Mid-Range"}},
	{"GTX 1060", models.GPUSpec{CUDACores: 1280, BaseClockMHz: 1506, BoostClockMHz: 1708, Architecture: "Pascal", Tier: "Entry"}},
	{"GTX 1050 TI", models.GPUSpec{CUDACores: 768, BaseClockMHz: 1290, BoostClockMHz: 1392, Architecture: "Pascal", Tier: "Entry"}},
	{"GTX 1050", models.GPUSpec{CUDACores: 640, BaseClockMHz: 1354, BoostClockMHz: 1455, Architecture: "Pascal", Tier: "Entry"}},
}
