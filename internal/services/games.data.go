package services

import "gpuadvisor/internal/models"

// Built-in games database, in reference order.
var builtinGames = []models.GameRequirements{
	{
		Name: "Cyberpunk 2077", MinimumVRAMMB: 3072, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 970", RecommendedGPU: "RTX 2060",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2020, Engine: "REDengine 4", Optimization: "good",
		Settings: []string{
			"Quality Preset", "Ray Tracing", "DLSS", "FSR", "Crowd Density",
			"Shadow Quality", "Reflection Quality", "Ambient Occlusion",
			"Screen Space Reflections", "Volumetric Fog", "Cascaded Shadows",
		},
		Executables: []string{"Cyberpunk2077.exe"},
	},
	{
		Name: "Elden Ring", MinimumVRAMMB: 3072, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 1060", RecommendedGPU: "RTX 3060",
		SupportsRayTrace: true,
		ReleaseYear:      2022, Engine: "FromSoftware Engine", Optimization: "average",
		Settings: []string{
			"Quality Preset", "Texture Quality", "Antialiasing Quality",
			"SSAO", "Depth of Field", "Motion Blur", "Shadow Quality",
			"Lighting Quality", "Effects Quality", "Volumetric Quality",
			"Reflection Quality", "Water Surface Quality", "Shader Quality",
			"Global Illumination Quality", "Grass Quality",
		},
		Executables: []string{"eldenring.exe"},
	},
	{
		Name: "Red Dead Redemption 2", MinimumVRAMMB: 2048, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 770", RecommendedGPU: "RTX 2070",
		SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2019, Engine: "RAGE", Optimization: "good",
		Settings: []string{
			"Quality Preset", "Texture Quality", "Anisotropic Filtering",
			"Lighting Quality", "Global Illumination Quality", "Shadow Quality",
			"Far Shadow Quality", "Screen Space Ambient Occlusion",
			"Reflection Quality", "Mirror Quality", "Water Quality",
			"Volumetrics Quality", "Particle Quality", "Tessellation Quality",
			"TAA", "FXAA", "MSAA",
		},
		Executables: []string{"RDR2.exe"},
	},
	{
		Name: "Hogwarts Legacy", MinimumVRAMMB: 4096, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 960", RecommendedGPU: "RTX 3070",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2023, Engine: "Unreal Engine 4", Optimization: "average",
		Settings: []string{
			"Quality Preset", "Ray Tracing Reflections", "Ray Tracing Shadows",
			"Ray Tracing Ambient Occlusion", "DLSS", "FSR", "Effects Quality",
			"Material Quality", "Fog Quality", "Sky Quality", "Foliage Quality",
			"Post Process Quality", "Shadow Quality", "Texture Quality",
			"View Distance Quality", "Population Quality",
		},
		Executables: []string{"HogwartsLegacy.exe"},
	},
	{
		Name: "God of War Ragnarok", MinimumVRAMMB: 4096, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 1070", RecommendedGPU: "RTX 3070",
		SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2024, Engine: "Santa Monica Studio Engine", Optimization: "excellent",
		Settings: []string{
			"Graphics Preset", "Texture Quality", "Model Quality",
			"Anisotropic Filter", "Shadows", "Reflections", "Atmospherics",
			"Ambient Occlusion", "DLSS", "FSR",
		},
		Executables: []string{"GoWR.exe"},
	},
	{
		Name: "Baldur's Gate 3", MinimumVRAMMB: 4096, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 970", RecommendedGPU: "RTX 3060",
		SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2023, Engine: "Divinity Engine 4.0", Optimization: "good",
		Settings: []string{
			"Overall Preset", "Model Quality", "Detail Distance",
			"Instance Distance", "Texture Quality", "Texture Filtering",
			"Animation LOD Distance", "Slow HDD Mode", "Shadow Quality",
			"Cloud Quality", "Fog Quality", "God Rays", "Bloom", "Depth of Field",
			"DLSS", "FSR", "Antialiasing",
		},
		Executables: []string{"bg3.exe", "bg3_dx11.exe"},
	},
	{
		Name: "Starfield", MinimumVRAMMB: 6144, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 1070 Ti", RecommendedGPU: "RTX 2080",
		SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2023, Engine: "Creation Engine 2", Optimization: "poor",
		Settings: []string{
			"Render Resolution Scale", "Shadow Quality", "Indirect Lighting",
			"Reflections", "Particle Quality", "Volumetric Lighting",
			"Crowd Density", "Motion Blur", "GTAO", "Grass Quality",
			"Contact Shadows", "VSync", "Upscaling", "Film Grain",
			"Enable VRS",
		},
		Executables: []string{"Starfield.exe"},
	},
	{
		Name: "Alan Wake 2", MinimumVRAMMB: 6144, RecommendedVRAMMB: 16384,
		MinimumGPU: "RTX 2060", RecommendedGPU: "RTX 4070",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2023, Engine: "Northlight Engine", Optimization: "average",
		Settings: []string{
			"Quality Preset", "Texture Resolution", "Shadow Resolution",
			"Global Reflections", "Volumetric Lighting", "Fog Quality",
			"Global Illumination", "Post Process", "Ray Traced Reflections",
			"DLSS", "FSR", "XeSS",
		},
		Executables: []string{"AlanWake2.exe"},
	},
	{
		Name: "Call of Duty: Warzone", MinimumVRAMMB: 4096, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 970", RecommendedGPU: "RTX 3060",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2020, Engine: "IW Engine", Optimization: "good",
		Settings: []string{
			"Render Resolution", "Dynamic Resolution", "Upscaling",
			"VRAM Scale Target", "Texture Resolution", "Texture Filter",
			"Nearby LOD", "Distant LOD", "Clutter Draw Distance",
			"Particle Quality", "Bullet Impacts", "Shader Quality",
			"Tessellation", "On-Demand Texture Streaming", "Shadow Quality",
			"Screen Space Shadows", "Ambient Occlusion", "Screen Space Reflections",
			"Static Reflection Quality", "Weather Grid Volumes", "Water Quality",
		},
		Executables: []string{"cod.exe"},
	},
	{
		Name: "Fortnite", MinimumVRAMMB: 2048, RecommendedVRAMMB: 4096,
		MinimumGPU: "GTX 660", RecommendedGPU: "RTX 2060",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2017, Engine: "Unreal Engine 5", Optimization: "excellent",
		Settings: []string{
			"Quality Preset", "3D Resolution", "View Distance", "Shadows",
			"Anti-Aliasing", "Textures", "Effects", "Post Processing",
			"Ray Tracing", "DLSS", "FSR",
		},
		Executables: []string{"FortniteClient-Win64-Shipping.exe"},
	},
	{
		Name: "Counter-Strike 2", MinimumVRAMMB: 1024, RecommendedVRAMMB: 4096,
		MinimumGPU: "GTX 650", RecommendedGPU: "RTX 2060",
		ReleaseYear: 2023, Engine: "Source 2", Optimization: "excellent",
		Settings: []string{
			"Global Shadow Quality", "Model/Texture Detail", "Texture Filtering",
			"Shader Detail", "Particle Detail", "Ambient Occlusion",
			"High Dynamic Range", "FidelityFX Super Resolution", "NVIDIA Reflex",
		},
		Executables: []string{"cs2.exe", "cs2"},
	},
	{
		Name: "Valorant", MinimumVRAMMB: 1024, RecommendedVRAMMB: 4096,
		MinimumGPU: "GT 730", RecommendedGPU: "GTX 1050 Ti",
		ReleaseYear: 2020, Engine: "Unreal Engine 4", Optimization: "excellent",
		Settings: []string{
			"Material Quality", "Texture Quality", "Detail Quality",
			"UI Quality", "Vignette", "VSync", "Anti-Aliasing",
			"Anisotropic Filtering", "Improve Clarity", "Bloom",
			"Distortion", "Cast Shadows",
		},
		Executables: []string{"VALORANT-Win64-Shipping.exe"},
	},
	{
		Name: "The Witcher 3: Wild Hunt", MinimumVRAMMB: 2048, RecommendedVRAMMB: 8192,
		MinimumGPU: "GTX 660", RecommendedGPU: "RTX 3070",
		SupportsRayTrace: true, SupportsDLSS: true, SupportsFSR: true,
		ReleaseYear: 2015, Engine: "REDengine 3", Optimization: "excellent",
		Settings: []string{
			"Graphics Preset", "Post Processing", "Motion Blur",
			"Blur", "Anti-Aliasing", "Bloom", "Sharpening", "Ambient Occlusion",
			"Depth of Field", "Chromatic Aberration", "Vignetting",
			"Light Shafts", "Detail Level", "Shadow Quality", "Terrain Quality",
			"Water Quality", "Foliage Visibility Range", "Grass Density",
			"Texture Quality", "Number of Background Characters",
			"Ray Tracing", "DLSS",
		},
		Executables: []string{"witcher3.exe"},
	},
	{
		Name: "GTA V", MinimumVRAMMB: 1024, RecommendedVRAMMB: 4096,
		MinimumGPU: "GTX 660", RecommendedGPU: "GTX 1060",
		ReleaseYear: 2015, Engine: "RAGE", Optimization: "excellent",
		Settings: []string{
			"FXAA", "MSAA", "TXAA", "Population Density", "Population Variety",
			"Distance Scaling", "Texture Quality", "Shader Quality",
			"Shadow Quality", "Reflection Quality", "Reflection MSAA",
			"Water Quality", "Particles Quality", "Grass Quality",
			"Post FX", "Anisotropic Filtering", "Ambient Occlusion",
			"Tessellation", "Long Shadows", "High Resolution Shadows",
			"High Detail Streaming While Flying", "Extended Distance Scaling",
			"Extended Shadows Distance",
		},
		Executables: []string{"GTA5.exe"},
	},
	{
		Name: "Minecraft", MinimumVRAMMB: 512, RecommendedVRAMMB: 4096,
		MinimumGPU: "Intel HD 4000", RecommendedGPU: "RTX 2060",
		SupportsRayTrace: true, SupportsDLSS: true,
		ReleaseYear: 2011, Engine: "Java/Bedrock Engine", Optimization: "average",
		Settings: []string{
			"Graphics", "Render Distance", "Simulation Distance",
			"Max Framerate", "View Bobbing", "GUI Scale", "Brightness",
			"Clouds", "Particles", "Smooth Lighting", "Biome Blend",
			"Entity Shadows", "Entity Distance", "FOV Effects", "Darkness Pulsing",
			"Ray Tracing",
		},
		Executables: []string{"Minecraft.Windows.exe"},
	},
}

// Games used by the multi-game comparison when no title is given
var DefaultComparisonGames = []string{"Cyberpunk 2077", "Fortnite", "Counter-Strike 2", "Elden Ring"}
