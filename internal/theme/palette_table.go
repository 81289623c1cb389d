package theme

import "image/color"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// basePalettes holds the hand-picked roles of each period. Derived roles are
// filled in by PaletteFor.
var basePalettes = [periodCount]Palette{
	DeepNight: {
		Primary:            rgb(139, 92, 246),
		OnPrimary:          rgb(76, 29, 149),
		PrimaryContainer:   rgb(59, 33, 108),
		OnPrimaryContainer: rgb(216, 180, 254),
		Secondary:          rgb(96, 165, 250),
		OnSecondary:        rgb(30, 58, 138),
		SecondaryContainer: rgb(30, 64, 175),
		Surface:            rgb(17, 24, 39),
		OnSurface:          rgb(229, 231, 235),
		SurfaceVariant:     rgb(31, 41, 55),
		OnSurfaceVariant:   rgb(209, 213, 219),
		Background:         rgb(3, 7, 18),
		OnBackground:       rgb(243, 244, 246),
		Outline:            rgb(55, 65, 81),
		OutlineVariant:     rgb(75, 85, 99),
		Error:              rgb(239, 68, 68),
		Success:            rgb(34, 197, 94),
		Warning:            rgb(251, 146, 60),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(243, 244, 246),
		TextSecondary:      rgb(156, 163, 175),
	},
	LateNight: {
		Primary:            rgb(124, 58, 237),
		OnPrimary:          rgb(67, 20, 149),
		PrimaryContainer:   rgb(76, 29, 149),
		OnPrimaryContainer: rgb(221, 214, 254),
		Secondary:          rgb(79, 70, 229),
		OnSecondary:        rgb(30, 27, 75),
		SecondaryContainer: rgb(49, 46, 129),
		Surface:            rgb(24, 24, 27),
		OnSurface:          rgb(228, 228, 231),
		SurfaceVariant:     rgb(39, 39, 42),
		OnSurfaceVariant:   rgb(212, 212, 216),
		Background:         rgb(9, 9, 11),
		OnBackground:       rgb(244, 244, 245),
		Outline:            rgb(63, 63, 70),
		OutlineVariant:     rgb(82, 82, 91),
		Error:              rgb(248, 113, 113),
		Success:            rgb(52, 211, 153),
		Warning:            rgb(251, 191, 36),
		Info:               rgb(96, 165, 250),
		TextPrimary:        rgb(244, 244, 245),
		TextSecondary:      rgb(161, 161, 170),
	},
	PreDawn: {
		Primary:            rgb(99, 102, 241),
		OnPrimary:          rgb(238, 242, 255),
		PrimaryContainer:   rgb(67, 56, 202),
		OnPrimaryContainer: rgb(224, 231, 255),
		Secondary:          rgb(147, 51, 234),
		OnSecondary:        rgb(250, 245, 255),
		SecondaryContainer: rgb(107, 33, 168),
		Surface:            rgb(30, 41, 59),
		OnSurface:          rgb(241, 245, 249),
		SurfaceVariant:     rgb(51, 65, 85),
		OnSurfaceVariant:   rgb(226, 232, 240),
		Background:         rgb(15, 23, 42),
		OnBackground:       rgb(248, 250, 252),
		Outline:            rgb(71, 85, 105),
		OutlineVariant:     rgb(100, 116, 139),
		Error:              rgb(252, 165, 165),
		Success:            rgb(74, 222, 128),
		Warning:            rgb(253, 224, 71),
		Info:               rgb(125, 211, 252),
		TextPrimary:        rgb(248, 250, 252),
		TextSecondary:      rgb(203, 213, 225),
	},
	Dawn: {
		Primary:            rgb(251, 146, 60),
		OnPrimary:          rgb(67, 20, 7),
		PrimaryContainer:   rgb(194, 65, 12),
		OnPrimaryContainer: rgb(255, 237, 213),
		Secondary:          rgb(236, 72, 153),
		OnSecondary:        rgb(80, 7, 36),
		SecondaryContainer: rgb(157, 23, 77),
		Surface:            rgb(51, 65, 85),
		OnSurface:          rgb(248, 250, 252),
		SurfaceVariant:     rgb(71, 85, 105),
		OnSurfaceVariant:   rgb(241, 245, 249),
		Background:         rgb(30, 41, 59),
		OnBackground:       rgb(255, 251, 235),
		Outline:            rgb(100, 116, 139),
		OutlineVariant:     rgb(148, 163, 184),
		Error:              rgb(239, 68, 68),
		Success:            rgb(52, 211, 153),
		Warning:            rgb(251, 191, 36),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(255, 251, 235),
		TextSecondary:      rgb(254, 215, 170),
	},
	EarlyMorning: {
		Primary:            rgb(249, 115, 22),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(255, 237, 213),
		OnPrimaryContainer: rgb(124, 45, 18),
		Secondary:          rgb(234, 88, 12),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(254, 243, 199),
		Surface:            rgb(254, 252, 232),
		OnSurface:          rgb(28, 25, 23),
		SurfaceVariant:     rgb(255, 251, 235),
		OnSurfaceVariant:   rgb(68, 64, 60),
		Background:         rgb(255, 248, 225),
		OnBackground:       rgb(41, 37, 36),
		Outline:            rgb(231, 229, 228),
		OutlineVariant:     rgb(214, 211, 209),
		Error:              rgb(220, 38, 38),
		Success:            rgb(22, 163, 74),
		Warning:            rgb(245, 158, 11),
		Info:               rgb(37, 99, 235),
		TextPrimary:        rgb(28, 25, 23),
		TextSecondary:      rgb(87, 83, 78),
	},
	LateMorning: {
		Primary:            rgb(251, 191, 36),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(254, 249, 195),
		OnPrimaryContainer: rgb(113, 63, 18),
		Secondary:          rgb(34, 197, 94),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(220, 252, 231),
		Surface:            rgb(255, 255, 255),
		OnSurface:          rgb(23, 23, 23),
		SurfaceVariant:     rgb(254, 252, 232),
		OnSurfaceVariant:   rgb(82, 82, 82),
		Background:         rgb(254, 252, 232),
		OnBackground:       rgb(38, 38, 38),
		Outline:            rgb(229, 229, 229),
		OutlineVariant:     rgb(212, 212, 212),
		Error:              rgb(239, 68, 68),
		Success:            rgb(34, 197, 94),
		Warning:            rgb(251, 146, 60),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(23, 23, 23),
		TextSecondary:      rgb(115, 115, 115),
	},
	Noon: {
		Primary:            rgb(14, 165, 233),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(224, 242, 254),
		OnPrimaryContainer: rgb(7, 89, 133),
		Secondary:          rgb(6, 182, 212),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(207, 250, 254),
		Surface:            rgb(255, 255, 255),
		OnSurface:          rgb(15, 23, 42),
		SurfaceVariant:     rgb(240, 249, 255),
		OnSurfaceVariant:   rgb(71, 85, 105),
		Background:         rgb(248, 250, 252),
		OnBackground:       rgb(30, 41, 59),
		Outline:            rgb(226, 232, 240),
		OutlineVariant:     rgb(203, 213, 225),
		Error:              rgb(239, 68, 68),
		Success:            rgb(16, 185, 129),
		Warning:            rgb(245, 158, 11),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(15, 23, 42),
		TextSecondary:      rgb(100, 116, 139),
	},
	Afternoon: {
		Primary:            rgb(6, 182, 212),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(207, 250, 254),
		OnPrimaryContainer: rgb(8, 145, 178),
		Secondary:          rgb(14, 165, 233),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(224, 242, 254),
		Surface:            rgb(255, 255, 255),
		OnSurface:          rgb(15, 23, 42),
		SurfaceVariant:     rgb(241, 245, 249),
		OnSurfaceVariant:   rgb(71, 85, 105),
		Background:         rgb(248, 250, 252),
		OnBackground:       rgb(30, 41, 59),
		Outline:            rgb(226, 232, 240),
		OutlineVariant:     rgb(203, 213, 225),
		Error:              rgb(239, 68, 68),
		Success:            rgb(34, 197, 94),
		Warning:            rgb(251, 146, 60),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(15, 23, 42),
		TextSecondary:      rgb(100, 116, 139),
	},
	LateAfternoon: {
		Primary:            rgb(59, 130, 246),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(219, 234, 254),
		OnPrimaryContainer: rgb(30, 64, 175),
		Secondary:          rgb(168, 85, 247),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(237, 233, 254),
		Surface:            rgb(255, 255, 255),
		OnSurface:          rgb(15, 23, 42),
		SurfaceVariant:     rgb(248, 250, 252),
		OnSurfaceVariant:   rgb(71, 85, 105),
		Background:         rgb(241, 245, 249),
		OnBackground:       rgb(30, 41, 59),
		Outline:            rgb(226, 232, 240),
		OutlineVariant:     rgb(203, 213, 225),
		Error:              rgb(239, 68, 68),
		Success:            rgb(34, 197, 94),
		Warning:            rgb(251, 146, 60),
		Info:               rgb(96, 165, 250),
		TextPrimary:        rgb(15, 23, 42),
		TextSecondary:      rgb(100, 116, 139),
	},
	Dusk: {
		Primary:            rgb(251, 146, 60),
		OnPrimary:          rgb(67, 20, 7),
		PrimaryContainer:   rgb(255, 237, 213),
		OnPrimaryContainer: rgb(154, 52, 18),
		Secondary:          rgb(236, 72, 153),
		OnSecondary:        rgb(80, 7, 36),
		SecondaryContainer: rgb(252, 231, 243),
		Surface:            rgb(254, 252, 232),
		OnSurface:          rgb(28, 25, 23),
		SurfaceVariant:     rgb(255, 248, 225),
		OnSurfaceVariant:   rgb(68, 64, 60),
		Background:         rgb(255, 251, 235),
		OnBackground:       rgb(41, 37, 36),
		Outline:            rgb(231, 229, 228),
		OutlineVariant:     rgb(214, 211, 209),
		Error:              rgb(220, 38, 38),
		Success:            rgb(34, 197, 94),
		Warning:            rgb(245, 158, 11),
		Info:               rgb(59, 130, 246),
		TextPrimary:        rgb(28, 25, 23),
		TextSecondary:      rgb(87, 83, 78),
	},
	Evening: {
		Primary:            rgb(168, 85, 247),
		OnPrimary:          rgb(255, 255, 255),
		PrimaryContainer:   rgb(107, 33, 168),
		OnPrimaryContainer: rgb(237, 233, 254),
		Secondary:          rgb(139, 92, 246),
		OnSecondary:        rgb(255, 255, 255),
		SecondaryContainer: rgb(88, 28, 135),
		Surface:            rgb(41, 37, 36),
		OnSurface:          rgb(250, 250, 249),
		SurfaceVariant:     rgb(57, 52, 52),
		OnSurfaceVariant:   rgb(231, 229, 228),
		Background:         rgb(28, 25, 23),
		OnBackground:       rgb(254, 252, 232),
		Outline:            rgb(68, 64, 60),
		OutlineVariant:     rgb(87, 83, 78),
		Error:              rgb(248, 113, 113),
		Success:            rgb(74, 222, 128),
		Warning:            rgb(251, 191, 36),
		Info:               rgb(147, 197, 253),
		TextPrimary:        rgb(250, 250, 249),
		TextSecondary:      rgb(214, 211, 209),
	},
	Night: {
		Primary:            rgb(147, 51, 234),
		OnPrimary:          rgb(250, 245, 255),
		PrimaryContainer:   rgb(88, 28, 135),
		OnPrimaryContainer: rgb(233, 213, 255),
		Secondary:          rgb(96, 165, 250),
		OnSecondary:        rgb(30, 58, 138),
		SecondaryContainer: rgb(37, 99, 235),
		Surface:            rgb(24, 24, 27),
		OnSurface:          rgb(244, 244, 245),
		SurfaceVariant:     rgb(39, 39, 42),
		OnSurfaceVariant:   rgb(228, 228, 231),
		Background:         rgb(9, 9, 11),
		OnBackground:       rgb(250, 250, 250),
		Outline:            rgb(63, 63, 70),
		OutlineVariant:     rgb(82, 82, 91),
		Error:              rgb(248, 113, 113),
		Success:            rgb(52, 211, 153),
		Warning:            rgb(251, 191, 36),
		Info:               rgb(96, 165, 250),
		TextPrimary:        rgb(244, 244, 245),
		TextSecondary:      rgb(161, 161, 170),
	},
}
