package tokens

var defaultOrder = []string{"primary", "accent", "neutral", "success", "warning", "error", "info", "background", "surface", "border", "text"}

var defaultColors = map[string]map[string]string{
	"primary": {
		"50": "#F7F7F7", "100": "#E8E8E8", "200": "#D1D1D1", "300": "#ABABAB", "400": "#6E6E6E", "500": "#2C2C2C", "600": "#252525", "700": "#1F1F1F", "800": "#191919", "900": "#141414", "950": "#0A0A0A",
	},
	"accent": {
		"50": "#FDF6F3", "100": "#FAEBE4", "200": "#F5D7C9", "300": "#EEBCA3", "400": "#E19A76", "500": "#C67A5C", "600": "#B8654A", "700": "#9A4F3C", "800": "#7E4336", "900": "#683A2F", "950": "#381D18",
	},
	"neutral": {
		"50": "#FAFAFA", "100": "#F5F5F5", "200": "#E5E5E5", "300": "#D4D4D4", "400": "#A3A3A3", "500": "#737373", "600": "#525252", "700": "#404040", "800": "#262626", "900": "#171717", "950": "#0A0A0A",
	},
	"success": {
		"50": "#F0FDF4", "100": "#DCFCE7", "200": "#BBF7D0", "300": "#86EFAC", "400": "#4ADE80", "500": "#22C55E", "600": "#16A34A", "700": "#15803D", "800": "#166534", "900": "#14532D", "950": "#052E16",
	},
	"warning": {
		"50": "#FFFBEB", "100": "#FEF3C7", "200": "#FDE68A", "300": "#FCD34D", "400": "#FBBF24", "500": "#F59E0B", "600": "#D97706", "700": "#B45309", "800": "#92400E", "900": "#78350F", "950": "#451A03",
	},
	"error": {
		"50": "#FEF2F2", "100": "#FEE2E2", "200": "#FECACA", "300": "#FCA5A5", "400": "#F87171", "500": "#EF4444", "600": "#DC2626", "700": "#B91C1C", "800": "#991B1B", "900": "#7F1D1D", "950": "#450A0A",
	},
	"info": {
		"50": "#EFF6FF", "100": "#DBEAFE", "200": "#BFDBFE", "300": "#93C5FD", "400": "#60A5FA", "500": "#3B82F6", "600": "#2563EB", "700": "#1D4ED8", "800": "#1E40AF", "900": "#1E3A8A", "950": "#172554",
	},
	"background": {
		"light": "#FFFFFF", "DEFAULT": "#FAFAFA", "muted": "#F5F5F5",
	},
	"surface": {
		"light": "#FFFFFF", "DEFAULT": "#FAFAFA", "dark": "#F5F5F5",
	},
	"border": {
		"light": "#E5E5E5", "DEFAULT": "#D4D4D4", "dark": "#A3A3A3",
	},
	"text": {
		"primary": "#171717", "secondary": "#525252", "tertiary": "#737373", "muted": "#A3A3A3", "inverse": "#FFFFFF",
	},
}

var defaultRadius = map[string]string{
	"none":    "0",
	"sm":      "0.375rem",
	"DEFAULT": "0.5rem",
	"md":      "0.5rem",
	"lg":      "0.75rem",
	"xl":      "1rem",
	"2xl":     "1.5rem",
	"3xl":     "2rem",
	"full":    "9999px",
}

var defaultSpacing = map[string]string{
	"0":   "0",
	"px":  "1px",
	"0.5": "0.125rem",
	"1":   "0.25rem",
	"1.5": "0.375rem",
	"2":   "0.5rem",
	"2.5": "0.625rem",
	"3":   "0.75rem",
	"3.5": "0.875rem",
	"4":   "1rem",
	"5":   "1.25rem",
	"6":   "1.5rem",
	"7":   "1.75rem",
	"8":   "2rem",
	"9":   "2.25rem",
	"10":  "2.5rem",
	"11":  "2.75rem",
	"12":  "3rem",
	"14":  "3.5rem",
	"16":  "4rem",
	"20":  "5rem",
	"24":  "6rem",
	"28":  "7rem",
	"32":  "8rem",
	"36":  "9rem",
	"40":  "10rem",
	"44":  "11rem",
	"48":  "12rem",
	"52":  "13rem",
	"56":  "14rem",
	"60":  "15rem",
	"64":  "16rem",
	"72":  "18rem",
	"80":  "20rem",
	"96":  "24rem",
}
