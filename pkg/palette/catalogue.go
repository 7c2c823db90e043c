package palette

// catalogue holds the brand palettes. Values are HSL triples without the
// hsl() wrapper, the form the stylesheet expects.
var catalogue = map[ID]Palette{
	FreshClean: {
		ID:   FreshClean,
		Name: "Fresh & Clean",

		Colors: []Var{
			{"--primary", "178 87% 37%"},
			{"--primary-foreground", "0 0% 100%"},
			{"--secondary", "145 63% 49%"},
			{"--secondary-foreground", "0 0% 100%"},
			{"--accent", "204 70% 53%"},
			{"--accent-foreground", "0 0% 100%"},
			{"--background", "0 0% 100%"},
			{"--foreground", "0 0% 7%"},
			{"--muted", "170 47% 96%"},
			{"--muted-foreground", "218 14% 35%"},
			{"--card", "0 0% 100%"},
			{"--card-foreground", "0 0% 7%"},
			{"--border", "170 30% 90%"},
			{"--input", "170 30% 90%"},
			{"--ring", "178 87% 37%"},
		},
	},
	WarmFriendly: {
		ID:   WarmFriendly,
		Name: "Warm & Friendly",

		Colors: []Var{
			{"--primary", "37 90% 63%"},
			{"--primary-foreground", "20 30% 18%"},
			{"--secondary", "30 45% 48%"},
			{"--secondary-foreground", "0 0% 100%"},
			{"--accent", "27 95% 57%"},
			{"--accent-foreground", "20 30% 18%"},
			{"--background", "40 100% 98%"},
			{"--foreground", "20 30% 18%"},
			{"--muted", "35 70% 94%"},
			{"--muted-foreground", "20 15% 42%"},
			{"--card", "0 0% 100%"},
			{"--card-foreground", "20 30% 18%"},
			{"--border", "35 40% 88%"},
			{"--input", "35 40% 88%"},
			{"--ring", "37 90% 63%"},
		},
	},
	PremiumSpa: {
		ID:   PremiumSpa,
		Name: "Premium Pet Spa",

		Colors: []Var{
			{"--primary", "290 40% 18%"},
			{"--primary-foreground", "0 0% 100%"},
			{"--secondary", "324 80% 72%"},
			{"--secondary-foreground", "0 0% 7%"},
			{"--accent", "271 50% 54%"},
			{"--accent-foreground", "0 0% 100%"},
			{"--background", "0 0% 100%"},
			{"--foreground", "0 0% 7%"},
			{"--muted", "290 30% 96%"},
			{"--muted-foreground", "290 10% 40%"},
			{"--card", "0 0% 100%"},
			{"--card-foreground", "0 0% 7%"},
			{"--border", "290 20% 90%"},
			{"--input", "290 20% 90%"},
			{"--ring", "290 40% 18%"},
		},
	},
}
