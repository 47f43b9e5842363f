package archdeck

// composeBlastRadius renders the hijacker blast-radius comparison:
// what a fully compromised agent can and cannot reach.
func composeBlastRadius(c *Canvas) error {
	s := c.SetupPage("HIJACKER BLAST RADIUS", "What happens when an agent is fully compromised")

	s.Box(BoxSpec{
		Rect:     Rect{X: 0.05, Y: 0.72, W: 0.40, H: 0.08},
		Label:    "HIJACKER TAKES OVER AGENT",
		Token:    "agent",
		FontSize: 11,
	})

	// Left panel: what the hijacker has.
	s.Box(BoxSpec{
		Rect:  Rect{X: 0.05, Y: 0.25, W: 0.40, H: 0.45},
		Token: "trust-zone", FillOpacity: 0.8,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.25, Y: 0.665}, Text: "HAS ACCESS TO:",
		Token: "allow", FontSize: 11, Bold: true,
	})
	hasItems := []string{
		"Agent's Ed25519 keypair",
		"Knowledge of proxy API address",
		"Knowledge of capability ID",
	}
	for i, item := range hasItems {
		s.Note(NoteSpec{
			At: Point{X: 0.08, Y: 0.61 - float64(i)*0.055},
			Text: "✓  " + item,
			Token: "allow", FontSize: 10, Bold: true, Align: AlignLeft,
		})
	}
	s.Note(NoteSpec{
		At: Point{X: 0.25, Y: 0.44}, Text: "CAN DO:",
		Token: "allow", FontSize: 10, Bold: true,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.08, Y: 0.40}, Text: "✓  Send requests to proxy",
		Token: "allow", FontSize: 9, Align: AlignLeft,
	})

	// Right panel: what stays out of reach.
	s.Box(BoxSpec{
		Rect:  Rect{X: 0.52, Y: 0.25, W: 0.43, H: 0.45},
		Token: "untrust-zone", FillOpacity: 0.8,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.735, Y: 0.665}, Text: "CANNOT ACCESS:",
		Token: "deny", FontSize: 11, Bold: true,
	})
	noItems := []string{
		"Merchant / service credentials",
		"Issuer signing key",
		"Other agents' keys",
		"Direct access to merchant API",
		"Proxy internal state",
		"Revocation controls",
	}
	for i, item := range noItems {
		s.Note(NoteSpec{
			At: Point{X: 0.55, Y: 0.625 - float64(i)*0.032},
			Text: "✗  " + item,
			Token: "deny", FontSize: 9, Bold: true, Align: AlignLeft,
		})
	}
	s.Note(NoteSpec{
		At: Point{X: 0.735, Y: 0.44}, Text: "CANNOT DO:",
		Token: "deny", FontSize: 10, Bold: true,
	})
	cannotDo := []string{
		"Buy blocked categories",
		"Exceed budget limit",
		"Use unauthorized vendors",
		"Act after revocation",
		"Forge new capabilities",
		"Escalate privileges",
	}
	for i, item := range cannotDo {
		s.Note(NoteSpec{
			At: Point{X: 0.55, Y: 0.405 - float64(i)*0.028},
			Text: "✗  " + item,
			Token: "deny", FontSize: 8, Align: AlignLeft,
		})
	}

	// Worst case panel.
	s.Box(BoxSpec{
		Rect:  Rect{X: 0.10, Y: 0.08, W: 0.80, H: 0.14},
		Token: "insight", FillOpacity: 0.95,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.50, Y: 0.19}, Text: "WORST CASE SCENARIO",
		Color: "#E65100", FontSize: 14, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.15},
		Text: "Hijacker can spend the remaining budget on allowed items at allowed vendors.",
		Color: "#795548", FontSize: 11,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.115},
		Text: "That's it. The blast radius IS the capability. User hits revoke → game over.",
		Color: "#E65100", FontSize: 11, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.088},
		Text: "Compare: Traditional approach (shared credentials) → hijacker has FULL ACCESS to everything.",
		Color: "#9E9E9E", FontSize: 9, Italic: true,
	})

	return s.Err()
}
