package archdeck

// composeRevocationFlow renders the kill-switch sequence: instant
// capability termination, then a later denied retry by the agent.
func composeRevocationFlow(c *Canvas) error {
	s := c.SetupPage("REVOCATION FLOW — KILL SWITCH", "Instant capability termination")

	actors := []struct {
		x     float64
		label string
		token string
	}{
		{0.12, "USER", "user"},
		{0.32, "EXTENSION", "extension"},
		{0.55, "PROXY", "proxy"},
		{0.80, "AGENT", "agent"},
	}
	for _, actor := range actors {
		s.Box(BoxSpec{
			Rect:     Rect{X: actor.x - 0.07, Y: 0.84, W: 0.14, H: 0.05},
			Label:    actor.label,
			Token:    actor.token,
			FontSize: 10,
		})
		s.Arrow(ArrowSpec{
			From: Point{X: actor.x, Y: 0.08}, To: Point{X: actor.x, Y: 0.84},
			Token: actor.token, Width: 1.5, Dashed: true,
			Head: HeadNone, Opacity: 0.3,
		})
	}

	// User hits revoke.
	s.Note(NoteSpec{
		At: Point{X: 0.12, Y: 0.76}, Text: "Clicks\n\"Revoke\"",
		Token: "user", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#E3F2FD", Stroke: "#1565C0"},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.19, Y: 0.76}, To: Point{X: 0.25, Y: 0.76},
		Token: "user", Width: 2.5,
	})

	// Extension forwards the revocation.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.32, Y: 0.74}, To: Point{X: 0.32, Y: 0.70},
		Token: "extension", Width: 1.5,
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.39, Y: 0.68}, To: Point{X: 0.48, Y: 0.68},
		Token: "extension", Width: 2.5,
		Label:       "POST /capability/revoke",
		LabelOffset: Point{Y: 0.02},
	})

	// Proxy persists the revocation.
	s.Note(NoteSpec{
		At:   Point{X: 0.55, Y: 0.56},
		Text: "Proxy:\n• Marks cap REVOKED\n• Persists to disk\n  (survives restart)\n• Emits CAP_REVOKED\n  receipt",
		Token: "proxy", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#F3E5F5", Stroke: "#6A1B9A"},
	})

	// Confirmation ripples back.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.48, Y: 0.48}, To: Point{X: 0.39, Y: 0.48},
		Token: "proxy", Label: "Confirmed", LabelOffset: Point{Y: 0.018},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.25, Y: 0.48}, To: Point{X: 0.19, Y: 0.48},
		Token: "extension", Label: "\"Revoked\"", LabelOffset: Point{Y: 0.018},
	})

	s.Note(NoteSpec{
		At: Point{X: 0.50, Y: 0.34}, Text: "· · ·  LATER  · · ·",
		Color: "#9E9E9E", FontSize: 12, Bold: true,
	})

	// Agent retries and is denied.
	s.Note(NoteSpec{
		At: Point{X: 0.80, Y: 0.28}, Text: "Agent tries\nany action",
		Token: "agent", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#FFF3E0", Stroke: "#E65100"},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.73, Y: 0.28}, To: Point{X: 0.62, Y: 0.28},
		Token: "agent", Width: 2.5,
		Label:       "POST /action/request",
		LabelOffset: Point{Y: 0.022},
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.55, Y: 0.20},
		Text: "Step 4 in pipeline:\nCHECK REVOCATION\n→ REVOKED",
		Token: "deny", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#FFEBEE", Stroke: "#C62828"},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.62, Y: 0.14}, To: Point{X: 0.73, Y: 0.14},
		Token: "deny", Width: 2.5,
		Label:       "DENIED: REVOKED",
		LabelOffset: Point{Y: 0.022},
	})

	s.Box(BoxSpec{
		Rect:         Rect{X: 0.68, Y: 0.06, W: 0.24, H: 0.05},
		Label:        "AGENT IS DONE",
		Sublabel:     "No action possible. Period.",
		SublabelSize: 8,
		Token:        "deny",
		FontSize:     9,
	})

	s.Box(BoxSpec{
		Rect:  Rect{X: 0.05, Y: 0.06, W: 0.55, H: 0.05},
		Token: "insight", FillOpacity: 0.95,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.325, Y: 0.095},
		Text: "Revocation is instant, persistent, and absolute.",
		Color: "#E65100", FontSize: 10, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.325, Y: 0.072},
		Text: "No matter what the agent tries — it's over.",
		Color: "#795548", FontSize: 8, Italic: true,
	})

	return s.Err()
}
