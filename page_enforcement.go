package archdeck

// composeEnforcementPipeline renders the enforcement decision tree:
// every action request passes each check in order, failing sideways
// into a denial, or falling through to ALLOWED.
func composeEnforcementPipeline(c *Canvas) error {
	s := c.SetupPage("ENFORCEMENT DECISION TREE", "Every action request passes through this pipeline — no exceptions")

	checks := []struct {
		y          float64
		name       string
		question   string
		denyReason string
	}{
		{0.82, "VERIFY\nSIGNATURE", "Is the request\ncryptographically authentic?", "INVALID_SIGNATURE"},
		{0.70, "VERIFY\nEXECUTOR", "Does agent pubkey match\nthe capability binding?", "EXECUTOR_MISMATCH"},
		{0.58, "CHECK\nTIME WINDOW", "Is capability within\nnot_before / expires_at?", "TIME_EXPIRED"},
		{0.46, "CHECK\nREVOCATION", "Has the user\nrevoked this capability?", "REVOKED"},
		{0.34, "CHECK\nVENDOR", "Is the target vendor\non the allow-list?", "VENDOR_NOT_ALLOWED"},
		{0.22, "CHECK\nCATEGORIES", "Are all cart items in\nallowed categories?", "CATEGORY_BLOCKED"},
		{0.10, "CHECK\nBUDGET", "Is total amount ≤\nmax_amount_cents?", "AMOUNT_EXCEEDS_MAX"},
	}

	// Incoming request feeds the first check.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.22, Y: 0.91}, To: Point{X: 0.22, Y: 0.88},
		Token: "agent", Width: 3,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.22, Y: 0.915}, Text: "INCOMING ACTION REQUEST",
		Token: "agent", FontSize: 10, Bold: true,
		Bubble: &Bubble{Fill: "#FFF3E0", Stroke: "#E65100"},
	})

	const denyX = 0.70
	for i, check := range checks {
		s.Box(BoxSpec{
			Rect:     Rect{X: 0.12, Y: check.y - 0.04, W: 0.20, H: 0.08},
			Label:    check.name,
			Token:    "proxy",
			FontSize: 8,
		})
		s.Note(NoteSpec{
			At: Point{X: 0.45, Y: check.y}, Text: check.question,
			FontSize: 8,
			Bubble:   &Bubble{Fill: "#FFFFFF", Stroke: "#BDBDBD"},
		})

		// PASS continues downward to the next check.
		if i < len(checks)-1 {
			nextY := checks[i+1].y
			s.Arrow(ArrowSpec{
				From: Point{X: 0.22, Y: check.y - 0.04},
				To:   Point{X: 0.22, Y: nextY + 0.04},
				Token: "check-yes", Width: 2.5,
			})
			s.Note(NoteSpec{
				At:   Point{X: 0.19, Y: (check.y - 0.04 + nextY + 0.04) / 2},
				Text: "PASS", Token: "check-yes", FontSize: 7, Bold: true,
				Bubble: &Bubble{Fill: "#E8F5E9", Stroke: "#2E7D32"},
			})
		}

		// FAIL exits sideways into a denial.
		s.Arrow(ArrowSpec{
			From: Point{X: 0.32, Y: check.y}, To: Point{X: denyX, Y: check.y},
			Token: "check-no",
		})
		s.Note(NoteSpec{
			At: Point{X: 0.51, Y: check.y + 0.015}, Text: "FAIL",
			Token: "check-no", FontSize: 7, Bold: true,
			Bubble: &Bubble{Fill: "#FFEBEE", Stroke: "#C62828"},
		})
		s.Box(BoxSpec{
			Rect:     Rect{X: denyX, Y: check.y - 0.025, W: 0.24, H: 0.05},
			Label:    "DENIED: " + check.denyReason,
			Token:    "deny",
			FontSize: 7,
		})
		s.Note(NoteSpec{
			At: Point{X: denyX + 0.12, Y: check.y - 0.042}, Text: "+ receipt emitted",
			Color: "#F57F17", FontSize: 6, Italic: true,
		})
	}

	// All checks passed.
	s.Box(BoxSpec{
		Rect:     Rect{X: 0.10, Y: 0.02, W: 0.24, H: 0.05},
		Label:    "ALLOWED",
		Token:    "allow",
		FontSize: 12,
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.22, Y: 0.085}, To: Point{X: 0.22, Y: 0.072},
		Token: "check-yes", Width: 2.5,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.36, Y: 0.045}, Text: "Execute action + emit receipt",
		Token: "allow", FontSize: 8, Bold: true, Align: AlignLeft,
	})

	s.Box(BoxSpec{
		Rect:  Rect{X: denyX, Y: 0.02, W: 0.24, H: 0.05},
		Token: "receipt", FillOpacity: 0.3,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.82, Y: 0.055}, Text: "EVERY PATH EMITS A RECEIPT",
		Color: "#E65100", FontSize: 8, Bold: true,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.82, Y: 0.032}, Text: "Allow or deny — full audit trail",
		Color: "#795548", FontSize: 7,
	})

	return s.Err()
}
