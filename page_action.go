package archdeck

// composeActionFlow renders the agent action sequence: what happens
// when an agent tries to take an action.
func composeActionFlow(c *Canvas) error {
	s := c.SetupPage("AGENT ACTION FLOW", "What happens when an agent tries to take an action")

	actors := []struct {
		x     float64
		label string
		token string
	}{
		{0.15, "AGENT", "agent"},
		{0.45, "PROXY", "proxy"},
		{0.75, "RESOURCE", "resource"},
	}
	for _, actor := range actors {
		s.Box(BoxSpec{
			Rect:     Rect{X: actor.x - 0.08, Y: 0.84, W: 0.16, H: 0.05},
			Label:    actor.label,
			Token:    actor.token,
			FontSize: 11,
		})
		s.Arrow(ArrowSpec{
			From: Point{X: actor.x, Y: 0.06}, To: Point{X: actor.x, Y: 0.84},
			Token: actor.token, Width: 2, Dashed: true,
			Head: HeadNone, Opacity: 0.3,
		})
	}

	s.Arrow(ArrowSpec{
		From: Point{X: 0.15, Y: 0.78}, To: Point{X: 0.45, Y: 0.78},
		Token: "agent", Width: 2.5,
		Label: "POST /action/request\n{cart, agent_id, pubkey, signature}",
		LabelOffset: Point{Y: 0.02},
	})

	s.Note(NoteSpec{
		At: Point{X: 0.45, Y: 0.66},
		Text: "ENFORCEMENT PIPELINE\n1. Verify signature\n2. Verify executor binding\n3. Check time window\n4. Check revocation\n5. Check vendor\n6. Check categories\n7. Check budget",
		Token: "proxy", FontSize: 8, Bold: true,
		Bubble: &Bubble{Fill: "#F3E5F5", Stroke: "#6A1B9A"},
	})

	s.Arrow(ArrowSpec{
		From: Point{X: 0.45, Y: 0.50}, To: Point{X: 0.75, Y: 0.50},
		Token: "allow", Width: 2.5,
		Label:       "Execute action\n(credentials held by proxy)",
		LabelOffset: Point{Y: 0.02},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.75, Y: 0.44}, To: Point{X: 0.45, Y: 0.44},
		Token: "resource", Width: 2.5,
		Label:       "Result",
		LabelOffset: Point{Y: 0.015},
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.45, Y: 0.38}, To: Point{X: 0.15, Y: 0.38},
		Token: "allow", Width: 2.5,
		Label:       "ALLOWED + receipt_id",
		LabelOffset: Point{Y: 0.015},
	})

	// Denied branch.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.45, Y: 0.30}, To: Point{X: 0.15, Y: 0.30},
		Token: "deny", Width: 2.5,
		Label:       "DENIED + reason + receipt_id",
		LabelOffset: Point{Y: 0.015},
	})
	s.Note(NoteSpec{
		At: Point{X: 0.45, Y: 0.255}, Text: "OR",
		Token: "deny", FontSize: 10, Bold: true,
		Bubble: &Bubble{Fill: "#FFEBEE", Stroke: "#C62828"},
	})
	s.Note(NoteSpec{
		At: Point{X: 0.75, Y: 0.30}, Text: "Resource NEVER\ncontacted",
		Token: "deny", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#FFEBEE", Stroke: "#C62828"},
	})

	// Receipt callout.
	s.Box(BoxSpec{
		Rect:  Rect{X: 0.10, Y: 0.06, W: 0.80, H: 0.10},
		Token: "insight", FillOpacity: 0.95,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.50, Y: 0.13}, Text: "AUDIT TRAIL",
		Color: "#E65100", FontSize: 12, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.10},
		Text: "Every request generates a signed receipt: ACTION_ATTEMPT → ACTION_ALLOWED or ACTION_DENIED",
		Color: "#795548", FontSize: 9,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.075},
		Text: "\"Why did this happen?\" is always answerable.",
		Color: "#795548", FontSize: 8, Italic: true,
	})

	return s.Err()
}
