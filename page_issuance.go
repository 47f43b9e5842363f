package archdeck

// composeIssuanceFlow renders the capability issuance swimlane: how a
// capability is created and bound to an agent.
func composeIssuanceFlow(c *Canvas) error {
	s := c.SetupPage("CAPABILITY ISSUANCE FLOW", "How a capability is created and bound to an agent")

	columns := []struct {
		x     float64
		label string
		token string
	}{
		{0.10, "USER", "user"},
		{0.32, "EXTENSION", "extension"},
		{0.55, "PROXY", "proxy"},
		{0.78, "AGENT", "agent"},
	}
	for _, col := range columns {
		s.Box(BoxSpec{
			Rect:     Rect{X: col.x - 0.07, Y: 0.84, W: 0.14, H: 0.05},
			Label:    col.label,
			Token:    col.token,
			FontSize: 10,
		})
		s.Arrow(ArrowSpec{
			From: Point{X: col.x, Y: 0.10}, To: Point{X: col.x, Y: 0.84},
			Token: col.token, Width: 1.5, Dashed: true,
			Head: HeadNone, Opacity: 0.3,
		})
	}

	steps := []struct {
		y          float64
		num        string
		text       string
		srcX, dstX float64
		arrowColor string
	}{
		{0.78, "1", "User sets policy template:\n\"$200, groceries, no alcohol, 7 days\"", 0.10, 0.10, ""},
		{0.70, "2", "Extension sends\nPOST /capability/issue\nwith policy + agent pubkey", 0.32, 0.55, "#4CAF50"},
		{0.58, "3", "Proxy creates CapDoc:\n• Generates cap_id\n• Sets constraints from policy\n• Binds to agent pubkey\n• Signs with issuer key\n• Stores locally\n• Emits CAP_ISSUED receipt", 0.55, 0.55, ""},
		{0.42, "4", "Returns signed CapDoc", 0.55, 0.32, "#6A1B9A"},
		{0.36, "5", "Shows \"Capability Active\"\nwith details + revoke button", 0.32, 0.10, "#2E7D32"},
		{0.24, "6", "Agent knows:\n✓ A capability exists for it\n✓ Its own keypair\n✗ Merchant credentials\n✗ Issuer signing key", 0.78, 0.78, ""},
	}

	for _, step := range steps {
		s.Badge(BadgeSpec{At: Point{X: 0.03, Y: step.y}, Text: step.num, Token: "header"})

		textX := step.srcX
		if step.srcX != step.dstX {
			textX = (step.srcX + step.dstX) / 2
		}
		s.Note(NoteSpec{
			At: Point{X: textX, Y: step.y}, Text: step.text,
			FontSize: 8,
			Bubble:   &Bubble{Fill: "#FFFFFF", Stroke: "#BDBDBD"},
		})

		if step.arrowColor != "" && step.srcX != step.dstX {
			s.Arrow(ArrowSpec{
				From: Point{X: step.srcX, Y: step.y - 0.02},
				To:   Point{X: step.dstX, Y: step.y - 0.02},
				Color: step.arrowColor, Width: 2.5,
			})
		}
	}

	s.Box(BoxSpec{
		Rect:  Rect{X: 0.15, Y: 0.10, W: 0.70, H: 0.08},
		Token: "insight", FillOpacity: 0.95,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.14},
		Text: "KEY INSIGHT: The agent receives authority (capability), NOT credentials.",
		Color: "#E65100", FontSize: 10, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.115},
		Text: "Even if the agent is fully compromised, it cannot exceed the capability's constraints.",
		Color: "#795548", FontSize: 8,
	})

	return s.Err()
}
