package archdeck

// composeComparison renders the feature matrix: CapNet against
// credential sharing, OAuth scopes, and IAM/RBAC.
func composeComparison(c *Canvas) error {
	s := c.SetupPage("CAPNET vs TRADITIONAL APPROACHES", "Why existing solutions don't solve the agent authorization problem")

	headers := []string{"", "API Keys /\nCredentials", "OAuth\nScopes", "IAM /\nRBAC", "CAPNET"}
	colX := []float64{0.05, 0.18, 0.35, 0.52, 0.72}
	colW := []float64{0.12, 0.15, 0.15, 0.15, 0.22}
	colFill := []string{"#607D8B", "#E53935", "#FF8F00", "#FF8F00", "#2E7D32"}

	for i := 1; i < len(headers); i++ {
		s.Box(BoxSpec{
			Rect:     Rect{X: colX[i], Y: 0.82, W: colW[i], H: 0.06},
			Label:    headers[i],
			Fill:     colFill[i],
			FontSize: 8,
		})
	}

	rows := []struct {
		feature string
		values  [4]string
	}{
		{"Scoped authority", [4]string{"✗", "~", "~", "✓"}},
		{"Time-bounded", [4]string{"✗", "~", "✗", "✓"}},
		{"Instant revocation", [4]string{"✗", "~", "~", "✓"}},
		{"Agent-specific binding", [4]string{"✗", "✗", "✗", "✓"}},
		{"Budget enforcement", [4]string{"✗", "✗", "✗", "✓"}},
		{"Category blocking", [4]string{"✗", "✗", "✗", "✓"}},
		{"Vendor allow-listing", [4]string{"✗", "✗", "✗", "✓"}},
		{"Delegation / attenuation", [4]string{"✗", "✗", "✗", "✓"}},
		{"Audit trail (receipts)", [4]string{"✗", "~", "~", "✓"}},
		{"Agent never sees creds", [4]string{"✗", "✗", "✗", "✓"}},
		{"Survives agent compromise", [4]string{"✗", "✗", "✗", "✓"}},
	}

	for i, row := range rows {
		y := 0.76 - float64(i)*0.055
		bg := "#FFFFFF"
		if i%2 == 0 {
			bg = "#F5F5F5"
		}
		s.Box(BoxSpec{
			Rect:   Rect{X: 0.04, Y: y - 0.02, W: 0.92, H: 0.05},
			Fill:   bg,
			Corner: CornerSquare,
			Stroke: "#E0E0E0", StrokeWidth: 0.5,
		})
		s.Note(NoteSpec{
			At: Point{X: 0.05, Y: y + 0.005}, Text: row.feature,
			FontSize: 9, Bold: true, Align: AlignLeft,
		})

		for j, val := range row.values {
			vx := colX[j+1] + colW[j+1]/2
			color, size := "#FF8F00", 12.0
			switch val {
			case "✓":
				color, size = "#2E7D32", 14
			case "✗":
				color, size = "#C62828", 14
			}
			s.Note(NoteSpec{
				At: Point{X: vx, Y: y + 0.005}, Text: val,
				Color: color, FontSize: size, Bold: true,
			})
		}
	}

	// Legend.
	s.Note(NoteSpec{
		At: Point{X: 0.10, Y: 0.135}, Text: "✓ = Full support",
		Token: "allow", FontSize: 9, Bold: true, Align: AlignLeft,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.35, Y: 0.135}, Text: "~ = Partial / limited",
		Color: "#FF8F00", FontSize: 9, Bold: true, Align: AlignLeft,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.60, Y: 0.135}, Text: "✗ = Not supported",
		Token: "deny", FontSize: 9, Bold: true, Align: AlignLeft,
	})

	// Closing panel.
	s.Box(BoxSpec{
		Rect:  Rect{X: 0.10, Y: 0.04, W: 0.80, H: 0.07},
		Token: "trust-zone", FillOpacity: 0.95,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.085},
		Text: "CapNet is purpose-built for the agent era.",
		Token: "allow", FontSize: 12, Bold: true,
	})
	s.Note(NoteSpec{
		At:   Point{X: 0.50, Y: 0.057},
		Text: "OAuth answers \"who is this?\" — CapNet answers \"what can this agent do right now, and can I stop it?\"",
		Color: "#795548", FontSize: 9, Italic: true,
	})

	return s.Err()
}
