package archdeck

// composeSystemArchitecture renders the system overview: trusted and
// untrusted zones, the component boxes, and the flows between them.
func composeSystemArchitecture(c *Canvas) error {
	s := c.SetupPage("CAPNET SYSTEM ARCHITECTURE", "Trust Boundaries & Component Roles")

	s.Zone(ZoneSpec{
		Rect:    Rect{X: 0.03, Y: 0.35, W: 0.94, H: 0.55},
		Label:   "TRUSTED ZONE",
		LabelAt: Point{X: 0.07, Y: 0.87},
		Token:   "trust-zone",
		Stroke:  "#4CAF50",
	})
	s.Zone(ZoneSpec{
		Rect:    Rect{X: 0.03, Y: 0.04, W: 0.94, H: 0.28},
		Label:   "UNTRUSTED ZONE",
		LabelAt: Point{X: 0.07, Y: 0.295},
		Token:   "untrust-zone",
		Stroke:  "#E53935",
	})

	s.Box(BoxSpec{
		Rect:     Rect{X: 0.05, Y: 0.58, W: 0.18, H: 0.22},
		Label:    "USER",
		Sublabel: "Sets policy\nControls revocation\nViews receipts",
		Token:    "user",
	})
	s.Box(BoxSpec{
		Rect:     Rect{X: 0.30, Y: 0.58, W: 0.18, H: 0.22},
		Label:    "EXTENSION",
		Sublabel: "Wallet UI\nAgent keypair\nTemplate config",
		Token:    "extension",
	})
	s.Box(BoxSpec{
		Rect:     Rect{X: 0.55, Y: 0.42, W: 0.20, H: 0.38},
		Label:    "PROXY",
		Sublabel: "Issuer keys\nCapDoc storage\nRevocation list\nReceipt log\nEnforcement gate\nCredential vault",
		Token:    "proxy",
	})
	s.Box(BoxSpec{
		Rect:         Rect{X: 0.78, Y: 0.58, W: 0.18, H: 0.22},
		Label:        "KEY CUSTODY",
		Sublabel:     "Ed25519 issuer keypair\nMerchant credentials\nNEVER exposed\nto agents",
		SublabelSize: 7,
		Token:        "custody",
	})
	s.Box(BoxSpec{
		Rect:     Rect{X: 0.12, Y: 0.08, W: 0.22, H: 0.18},
		Label:    "AGENT (AI)",
		Sublabel: "Own keypair only\nNo credentials\nPropose-only access",
		Token:    "agent",
	})
	s.Box(BoxSpec{
		Rect:     Rect{X: 0.60, Y: 0.08, W: 0.22, H: 0.18},
		Label:    "RESOURCE",
		Sublabel: "Merchant / API\nOnly reachable\nthrough proxy",
		Token:    "resource",
	})

	s.Arrow(ArrowSpec{
		From: Point{X: 0.23, Y: 0.69}, To: Point{X: 0.30, Y: 0.69},
		Token: "user", Label: "Config",
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.48, Y: 0.69}, To: Point{X: 0.55, Y: 0.69},
		Token: "extension", Label: "Issue/Revoke",
	})
	s.Arrow(ArrowSpec{
		From: Point{X: 0.75, Y: 0.69}, To: Point{X: 0.78, Y: 0.69},
		Token: "proxy", Width: 1.5,
	})

	// Agent proposes through the proxy.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.34, Y: 0.17}, To: Point{X: 0.55, Y: 0.50},
		Token: "agent", Label: "Action\nRequest",
		LabelOffset: Point{X: -0.04, Y: 0.02},
	})

	// Proxy executes against the resource.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.75, Y: 0.50}, To: Point{X: 0.71, Y: 0.26},
		Token: "proxy", Label: "Execute\n(if allowed)",
		LabelOffset: Point{X: 0.06, Y: 0.02},
	})

	// The agent cannot reach the resource directly.
	s.Arrow(ArrowSpec{
		From: Point{X: 0.34, Y: 0.17}, To: Point{X: 0.60, Y: 0.17},
		Color: "#E53935", Dashed: true,
	})
	s.Note(NoteSpec{
		At: Point{X: 0.47, Y: 0.20}, Text: "BLOCKED",
		Color: "#C62828", FontSize: 9, Bold: true,
		Bubble: &Bubble{Fill: "#FFCDD2", Stroke: "#C62828"},
	})

	return s.Err()
}
