package archdeck

// Page is one finished diagram page. It is immutable once composed and
// is the unit appended to the output document.
type Page struct {
	Title    string
	Subtitle string
	SVG      string
}

// Composer produces one complete page of the deck. Compose must call
// Canvas.SetupPage exactly once, then issue zero or more draw calls.
// Composers are independent: none reads state produced by another, so
// output is deterministic and order-stable.
type Composer struct {
	Name    string
	Compose func(c *Canvas) error
}

// DefaultComposers returns the full diagram set in document order.
func DefaultComposers() []Composer {
	return []Composer{
		{Name: "system-architecture", Compose: composeSystemArchitecture},
		{Name: "issuance-flow", Compose: composeIssuanceFlow},
		{Name: "enforcement-pipeline", Compose: composeEnforcementPipeline},
		{Name: "action-flow", Compose: composeActionFlow},
		{Name: "revocation-flow", Compose: composeRevocationFlow},
		{Name: "blast-radius", Compose: composeBlastRadius},
		{Name: "comparison", Compose: composeComparison},
	}
}
