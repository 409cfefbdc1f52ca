package alert

// Sentinel values for the severity-dependent containment fields.
const (
	CategoryUnknown = "UNKNOWN"

	RunStateRan     = "RAN"
	RunStateBlocked = "BLOCKED"

	PolicyStateApplied    = "APPLIED"
	PolicyStateNotApplied = "NOT_APPLIED"
)

// Containment holds the NGAV fields whose values depend on the severity and
// threat category already chosen for the same record.
type Containment struct {
	BlockedThreatCategory    string
	NotBlockedThreatCategory string
	RunState                 string
	PolicyApplied            string
}

// DeriveContainment applies the containment policy to an already-chosen
// severity and threat category: alerts below severity 3 are never blocked or
// remediated, so their blocked category, run state, and policy application
// are forced to sentinels and the threat category lands on the not-blocked
// side. At severity 3 and above the sides flip and run state and policy
// application are drawn via pick.
func DeriveContainment(severity int, threatCategory string, pick func(choices ...string) string) Containment {
	if severity < 3 {
		return Containment{
			BlockedThreatCategory:    CategoryUnknown,
			NotBlockedThreatCategory: threatCategory,
			RunState:                 RunStateRan,
			PolicyApplied:            PolicyStateNotApplied,
		}
	}
	return Containment{
		BlockedThreatCategory:    threatCategory,
		NotBlockedThreatCategory: CategoryUnknown,
		RunState:                 pick(RunStateRan, RunStateBlocked),
		PolicyApplied:            pick(PolicyStateNotApplied, PolicyStateApplied),
	}
}
