package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aalsahee/alertgen/internal/domain/alert"
)

// NGAVTimeLayout is the second-precision UTC layout used by the NGAV family.
const NGAVTimeLayout = "2006-01-02T15:04:05Z"

var (
	ngavReasonTemplates = []string{
		"The application {} acted as a network server.",
		"The application {} attempted to inject into another process.",
		"The application {} accessed credentials.",
		"The application {} modified system settings.",
		"The application {} created suspicious files.",
		"The application {} established external connections.",
		"The application {} exhibited ransomware-like behavior.",
		"The application {} attempted privilege escalation.",
	}

	ngavReasonCodes = []string{
		"R_NET_SERVER", "R_PROCESS_INJECT", "R_CRED_ACCESS", "R_SYS_MOD",
		"R_FILE_CREATE", "R_NET_CONN", "R_RANSOMWARE", "R_PRIV_ESC",
	}

	ngavThreatCategories = []string{"NON_MALWARE", "POTENTIALLY_UNWANTED", "SUSPICIOUS", "MALWARE"}

	ngavTTPs = []string{
		"FIXED_PORT_LISTEN", "ACTIVE_SERVER", "NETWORK_ACCESS", "PROCESS_INJECTION",
		"CREDENTIAL_THEFT", "PERSISTENCE", "DEFENSE_EVASION", "LATERAL_MOVEMENT",
	}

	ngavKillChainStages = []string{"INSTALL_RUN", "EXECUTE", "DISCOVER", "EXPLOIT"}

	ngavCategories   = []string{"THREAT", "NOTICE", "WARNING"}
	ngavPolicyNames  = []string{"Standard", "High Security", "Development", "Production"}
	ngavTargetValues = []string{"LOW", "MEDIUM", "HIGH"}
	ngavLocations    = []string{"ONSITE", "OFFSITE", "UNKNOWN"}
	ngavReputations  = []string{"TRUSTED_WHITE_LIST", "KNOWN_GOOD", "NEUTRAL", "SUSPECT"}
	ngavVectors      = []string{"UNKNOWN", "EMAIL", "WEB", "USB", "NETWORK"}
	ngavOSReleases   = []string{"7", "10", "11"}
	ngavOSArches     = []string{"86", "64"}
	ngavUserNames    = []string{"admin", "user", "test", "developer"}

	ngavSeverities      = []int{1, 2, 3, 4, 5}
	ngavSeverityWeights = []float64{0.05, 0.15, 0.4, 0.3, 0.1}
)

// NGAVGenerator produces independent antivirus threat alerts from an
// injected random source; a fixed seed reproduces the run byte-for-byte.
type NGAVGenerator struct {
	rng   *rand.Rand
	pools *Pools
	now   time.Time
}

// NewNGAVGenerator creates a generator anchored at the current time.
func NewNGAVGenerator(rng *rand.Rand, pools *Pools) *NGAVGenerator {
	return &NGAVGenerator{rng: rng, pools: pools, now: time.Now().UTC()}
}

// WithBaseTime anchors the 7-day creation window at now instead of the wall
// clock.
func (g *NGAVGenerator) WithBaseTime(now time.Time) *NGAVGenerator {
	g.now = now.UTC()
	return g
}

// Generate returns exactly n records.
func (g *NGAVGenerator) Generate(n int) []alert.NGAVAlert {
	alerts := make([]alert.NGAVAlert, 0, n)
	for i := 0; i < n; i++ {
		alerts = append(alerts, g.buildAlert())
	}
	return alerts
}

func (g *NGAVGenerator) buildAlert() alert.NGAVAlert {
	r := g.rng

	// All four timestamps derive from one creation draw so the ordering
	// invariants hold within the record.
	createTime := drawCreateTime(r, g.now)
	lastUpdateTime := createTime.Add(time.Duration(randRange(r, 10, 300)) * time.Second)
	firstEventTime := createTime.Add(-time.Duration(randRange(r, 0, 60)) * time.Second)
	lastEventTime := createTime

	deviceName := pickString(r, g.pools.DeviceNames)
	processName := pickString(r, g.pools.NGAVProcessNames)
	severity := ngavSeverities[WeightedChoice(r, ngavSeverityWeights)]
	threatCategory := pickString(r, ngavThreatCategories)
	containment := alert.DeriveContainment(severity, threatCategory, func(choices ...string) string {
		return pickString(r, choices)
	})

	return alert.NGAVAlert{
		Type:            alert.TypeCBAnalytics,
		ID:              newUUID(r),
		LegacyAlertID:   newUUID(r),
		OrgKey:          OrgKey,
		CreateTime:      createTime.Format(NGAVTimeLayout),
		LastUpdateTime:  lastUpdateTime.Format(NGAVTimeLayout),
		FirstEventTime:  firstEventTime.Format(NGAVTimeLayout),
		LastEventTime:   lastEventTime.Format(NGAVTimeLayout),
		ThreatID:        hexN(r, 32),
		Severity:        severity,
		Category:        pickString(r, ngavCategories),
		DeviceID:        randRange64(r, 90000000, 99999999),
		DeviceOS:        "WINDOWS",
		DeviceOSVersion: fmt.Sprintf("Windows %s x%s SP: 1", pickString(r, ngavOSReleases), pickString(r, ngavOSArches)),
		DeviceName:      deviceName,
		DeviceUsername:  pickString(r, ngavUserNames) + "@example.com",
		PolicyID:        randRange(r, 260000, 270000),
		PolicyName:      pickString(r, ngavPolicyNames),
		TargetValue:     pickString(r, ngavTargetValues),
		Workflow: alert.Workflow{
			State:          alert.WorkflowStateOpen,
			Remediation:    "",
			LastUpdateTime: lastUpdateTime.Format(NGAVTimeLayout),
			Comment:        "",
			ChangedBy:      alert.WorkflowChangedBy,
		},
		DeviceInternalIP: pickString(r, g.pools.InternalIPs),
		DeviceExternalIP: pickString(r, g.pools.ExternalIPs),
		AlertURL:         fmt.Sprintf("https://defense-prod05.conferdeploy.net/triage?incidentId=%s&orgId=35152", newUUID(r)),
		Reason:           strings.Replace(pickString(r, ngavReasonTemplates), "{}", processName, 1),
		ReasonCode:       pickString(r, ngavReasonCodes),
		ProcessName:      processName,
		DeviceLocation:   pickString(r, ngavLocations),
		CreatedByEventID: hexN(r, 32),
		ThreatIndicators: []alert.ThreatIndicator{{
			ProcessName: processName,
			SHA256:      hexN(r, 64),
			TTPs:        SampleSubset(r, ngavTTPs, 1, 3),
		}},
		ThreatCauseActorSHA256:    hexN(r, 64),
		ThreatCauseActorName:      processName,
		ThreatCauseActorPID:       fmt.Sprintf("%d-%d-0", randRange(r, 1000, 9999), randRange64(r, 100000000000000000, 999999999999999999)),
		ThreatCauseReputation:     pickString(r, ngavReputations),
		ThreatCauseThreatCategory: threatCategory,
		ThreatCauseVector:         pickString(r, ngavVectors),
		ThreatCauseCauseEventID:   hexN(r, 32),
		BlockedThreatCategory:     containment.BlockedThreatCategory,
		NotBlockedThreatCategory:  containment.NotBlockedThreatCategory,
		KillChainStatus:           SampleSubset(r, ngavKillChainStages, 1, 2),
		RunState:                  containment.RunState,
		PolicyApplied:             containment.PolicyApplied,
	}
}
